// Package render draws a farmer report as a spreadsheet or a terminal table.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/xuri/excelize/v2"

	"cropbook/entities"
)

const SheetName = "Report"

var Headers = []string{"S.No.", "Crop", "Year", "Quantity (tons)"}

// Title is the heading shown above a report.
func Title(rep *entities.Report) string {
	return fmt.Sprintf("Production Report for %s", rep.Farmer.Label())
}

// XLSX writes a single-sheet workbook: a title row, the header row, then one row per record.
func XLSX(w io.Writer, rep *entities.Report) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := x.SetCellValue(SheetName, "A1", Title(rep)); err != nil {
		return err
	}
	head := make([]interface{}, len(Headers))
	for i, h := range Headers {
		head[i] = h
	}
	if err := x.SetSheetRow(SheetName, "A2", &head); err != nil {
		return err
	}
	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := x.SetCellStyle(SheetName, "A1", "D2", bold); err != nil {
		return err
	}
	qty, err := x.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return err
	}

	for i, r := range rep.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		row := []interface{}{r.Serial, r.CropName, r.Year, r.Quantity}
		if err := x.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
		qcell, _ := excelize.CoordinatesToCellName(4, i+3)
		if err := x.SetCellStyle(SheetName, qcell, qcell, qty); err != nil {
			return err
		}
	}
	if err := x.SetColWidth(SheetName, "B", "B", 18); err != nil {
		return err
	}
	if err := x.SetColWidth(SheetName, "D", "D", 16); err != nil {
		return err
	}
	return x.Write(w)
}

// Table renders the report rows for a terminal.
func Table(rep *entities.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...)
	for _, r := range rep.Rows {
		t.Row(strconv.Itoa(r.Serial), r.CropName, strconv.Itoa(r.Year), Quantity(r.Quantity))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(Title(rep)), t.Render())
}

// Quantity formats tons with two decimals.
func Quantity(q float64) string { return strconv.FormatFloat(q, 'f', 2, 64) }
