// Package web serves the four form views: Add Farmer, Add Crop,
// Record Production and View Report.
package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropbook/entities"
	"cropbook/pkg/apperror"
	cropSvc "cropbook/pkg/crop/service"
	farmerSvc "cropbook/pkg/farmer/service"
	"cropbook/pkg/notice"
	prodSvc "cropbook/pkg/production/service"
	"cropbook/pkg/report/render"
	reportSvc "cropbook/pkg/report/service"
)

type navItem struct {
	Key   string
	Label string
	Href  string
}

var nav = []navItem{
	{Key: "farmer", Label: "Add Farmer", Href: "/farmers/new"},
	{Key: "crop", Label: "Add Crop", Href: "/crops/new"},
	{Key: "production", Label: "Record Production", Href: "/production/new"},
	{Key: "report", Label: "View Report", Href: "/report"},
}

type viewData struct {
	Title   string
	Active  string
	Nav     []navItem
	Notices []notice.Notice
	// Blocked hides the form when its prerequisites are missing.
	Blocked bool
	Form    map[string]string

	Farmers          []entities.Farmer
	Crops            []entities.Crop
	MinYear, MaxYear int

	Report      *entities.Report
	ReportTitle string
}

type ViewCtrl struct {
	farmers     farmerSvc.FarmerService
	crops       cropSvc.CropService
	production  prodSvc.ProductionService
	reports     reportSvc.ReportService
	defaultYear int
	log         *zap.Logger
}

func NewViewCtrl(f farmerSvc.FarmerService, c cropSvc.CropService, p prodSvc.ProductionService, r reportSvc.ReportService, defaultYear int, log *zap.Logger) *ViewCtrl {
	return &ViewCtrl{farmers: f, crops: c, production: p, reports: r, defaultYear: defaultYear, log: log}
}

func (h *ViewCtrl) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/farmers/new", h.FarmerForm)
	e.POST("/farmers", h.CreateFarmer)
	e.GET("/crops/new", h.CropForm)
	e.POST("/crops", h.CreateCrop)
	e.GET("/production/new", h.ProductionForm)
	e.POST("/production", h.CreateProduction)
	e.GET("/report", h.Report)
}

func (h *ViewCtrl) Index(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, nav[0].Href)
}

// --- Add Farmer ---

func (h *ViewCtrl) FarmerForm(c echo.Context) error {
	return h.render(c, "farmer.html", h.page("farmer", "Add a New Farmer"))
}

func (h *ViewCtrl) CreateFarmer(c echo.Context) error {
	d := h.page("farmer", "Add a New Farmer")
	in := farmerSvc.RegisterInput{Name: c.FormValue("name"), Village: c.FormValue("village")}

	f, err := h.farmers.Register(c.Request().Context(), in)
	if err != nil {
		d.Form["name"], d.Form["village"] = in.Name, in.Village
		return h.fail(c, "farmer.html", d, err)
	}
	d.Notices = append(d.Notices, notice.Successf(fmt.Sprintf("Farmer '%s' from '%s' added successfully!", f.Name, f.Village)))
	return h.render(c, "farmer.html", d)
}

// --- Add Crop ---

func (h *ViewCtrl) CropForm(c echo.Context) error {
	return h.render(c, "crop.html", h.page("crop", "Add a New Crop"))
}

func (h *ViewCtrl) CreateCrop(c echo.Context) error {
	d := h.page("crop", "Add a New Crop")
	in := cropSvc.RegisterInput{Name: c.FormValue("name")}

	cr, err := h.crops.Register(c.Request().Context(), in)
	if err != nil {
		d.Form["name"] = in.Name
		return h.fail(c, "crop.html", d, err)
	}
	d.Notices = append(d.Notices, notice.Successf(fmt.Sprintf("Crop '%s' added successfully!", cr.Name)))
	return h.render(c, "crop.html", d)
}

// --- Record Production ---

func (h *ViewCtrl) ProductionForm(c echo.Context) error {
	d, ok, err := h.productionPage(c)
	if !ok {
		return h.fail(c, "production.html", d, err)
	}
	return h.render(c, "production.html", d)
}

func (h *ViewCtrl) CreateProduction(c echo.Context) error {
	d, ok, err := h.productionPage(c)
	if !ok {
		return h.fail(c, "production.html", d, err)
	}

	form := map[string]string{
		"farmer_id": c.FormValue("farmer_id"),
		"crop_id":   c.FormValue("crop_id"),
		"year":      c.FormValue("year"),
		"quantity":  c.FormValue("quantity"),
	}
	in, err := parseRecordForm(form)
	if err == nil {
		_, err = h.production.Record(c.Request().Context(), in)
	}
	if err != nil {
		d.Form = form
		return h.fail(c, "production.html", d, err)
	}
	d.Notices = append(d.Notices, notice.Successf("Production data recorded successfully!"))
	return h.render(c, "production.html", d)
}

// productionPage loads the selector options; ok is false when the form must not be shown.
func (h *ViewCtrl) productionPage(c echo.Context) (viewData, bool, error) {
	d := h.page("production", "Record Crop Production")
	d.MinYear, d.MaxYear = prodSvc.MinYear, prodSvc.MaxYear
	d.Form["year"] = strconv.Itoa(h.defaultYear)
	d.Form["quantity"] = render.Quantity(0)

	opts, err := h.production.Options(c.Request().Context())
	if err != nil {
		d.Blocked = true
		return d, false, err
	}
	d.Farmers, d.Crops = opts.Farmers, opts.Crops
	return d, true, nil
}

func parseRecordForm(form map[string]string) (prodSvc.RecordInput, error) {
	var in prodSvc.RecordInput
	fid, err := strconv.ParseUint(strings.TrimSpace(form["farmer_id"]), 10, 64)
	if err != nil {
		return in, apperror.Validation("farmer_id", "Please select a farmer.")
	}
	cid, err := strconv.ParseUint(strings.TrimSpace(form["crop_id"]), 10, 64)
	if err != nil {
		return in, apperror.Validation("crop_id", "Please select a crop.")
	}
	year, err := strconv.Atoi(strings.TrimSpace(form["year"]))
	if err != nil {
		return in, apperror.Validation("year", fmt.Sprintf("Year must be between %d and %d.", prodSvc.MinYear, prodSvc.MaxYear))
	}
	qty, err := strconv.ParseFloat(strings.TrimSpace(form["quantity"]), 64)
	if err != nil {
		return in, apperror.Validation("quantity", "Quantity must be zero or more tons.")
	}
	return prodSvc.RecordInput{FarmerID: uint(fid), CropID: uint(cid), Year: year, Quantity: qty}, nil
}

// --- View Report ---

func (h *ViewCtrl) Report(c echo.Context) error {
	d := h.page("report", "View Farmer Production Report")
	ctx := c.Request().Context()

	farmers, err := h.reports.Farmers(ctx)
	if err != nil {
		d.Blocked = true
		return h.fail(c, "report.html", d, err)
	}
	d.Farmers = farmers
	d.Form["farmer_id"] = strconv.FormatUint(uint64(farmers[0].ID), 10)
	if v := c.QueryParam("farmer_id"); v != "" {
		d.Form["farmer_id"] = v
	}
	if c.QueryParam("show") == "" {
		return h.render(c, "report.html", d)
	}

	fid, err := strconv.ParseUint(d.Form["farmer_id"], 10, 64)
	if err != nil {
		return h.fail(c, "report.html", d, apperror.Validation("farmer_id", "Please select a farmer."))
	}
	rep, err := h.reports.ForFarmer(ctx, uint(fid))
	if err != nil {
		return h.fail(c, "report.html", d, err)
	}
	if len(rep.Rows) == 0 {
		d.Notices = append(d.Notices, notice.Infof("No production data found for this farmer."))
		return h.render(c, "report.html", d)
	}
	d.Report = rep
	d.ReportTitle = render.Title(rep)
	return h.render(c, "report.html", d)
}

// --- helpers ---

func (h *ViewCtrl) page(active, title string) viewData {
	return viewData{Title: title, Active: active, Nav: nav, Form: map[string]string{}}
}

func (h *ViewCtrl) render(c echo.Context, name string, d viewData) error {
	return c.Render(http.StatusOK, name, d)
}

// fail renders the page with the notices for err; storage failures are logged
// and answered with 500.
func (h *ViewCtrl) fail(c echo.Context, name string, d viewData, err error) error {
	d.Notices = append(d.Notices, notice.FromError(err)...)
	status := http.StatusOK
	if apperror.HTTPStatus(err) >= http.StatusInternalServerError {
		status = http.StatusInternalServerError
		h.log.Error("view failed", zap.String("page", name), zap.Error(err))
	}
	return c.Render(status, name, d)
}
