package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropbook/pkg/apperror"
	"cropbook/pkg/report/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct {
	svc service.ReportService
	log *zap.Logger
}

func New(svc service.ReportService, log *zap.Logger) *ReportCtrl { return &ReportCtrl{svc: svc, log: log} }

func (h *ReportCtrl) Show(c echo.Context) error {
	fid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid farmer id"})
	}
	rep, err := h.svc.ForFarmer(c.Request().Context(), uint(fid))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// Export sends the report as an .xlsx attachment.
func (h *ReportCtrl) Export(c echo.Context) error {
	fid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid farmer id"})
	}
	var buf bytes.Buffer
	if err := h.svc.WriteXLSX(c.Request().Context(), uint(fid), &buf); err != nil {
		return h.fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="production-report-%d.xlsx"`, fid))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (h *ReportCtrl) fail(c echo.Context, err error) error {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("report request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": apperror.PublicMessage(err)})
}
