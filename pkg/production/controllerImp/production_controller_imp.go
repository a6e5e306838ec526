package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropbook/pkg/apperror"
	repo "cropbook/pkg/production/repository"
	"cropbook/pkg/production/service"
)

type ProductionCtrl struct {
	svc  service.ProductionService
	repo repo.ProductionRepository
	log  *zap.Logger
}

func New(svc service.ProductionService, r repo.ProductionRepository, log *zap.Logger) *ProductionCtrl {
	return &ProductionCtrl{svc: svc, repo: r, log: log}
}

func (h *ProductionCtrl) Create(c echo.Context) error {
	var req service.RecordInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.svc.Record(c.Request().Context(), req)
	if err != nil {
		status := apperror.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("record production failed", zap.Error(err))
		}
		return c.JSON(status, echo.Map{"error": apperror.PublicMessage(err)})
	}
	return c.JSON(http.StatusCreated, p)
}

// ListByFarmer serves GET /farmers/:id/production.
func (h *ProductionCtrl) ListByFarmer(c echo.Context) error {
	fid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid farmer id"})
	}
	rows, err := h.repo.ListByFarmer(c.Request().Context(), uint(fid))
	if err != nil {
		h.log.Error("list production failed", zap.Uint64("farmer_id", fid), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load production data."})
	}
	for i := range rows {
		rows[i].Serial = i + 1
	}
	return c.JSON(http.StatusOK, rows)
}
