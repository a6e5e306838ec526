package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropbook/pkg/apperror"
	"cropbook/pkg/crop/service"
)

type CropCtrl struct {
	svc service.CropService
	log *zap.Logger
}

func New(svc service.CropService, log *zap.Logger) *CropCtrl { return &CropCtrl{svc: svc, log: log} }

func (h *CropCtrl) Create(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	out, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		status := apperror.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("add crop failed", zap.Error(err))
		}
		return c.JSON(status, echo.Map{"error": apperror.PublicMessage(err)})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		h.log.Error("list crops failed", zap.Error(err))
		return c.JSON(apperror.HTTPStatus(err), echo.Map{"error": apperror.PublicMessage(err)})
	}
	return c.JSON(http.StatusOK, out)
}
