package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropbook/pkg/apperror"
	"cropbook/pkg/farmer/service"
)

type FarmerCtrl struct {
	svc service.FarmerService
	log *zap.Logger
}

func New(svc service.FarmerService, log *zap.Logger) *FarmerCtrl { return &FarmerCtrl{svc: svc, log: log} }

func (h *FarmerCtrl) Create(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	f, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmerCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmerCtrl) fail(c echo.Context, err error) error {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("farmer request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": apperror.PublicMessage(err)})
}
