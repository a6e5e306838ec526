package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"cropbook/pkg/middleware"
)

func New(
	e *echo.Echo,
	log *zap.Logger,
	views interface{ Register(*echo.Echo) },
	farmerCtrl interface{ Create(echo.Context) error; List(echo.Context) error },
	cropCtrl interface{ Create(echo.Context) error; List(echo.Context) error },
	prodCtrl interface{ Create(echo.Context) error; ListByFarmer(echo.Context) error },
	reportCtrl interface{ Show(echo.Context) error; Export(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLog(log))

	e.GET("/health", healthCtrl.Health)

	// HTML views
	views.Register(e)

	api := e.Group("/api/v1")
	api.POST("/farmers", farmerCtrl.Create)
	api.GET("/farmers", farmerCtrl.List)
	api.POST("/crops", cropCtrl.Create)
	api.GET("/crops", cropCtrl.List)
	api.POST("/production", prodCtrl.Create)

	g := api.Group("/farmers")
	g.GET("/:id/production", prodCtrl.ListByFarmer)
	g.GET("/:id/report", reportCtrl.Show)
	g.GET("/:id/report.xlsx", reportCtrl.Export)
	return e
}
