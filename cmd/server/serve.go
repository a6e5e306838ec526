package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cropbook/router"

	cropCtrlImp "cropbook/pkg/crop/controllerImp"
	cropRepoImp "cropbook/pkg/crop/repositoryImp"
	cropSvcImp "cropbook/pkg/crop/serviceImp"

	farmerCtrlImp "cropbook/pkg/farmer/controllerImp"
	farmerRepoImp "cropbook/pkg/farmer/repositoryImp"
	farmerSvcImp "cropbook/pkg/farmer/serviceImp"

	prodCtrlImp "cropbook/pkg/production/controllerImp"
	prodRepoImp "cropbook/pkg/production/repositoryImp"
	prodSvcImp "cropbook/pkg/production/serviceImp"

	reportCtrlImp "cropbook/pkg/report/controllerImp"
	reportSvcImp "cropbook/pkg/report/serviceImp"

	healthCtrlImp "cropbook/pkg/health/controllerImp"
	"cropbook/pkg/web"
)

func newServeCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the data entry views and the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *dbPath)
		},
	}
}

func runServe(ctx context.Context, dbPath string) error {
	env, err := openEnv(dbPath)
	if err != nil {
		return err
	}
	defer env.Close()

	e, err := newServer(env)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + env.cfg.Port
	errc := make(chan error, 1)
	go func() {
		env.log.Info("listening", zap.String("addr", addr), zap.String("db", env.cfg.DBPath))
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	env.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newServer wires repositories, services and controllers onto a fresh echo instance.
func newServer(env *appEnv) (*echo.Echo, error) {
	// Repos
	fRepo := farmerRepoImp.New(env.db)
	cRepo := cropRepoImp.New(env.db)
	pRepo := prodRepoImp.New(env.db)

	// Services
	fSvc := farmerSvcImp.NewFarmerService(fRepo)
	cSvc := cropSvcImp.NewCropService(cRepo)
	pSvc := prodSvcImp.NewProductionService(pRepo, fRepo, cRepo)
	rSvc := reportSvcImp.NewReportService(fRepo, pRepo)

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	return router.New(
		e,
		env.log,
		web.NewViewCtrl(fSvc, cSvc, pSvc, rSvc, env.cfg.DefaultYear, env.log),
		farmerCtrlImp.New(fSvc, env.log),
		cropCtrlImp.New(cSvc, env.log),
		prodCtrlImp.New(pSvc, pRepo, env.log),
		reportCtrlImp.New(rSvc, env.log),
		healthCtrlImp.NewHealthCtrl(env.db),
	), nil
}
