package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cropbook/pkg/apperror"
	farmerRepoImp "cropbook/pkg/farmer/repositoryImp"
	prodRepoImp "cropbook/pkg/production/repositoryImp"
	"cropbook/pkg/report/render"
	reportSvcImp "cropbook/pkg/report/serviceImp"
)

func newReportCmd(dbPath *string) *cobra.Command {
	var (
		farmerID uint
		xlsxPath string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print one farmer's production report, or write it as a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(*dbPath)
			if err != nil {
				return err
			}
			defer env.Close()

			ctx := cmd.Context()
			svc := reportSvcImp.NewReportService(farmerRepoImp.New(env.db), prodRepoImp.New(env.db))
			out := cmd.OutOrStdout()

			if xlsxPath != "" {
				f, err := os.Create(xlsxPath)
				if err != nil {
					return err
				}
				if err := svc.WriteXLSX(ctx, farmerID, f); err != nil {
					_ = f.Close()
					_ = os.Remove(xlsxPath)
					return publicError(env.log, err)
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", xlsxPath)
				return nil
			}

			rep, err := svc.ForFarmer(ctx, farmerID)
			if err != nil {
				return publicError(env.log, err)
			}
			if len(rep.Rows) == 0 {
				fmt.Fprintln(out, "No production data found for this farmer.")
				return nil
			}
			fmt.Fprintln(out, render.Table(rep))
			return nil
		},
	}
	cmd.Flags().UintVar(&farmerID, "farmer", 0, "farmer id")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the report to this .xlsx file instead of printing it")
	_ = cmd.MarkFlagRequired("farmer")
	return cmd
}

// publicError keeps storage details in the log and returns the user-facing text.
func publicError(log *zap.Logger, err error) error {
	if apperror.HTTPStatus(err) >= 500 {
		log.Error("report", zap.Error(err))
	}
	return errors.New(apperror.PublicMessage(err))
}
