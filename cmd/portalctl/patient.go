package main

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newPatientCmd(p *portal) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Patient pages",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dashboard",
			Short: "Show the patient dashboard",
			RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				page, err := p.patients.Dashboard(ctx)
				if err != nil {
					return err
				}
				return p.print(page)
			}),
		},
		newPatientHistoryCmd(p),
		&cobra.Command{
			Use:   "report <reportID>",
			Short: "Show one report with its analysis",
			Args:  cobra.ExactArgs(1),
			RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				page, err := p.patients.Report(ctx, args[0])
				if err != nil {
					return err
				}
				return p.print(page)
			}),
		},
		&cobra.Command{
			Use:   "doctors",
			Short: "List doctors available for review",
			RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				page, err := p.patients.Doctors(ctx)
				if err != nil {
					return err
				}
				return p.print(page)
			}),
		},
		newUploadCmd(p),
		newDownloadCmd(p),
		newRequestReviewCmd(p),
		&cobra.Command{
			Use:   "compare <reportID> <reportID>",
			Short: "Compare two reports",
			Args:  cobra.ExactArgs(2),
			RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				comparison, err := p.patients.CompareReports(ctx, &requests.CompareReports{ReportID1: args[0], ReportID2: args[1]})
				if err != nil {
					return err
				}
				return p.print(comparison)
			}),
		},
	)
	return cmd
}

func newPatientHistoryCmd(p *portal) *cobra.Command {
	query := &requests.ReportHistoryQuery{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List uploaded reports",
		RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if query.ReportType == constvars.ReportTypeAll {
				query.ReportType = ""
			}
			page, err := p.patients.History(ctx, query)
			if err != nil {
				return err
			}
			return p.print(page)
		}),
	}
	cmd.Flags().IntVar(&query.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&query.Limit, "limit", constvars.DefaultPageLimit, "items per page")
	cmd.Flags().StringVar(&query.ReportType, "type", "", "report type filter")
	cmd.Flags().StringVar(&query.Search, "search", "", "search text")
	cmd.Flags().StringVar(&query.StartDate, "from", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&query.EndDate, "to", "", "end date, YYYY-MM-DD")
	return cmd
}

func newUploadCmd(p *portal) *cobra.Command {
	request := &requests.UploadReport{}
	cmd := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF report for analysis",
		Args:  cobra.ExactArgs(1),
		RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			request.File = file
			request.FileName = filepath.Base(args[0])
			request.ContentType = mime.TypeByExtension(filepath.Ext(args[0]))
			result, err := p.patients.UploadReport(ctx, request)
			if err != nil {
				return err
			}
			return p.print(result)
		}),
	}
	cmd.Flags().StringVar(&request.ReportName, "name", "", "report name")
	cmd.Flags().StringVar(&request.ReportType, "type", "", "report type")
	cmd.Flags().StringVar(&request.ReportDate, "date", "", "report date, YYYY-MM-DD")
	return cmd
}

func newDownloadCmd(p *portal) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download <reportID>",
		Short: "Download the original PDF of a report",
		Args:  cobra.ExactArgs(1),
		RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			file, err := p.patients.DownloadReport(ctx, args[0])
			if err != nil {
				return err
			}
			target := output
			if target == "" {
				target = file.FileName
			}
			if err := os.WriteFile(target, file.Content, 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintf(p.out, "saved %s (%d bytes)\n", target, len(file.Content))
			return err
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write, defaults to the report file name")
	return cmd
}

func newRequestReviewCmd(p *portal) *cobra.Command {
	request := &requests.RequestReview{}
	cmd := &cobra.Command{
		Use:   "request-review <reportID>",
		Short: "Ask a doctor to review a report",
		Args:  cobra.ExactArgs(1),
		RunE: p.guarded(models.RolePatient, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			return p.patients.RequestReview(ctx, args[0], request)
		}),
	}
	cmd.Flags().StringVar(&request.DoctorID, "doctor", "", "doctor id")
	return cmd
}
