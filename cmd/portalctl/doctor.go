package main

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func newDoctorCmd(p *portal) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Doctor pages",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dashboard",
			Short: "Show the doctor dashboard",
			RunE: p.guarded(models.RoleDoctor, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				page, err := p.doctors.Dashboard(ctx)
				if err != nil {
					return err
				}
				return p.print(page)
			}),
		},
		newReviewRequestsCmd(p),
		&cobra.Command{
			Use:   "review <reportID>",
			Short: "Show one review request",
			Args:  cobra.ExactArgs(1),
			RunE: p.guarded(models.RoleDoctor, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				report, err := p.doctors.ReviewRequest(ctx, args[0])
				if err != nil {
					return err
				}
				return p.print(report)
			}),
		},
		newSubmitReviewCmd(p),
		newDoctorPatientsCmd(p),
		newDoctorPatientHistoryCmd(p),
	)
	return cmd
}

func newReviewRequestsCmd(p *portal) *cobra.Command {
	query := &requests.ListQuery{}
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List pending review requests",
		RunE: p.guarded(models.RoleDoctor, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			page, err := p.doctors.ReviewRequests(ctx, query)
			if err != nil {
				return err
			}
			return p.print(page)
		}),
	}
	bindListQuery(cmd, query)
	return cmd
}

func newSubmitReviewCmd(p *portal) *cobra.Command {
	request := &requests.SubmitReview{}
	cmd := &cobra.Command{
		Use:   "submit-review <reportID>",
		Short: "Submit review notes for a report",
		Args:  cobra.ExactArgs(1),
		RunE: p.guarded(models.RoleDoctor, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			return p.doctors.SubmitReview(ctx, args[0], request)
		}),
	}
	cmd.Flags().StringVar(&request.Notes, "notes", "", "review notes")
	return cmd
}

func newDoctorPatientsCmd(p *portal) *cobra.Command {
	query := &requests.ListQuery{}
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List patients who shared reports",
		RunE: p.guarded(models.RoleDoctor, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			page, err := p.doctors.Patients(ctx, query)
			if err != nil {
				return err
			}
			return p.print(page)
		}),
	}
	bindListQuery(cmd, query)
	return cmd
}

func newDoctorPatientHistoryCmd(p *portal) *cobra.Command {
	query := &requests.ListQuery{}
	cmd := &cobra.Command{
		Use:   "patient-history <patientID>",
		Short: "Show the report history of one patient",
		Args:  cobra.ExactArgs(1),
		RunE: p.guarded(models.RoleDoctor, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			history, pagination, err := p.doctors.PatientHistory(ctx, args[0], query)
			if err != nil {
				return err
			}
			return p.print(paged(history, pagination))
		}),
	}
	bindListQuery(cmd, query)
	return cmd
}
