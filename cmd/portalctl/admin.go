package main

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func newAdminCmd(p *portal) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin panel",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dashboard",
			Short: "Show the admin dashboard",
			RunE: p.guarded(models.RoleAdmin, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				page, err := p.admins.Dashboard(ctx)
				if err != nil {
					return err
				}
				return p.print(page)
			}),
		},
		newAdminDoctorsCmd(p),
		newAddDoctorCmd(p),
		&cobra.Command{
			Use:   "delete-doctor <doctorID>",
			Short: "Remove a doctor account",
			Args:  cobra.ExactArgs(1),
			RunE: p.guarded(models.RoleAdmin, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				return p.admins.DeleteDoctor(ctx, args[0])
			}),
		},
		newDoctorActivityCmd(p),
		newAdminPatientsCmd(p),
		newAdminPatientHistoryCmd(p),
	)
	return cmd
}

func newAdminDoctorsCmd(p *portal) *cobra.Command {
	query := &requests.ListQuery{}
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List doctors",
		RunE: p.guarded(models.RoleAdmin, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			page, err := p.admins.Doctors(ctx, query)
			if err != nil {
				return err
			}
			return p.print(page)
		}),
	}
	bindListQuery(cmd, query)
	return cmd
}

func newAddDoctorCmd(p *portal) *cobra.Command {
	request := &requests.AddDoctor{}
	cmd := &cobra.Command{
		Use:   "add-doctor",
		Short: "Create a doctor account",
		RunE: p.guarded(models.RoleAdmin, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			doctor, err := p.admins.AddDoctor(ctx, request)
			if err != nil {
				return err
			}
			return p.print(doctor)
		}),
	}
	cmd.Flags().StringVar(&request.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&request.Email, "email", "", "email")
	cmd.Flags().StringVar(&request.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&request.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&request.Gender, "gender", "", "male, female or other")
	cmd.Flags().StringVar(&request.Specialization, "specialization", "", "specialization")
	return cmd
}

func newDoctorActivityCmd(p *portal) *cobra.Command {
	query := &requests.ListQuery{}
	cmd := &cobra.Command{
		Use:   "doctor-activity <doctorID>",
		Short: "Show the reviews a doctor has handled",
		Args:  cobra.ExactArgs(1),
		RunE: p.guarded(models.RoleAdmin, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			activity, pagination, err := p.admins.DoctorActivity(ctx, args[0], query)
			if err != nil {
				return err
			}
			return p.print(paged(activity, pagination))
		}),
	}
	bindListQuery(cmd, query)
	return cmd
}

func newAdminPatientsCmd(p *portal) *cobra.Command {
	query := &requests.ListQuery{}
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List patients",
		RunE: p.guarded(models.RoleAdmin, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			page, err := p.admins.Patients(ctx, query)
			if err != nil {
				return err
			}
			return p.print(page)
		}),
	}
	bindListQuery(cmd, query)
	return cmd
}

func newAdminPatientHistoryCmd(p *portal) *cobra.Command {
	query := &requests.ListQuery{}
	cmd := &cobra.Command{
		Use:   "patient-history <patientID>",
		Short: "Show the report history of one patient",
		Args:  cobra.ExactArgs(1),
		RunE: p.guarded(models.RoleAdmin, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			history, pagination, err := p.admins.PatientHistory(ctx, args[0], query)
			if err != nil {
				return err
			}
			return p.print(paged(history, pagination))
		}),
	}
	bindListQuery(cmd, query)
	return cmd
}
