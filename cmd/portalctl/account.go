package main

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func newLoginCmd(p *portal) *cobra.Command {
	var role string
	request := &requests.Login{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a patient, doctor or admin",
		RunE: p.guestOnly(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			parsed, err := models.ParseRole(role)
			if err != nil {
				return err
			}
			user, err := p.accounts.Login(ctx, parsed, request)
			if err != nil {
				return err
			}
			return p.print(user)
		}),
	}
	cmd.Flags().StringVar(&role, "role", models.RolePatient.String(), "patient, doctor or admin")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(p *portal) *cobra.Command {
	form := &requests.RegisterForm{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient account and log in",
		RunE: p.guestOnly(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			user, err := p.accounts.Register(ctx, form)
			if err != nil {
				return err
			}
			return p.print(user)
		}),
	}
	cmd.Flags().StringVar(&form.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email")
	cmd.Flags().StringVar(&form.Password, "password", "", "password, at least 6 characters")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "repeat the password")
	cmd.Flags().StringVar(&form.Age, "age", "", "age in years")
	cmd.Flags().StringVar(&form.Gender, "gender", "", "male, female or other")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&form.Address, "address", "", "address")
	return cmd
}

func newLogoutCmd(p *portal) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := p.accounts.Logout(p.context(cmd))
			if err != nil {
				return err
			}
			return p.print(view)
		},
	}
}

func newWhoamiCmd(p *portal) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := p.accounts.Session(p.context(cmd))
			if err != nil {
				return err
			}
			return p.print(view)
		},
	}
}

func newProfileCmd(p *portal) *cobra.Command {
	request := &requests.UpdateProfile{}
	var age int

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the profile of the logged in patient or admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !p.store.IsAuthenticated() {
				return errNotLoggedIn
			}
			if cmd.Flags().Changed("age") {
				request.Age = &age
			}
			user, err := p.accounts.UpdateProfile(p.context(cmd), request)
			if err != nil {
				return err
			}
			return p.print(user)
		},
	}
	cmd.Flags().StringVar(&request.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&request.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&request.Address, "address", "", "address")
	cmd.Flags().StringVar(&request.Gender, "gender", "", "male, female or other")
	cmd.Flags().IntVar(&age, "age", 0, "age in years")
	return cmd
}

func newPasswordCmd(p *portal) *cobra.Command {
	form := &requests.ChangePasswordForm{}

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change the password of the logged in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !p.store.IsAuthenticated() {
				return errNotLoggedIn
			}
			return p.accounts.ChangePassword(p.context(cmd), form)
		},
	}
	cmd.Flags().StringVar(&form.CurrentPassword, "current", "", "current password")
	cmd.Flags().StringVar(&form.NewPassword, "new", "", "new password, at least 6 characters")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "repeat the new password")
	return cmd
}
