package main

import (
	"context"
	"docai-portal/internal/app/config"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/drivers/logger"
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/accounts"
	"docai-portal/internal/app/services/core/admins"
	"docai-portal/internal/app/services/core/doctors"
	"docai-portal/internal/app/services/core/guard"
	"docai-portal/internal/app/services/core/patients"
	"docai-portal/internal/app/services/core/session"
	"docai-portal/internal/app/services/shared/apiclient"
	"docai-portal/internal/app/services/shared/durable"
	"docai-portal/internal/app/services/shared/notifier"
	"docai-portal/internal/pkg/utils"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var errNotLoggedIn = errors.New("not logged in: run portalctl login")

// portal holds everything a command needs once the root command has loaded
// the config and rehydrated the session file.
type portal struct {
	out       io.Writer
	lifecycle *logrus.Logger
	log       *zap.Logger
	store     *session.Store
	accounts  contracts.AccountUsecase
	patients  contracts.PatientUsecase
	doctors   contracts.DoctorUsecase
	admins    contracts.AdminUsecase
}

type rootFlags struct {
	apiURL      string
	sessionFile string
	debug       bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}
	p := &portal{out: out}

	rootCmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "DocAI portal from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return p.open(cmd.Context(), flags, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "backend base URL (defaults to PORTAL_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flags.sessionFile, "session-file", "", "session file (defaults to the user config directory)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log backend calls")

	rootCmd.AddCommand(
		newLoginCmd(p),
		newRegisterCmd(p),
		newLogoutCmd(p),
		newWhoamiCmd(p),
		newProfileCmd(p),
		newPasswordCmd(p),
		newPatientCmd(p),
		newDoctorCmd(p),
		newAdminCmd(p),
	)
	return rootCmd
}

func (p *portal) open(ctx context.Context, flags *rootFlags, errOut io.Writer) error {
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		return err
	}
	p.lifecycle = logger.NewLogrusLogger(internalConfig.App.Env, errOut)
	utils.SetAppEnv(internalConfig.App.Env)

	p.log = zap.NewNop()
	if flags.debug {
		p.log, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	sessionFile := flags.sessionFile
	if sessionFile == "" {
		sessionFile, err = durable.DefaultFilePath()
		if err != nil {
			return err
		}
	}
	apiURL := flags.apiURL
	if apiURL == "" {
		apiURL = internalConfig.Portal.ApiUrl
	}

	storage := durable.NewFileStorage(sessionFile)
	terminalNotifier := notifier.NewLogrusNotifier(p.lifecycle)
	apiClient := apiclient.New(apiclient.Config{
		BaseURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.App.BackendRequestTimeoutInSeconds) * time.Second,
		},
		Storage:              storage,
		Notifier:             terminalNotifier,
		Logger:               p.log,
		MaxRequestsPerSecond: internalConfig.App.BackendMaxRequestsPerSecond,
	})
	authService := apiclient.NewAuthService(apiClient)

	p.store = session.NewStore(storage, authService, p.log)
	if err := p.store.Rehydrate(ctx); err != nil {
		return err
	}

	p.accounts = accounts.NewAccountUsecase(authService, nil, terminalNotifier, p.log)
	p.patients = patients.NewPatientUsecase(
		apiclient.NewPatientService(apiClient),
		apiclient.NewReportService(apiClient),
		nil,
		nil,
		terminalNotifier,
		p.log,
	)
	p.doctors = doctors.NewDoctorUsecase(apiclient.NewDoctorService(apiClient), nil, terminalNotifier, p.log)
	p.admins = admins.NewAdminUsecase(apiclient.NewAdminService(apiClient), nil, terminalNotifier, p.log)
	return nil
}

func (p *portal) context(cmd *cobra.Command) context.Context {
	return session.WithStore(cmd.Context(), p.store)
}

// guarded runs fn only when the session belongs to role, the terminal
// version of a protected page.
func (p *portal) guarded(role models.Role, fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		decision := guard.Protected(p.store.GuardState(), role)
		if decision.Outcome == guard.Redirect {
			if !p.store.IsAuthenticated() {
				return fmt.Errorf("not logged in as %s (%s): run portalctl login --role %s", role, decision.Target, role)
			}
			return fmt.Errorf("logged in as %s, this command needs %s (%s)", p.store.User().Role, role, decision.Target)
		}
		return fn(p.context(cmd), cmd, args)
	}
}

// guestOnly mirrors the login and register pages, which logged in users
// never see.
func (p *portal) guestOnly(fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		decision := guard.GuestOnly(p.store.GuardState())
		if decision.Outcome == guard.Redirect {
			return fmt.Errorf("already logged in as %s (%s): run portalctl logout first", p.store.User().Email, decision.Target)
		}
		return fn(p.context(cmd), cmd, args)
	}
}

func (p *portal) print(v interface{}) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, string(payload))
	return err
}
