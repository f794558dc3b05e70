// Package cli arma los comandos cobra de wolfpack. Cada comando maneja un controller;
// nunca llama a los repositorios directamente.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wolfpack/internal/adapters/api"
	"wolfpack/internal/controller"
	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/platform/config"
	"wolfpack/internal/platform/httpclient"
	"wolfpack/internal/platform/logger"
	"wolfpack/internal/ports/auth"
	"wolfpack/internal/ports/dialog"
	"wolfpack/internal/ports/geo"
	"wolfpack/internal/terminal"
	"wolfpack/internal/validation"

	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type App struct {
	ConfigPath string
	Yes        bool
	Format     string

	cfg      config.Client
	log      logger.Logger
	wolves   wolves.Repository
	packs    packs.Repository
	notifier *terminal.Notifier
	in       io.Reader
	errOut   io.Writer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "wolfpack",
		Short:         "Manage wolves and the packs they belong to",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Recently updated wolves and packs
  wolfpack dashboard

  # Create a wolf and put it in a pack
  wolfpack wolves create --name Akela --gender male --birthday 2019-04-01
  wolfpack packs add-members 3 --wolf 12

  # Non-interactive delete
  wolfpack --yes packs delete 3
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("WOLFPACK_CONFIG", ""), "Path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&app.Yes, "yes", "y", false, "Answer yes to confirmations (non-interactive)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("WOLFPACK_FORMAT", formatTable), "Output format (table|json)")

	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newWolvesCmd(app))
	cmd.AddCommand(newPacksCmd(app))

	return cmd
}

func (app *App) init(cmd *cobra.Command) error {
	switch app.Format {
	case formatTable, formatJSON:
	default:
		return writeErr(cmd, fmt.Errorf("unknown format %q (table|json)", app.Format))
	}

	cfg, err := config.LoadClient(app.ConfigPath)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg
	app.in = cmd.InOrStdin()
	app.errOut = cmd.ErrOrStderr()

	opts := cfg.Log.Options("wolfpack")
	opts.Out = app.errOut
	app.log = logger.New(opts)
	app.notifier = terminal.NewNotifier(app.errOut)

	var creds auth.CredentialProvider
	if cfg.Token != "" {
		creds = auth.StaticToken(cfg.Token)
	}
	client, err := httpclient.New(httpclient.Config{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		Credentials: creds,
		Log:         app.log,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	app.wolves = api.NewWolvesRepo(client)
	app.packs = api.NewPacksRepo(client)
	return nil
}

// deps arma los colaboradores de los controllers. ids != nil reemplaza el selector interactivo.
func (app *App) deps(ids []int) controller.Deps {
	d := controller.Deps{
		Notifier:       app.notifier,
		Locator:        geo.Fixed{Latitude: app.cfg.Home.Latitude, Longitude: app.cfg.Home.Longitude},
		Log:            app.log,
		NotifyDuration: app.cfg.NotifyDuration,
		RecentCount:    app.cfg.RecentCount,
	}
	if app.Yes {
		d.Confirmer = dialog.Always(true)
	} else {
		d.Confirmer = terminal.Confirmer{In: app.in, Out: app.errOut}
	}
	if ids != nil {
		d.Picker = dialog.Preselected(ids)
	} else {
		d.Picker = terminal.Picker{In: app.in, Out: app.errOut}
	}
	return d
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

// reported es para errores que el controller ya notificó; solo se agrega el detalle
// de validación, que la notificación no incluye.
func reported(cmd *cobra.Command, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		fmt.Fprintln(cmd.ErrOrStderr(), verr.Error())
	}
	return err
}
