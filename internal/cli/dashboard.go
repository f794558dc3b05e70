package cli

import (
	"fmt"

	"wolfpack/internal/controller"
	"wolfpack/internal/terminal"
	"wolfpack/internal/wire"

	"github.com/spf13/cobra"
)

type dashboardOutput struct {
	Wolves []wire.WolfRecord `json:"wolves"`
	Packs  []wire.PackRecord `json:"packs"`
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the most recently updated wolves and packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := controller.NewDashboard(app.wolves, app.packs, app.deps(nil))
			err := d.Load(cmd.Context())
			view := d.View()

			if app.Format == formatJSON {
				out := dashboardOutput{
					Wolves: make([]wire.WolfRecord, 0, len(view.Wolves)),
					Packs:  make([]wire.PackRecord, 0, len(view.Packs)),
				}
				for _, w := range view.Wolves {
					out.Wolves = append(out.Wolves, wire.FromWolf(w))
				}
				for _, p := range view.Packs {
					out.Packs = append(out.Packs, wire.FromPack(p, false))
				}
				if werr := writeJSON(cmd, out); werr != nil {
					return werr
				}
				return reported(cmd, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Recent wolves")
			fmt.Fprintln(w, terminal.WolvesTable(view.Wolves))
			fmt.Fprintln(w, "Recent packs")
			fmt.Fprintln(w, terminal.PacksTable(view.Packs))
			return reported(cmd, err)
		},
	}
}
