package cli

import (
	"encoding/json"
	"fmt"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/terminal"
	"wolfpack/internal/wire"

	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeWolves(cmd *cobra.Command, app *App, items []wolves.Wolf) error {
	if app.Format == formatJSON {
		out := make([]wire.WolfRecord, 0, len(items))
		for _, w := range items {
			out = append(out, wire.FromWolf(w))
		}
		return writeJSON(cmd, out)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), terminal.WolvesTable(items))
	return err
}

func writeWolf(cmd *cobra.Command, app *App, w wolves.Wolf) error {
	if app.Format == formatJSON {
		return writeJSON(cmd, wire.FromWolf(w))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), terminal.WolfDetail(w))
	return err
}

func writePacks(cmd *cobra.Command, app *App, items []packs.Pack) error {
	if app.Format == formatJSON {
		out := make([]wire.PackRecord, 0, len(items))
		for _, p := range items {
			out = append(out, wire.FromPack(p, false))
		}
		return writeJSON(cmd, out)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), terminal.PacksTable(items))
	return err
}

func writePack(cmd *cobra.Command, app *App, p packs.Pack) error {
	if app.Format == formatJSON {
		return writeJSON(cmd, wire.FromPack(p, true))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), terminal.PackDetail(p))
	return err
}
