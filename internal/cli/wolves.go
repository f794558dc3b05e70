package cli

import (
	"fmt"
	"strconv"

	"wolfpack/internal/controller"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/ports/nav"
	"wolfpack/internal/wire"

	"github.com/spf13/cobra"
)

func newWolvesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wolves",
		Aliases: []string{"wolf"},
		Short:   "Wolf commands",
	}
	cmd.AddCommand(newWolvesListCmd(app))
	cmd.AddCommand(newWolvesShowCmd(app))
	cmd.AddCommand(newWolvesCreateCmd(app))
	cmd.AddCommand(newWolvesUpdateCmd(app))
	cmd.AddCommand(newWolvesDeleteCmd(app))
	return cmd
}

func newWolvesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wolves sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewWolfList(app.wolves, app.deps(nil))
			if err := c.Load(cmd.Context()); err != nil {
				return reported(cmd, err)
			}
			return writeWolves(cmd, app, c.View().Items)
		},
	}
}

func newWolvesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <wolf-id>",
		Short: "Show a wolf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewWolfList(app.wolves, app.deps(nil))
			if err := c.Open(cmd.Context(), nav.Path("/wolves/"+args[0])); err != nil {
				return reported(cmd, err)
			}
			view := c.View()
			if view.Mode == controller.ModeNone {
				return writeErr(cmd, fmt.Errorf("invalid wolf id %q", args[0]))
			}
			return writeWolf(cmd, app, view.Selected)
		},
	}
}

type wolfFlags struct {
	name     string
	gender   string
	birthday string
}

func (f *wolfFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Wolf name (letters only)")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Gender (male|female)")
	cmd.Flags().StringVar(&f.birthday, "birthday", "", "Birthday (yyyy-MM-dd, not in the future)")
}

// apply copia al formulario solo los flags que el usuario pasó.
func (f *wolfFlags) apply(cmd *cobra.Command, d *controller.WolfDraft) error {
	if cmd.Flags().Changed("name") {
		d.Name = f.name
	}
	if cmd.Flags().Changed("gender") {
		g, ok := wolves.ParseGender(f.gender)
		if !ok {
			// se deja el valor crudo para que la validación lo rechace
			g = wolves.Gender(f.gender)
		}
		d.Gender = g
	}
	if cmd.Flags().Changed("birthday") {
		b, err := wire.ParseDate(f.birthday)
		if err != nil {
			return err
		}
		d.Birthday = b
	}
	return nil
}

func newWolvesCreateCmd(app *App) *cobra.Command {
	var flags wolfFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a wolf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewWolfList(app.wolves, app.deps(nil))
			c.OpenCreate()

			var applyErr error
			_ = c.Edit(func(d *controller.WolfDraft) { applyErr = flags.apply(cmd, d) })
			if applyErr != nil {
				return writeErr(cmd, applyErr)
			}
			if _, err := c.Save(cmd.Context()); err != nil {
				return reported(cmd, err)
			}
			return writeWolf(cmd, app, c.View().Selected)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("birthday")
	return cmd
}

func newWolvesUpdateCmd(app *App) *cobra.Command {
	var flags wolfFlags

	cmd := &cobra.Command{
		Use:   "update <wolf-id>",
		Short: "Update a wolf (only the given fields change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "wolf")
			if err != nil {
				return writeErr(cmd, err)
			}

			c := controller.NewWolfList(app.wolves, app.deps(nil))
			if err := c.Select(cmd.Context(), id); err != nil {
				return reported(cmd, err)
			}

			var applyErr error
			_ = c.Edit(func(d *controller.WolfDraft) { applyErr = flags.apply(cmd, d) })
			if applyErr != nil {
				return writeErr(cmd, applyErr)
			}
			if _, err := c.Save(cmd.Context()); err != nil {
				return reported(cmd, err)
			}
			return writeWolf(cmd, app, c.View().Selected)
		},
	}

	flags.register(cmd)
	return cmd
}

func newWolvesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <wolf-id>",
		Short: "Delete a wolf (asks for confirmation unless --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "wolf")
			if err != nil {
				return writeErr(cmd, err)
			}

			c := controller.NewWolfList(app.wolves, app.deps(nil))
			deleted, err := c.Delete(cmd.Context(), id)
			if err != nil {
				return reported(cmd, err)
			}
			if !deleted {
				fmt.Fprintln(cmd.ErrOrStderr(), "cancelled")
			}
			return nil
		},
	}
}

func parseID(s, kind string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}
