package cli

import (
	"errors"
	"fmt"

	"wolfpack/internal/controller"
	"wolfpack/internal/ports/nav"

	"github.com/spf13/cobra"
)

func newPacksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packs",
		Aliases: []string{"pack"},
		Short:   "Pack commands",
	}
	cmd.AddCommand(newPacksListCmd(app))
	cmd.AddCommand(newPacksShowCmd(app))
	cmd.AddCommand(newPacksCreateCmd(app))
	cmd.AddCommand(newPacksUpdateCmd(app))
	cmd.AddCommand(newPacksDeleteCmd(app))
	cmd.AddCommand(newPacksAddMembersCmd(app))
	cmd.AddCommand(newPacksRemoveMemberCmd(app))
	return cmd
}

func newPacksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List packs sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewPackList(app.packs, app.wolves, app.deps(nil))
			if err := c.Load(cmd.Context()); err != nil {
				return reported(cmd, err)
			}
			return writePacks(cmd, app, c.View().Items)
		},
	}
}

func newPacksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <pack-id>",
		Short: "Show a pack and its wolves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewPackList(app.packs, app.wolves, app.deps(nil))
			if err := c.Open(cmd.Context(), nav.Path("/packs/"+args[0])); err != nil {
				return reported(cmd, err)
			}
			view := c.View()
			if view.Mode == controller.ModeNone {
				return writeErr(cmd, fmt.Errorf("invalid pack id %q", args[0]))
			}
			return writePack(cmd, app, view.Selected)
		},
	}
}

type packFlags struct {
	name string
	lat  float64
	lng  float64
}

func (f *packFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Pack name (letters only)")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&f.lng, "lng", 0, "Longitude")
}

func (f *packFlags) apply(cmd *cobra.Command, d *controller.PackDraft) {
	if cmd.Flags().Changed("name") {
		d.Name = f.name
	}
	if cmd.Flags().Changed("lat") {
		d.Latitude = f.lat
	}
	if cmd.Flags().Changed("lng") {
		d.Longitude = f.lng
	}
}

func newPacksCreateCmd(app *App) *cobra.Command {
	var flags packFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pack (location defaults to the configured home)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewPackList(app.packs, app.wolves, app.deps(nil))
			c.OpenCreate(cmd.Context())
			_ = c.Edit(func(d *controller.PackDraft) { flags.apply(cmd, d) })

			if _, err := c.Save(cmd.Context()); err != nil {
				return reported(cmd, err)
			}
			return writePack(cmd, app, c.View().Selected)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newPacksUpdateCmd(app *App) *cobra.Command {
	var flags packFlags

	cmd := &cobra.Command{
		Use:   "update <pack-id>",
		Short: "Update a pack's name or location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "pack")
			if err != nil {
				return writeErr(cmd, err)
			}

			c := controller.NewPackList(app.packs, app.wolves, app.deps(nil))
			if err := c.Select(cmd.Context(), id); err != nil {
				return reported(cmd, err)
			}
			_ = c.Edit(func(d *controller.PackDraft) { flags.apply(cmd, d) })

			if _, err := c.Save(cmd.Context()); err != nil {
				return reported(cmd, err)
			}
			return writePack(cmd, app, c.View().Selected)
		},
	}

	flags.register(cmd)
	return cmd
}

func newPacksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <pack-id>",
		Short: "Delete a pack (asks for confirmation unless --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "pack")
			if err != nil {
				return writeErr(cmd, err)
			}

			c := controller.NewPackList(app.packs, app.wolves, app.deps(nil))
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

func newPacksAddMembersCmd(app *App) *cobra.Command {
	var wolfIDs []int

	cmd := &cobra.Command{
		Use:   "add-members <pack-id>",
		Short: "Add wolves to a pack (interactive picker unless --wolf is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "pack")
			if err != nil {
				return writeErr(cmd, err)
			}

			var preselected []int
			if cmd.Flags().Changed("wolf") {
				preselected = wolfIDs
			}
			c := controller.NewPackList(app.packs, app.wolves, app.deps(preselected))
			if err := c.Select(cmd.Context(), id); err != nil {
				return reported(cmd, err)
			}

			_, addErr := c.AddMembers(cmd.Context())
			var batch *controller.BatchError
			if addErr != nil && !errors.As(addErr, &batch) {
				return reported(cmd, addErr)
			}
			if err := writePack(cmd, app, c.View().Selected); err != nil {
				return err
			}
			if batch != nil {
				return writeErr(cmd, batch)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&wolfIDs, "wolf", nil, "Wolf id to add (repeatable, skips the picker)")
	return cmd
}

func newPacksRemoveMemberCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-member <pack-id> <wolf-id>",
		Short: "Remove a wolf from a pack (the wolf itself is kept)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			packID, err := parseID(args[0], "pack")
			if err != nil {
				return writeErr(cmd, err)
			}
			wolfID, err := parseID(args[1], "wolf")
			if err != nil {
				return writeErr(cmd, err)
			}

			c := controller.NewPackList(app.packs, app.wolves, app.deps(nil))
			if err := c.Select(cmd.Context(), packID); err != nil {
				return reported(cmd, err)
			}
			removed, err := c.RemoveMember(cmd.Context(), wolfID)
			if err != nil {
				return reported(cmd, err)
			}
			if !removed {
				fmt.Fprintln(cmd.ErrOrStderr(), "cancelled")
				return nil
			}
			return writePack(cmd, app, c.View().Selected)
		},
	}
}
