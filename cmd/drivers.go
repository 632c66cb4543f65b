package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/pkg/errs"
)

func newDriversCommand(opts *options) *cobra.Command {
	drivers := &cobra.Command{
		Use:     "drivers",
		Aliases: []string{"driver"},
		Short:   "Manage drivers in the stored data",
	}
	drivers.AddCommand(
		newDriversListCommand(opts),
		newDriversAddCommand(opts),
		newDriversDeleteCommand(opts),
		newDriversAvailabilityCommand(opts),
	)
	return drivers
}

func newDriversListCommand(opts *options) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drivers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOffline(cmd, opts, false, func(ctx context.Context, root *CompositionRoot) error {
				var (
					result []queries.DriverResponse
					err    error
				)
				if available {
					result, err = root.CreateGetAvailableDriversQueryHandler().Handle(ctx, queries.NewGetAvailableDriversQuery())
				} else {
					result, err = root.CreateGetAllDriversQueryHandler().Handle(ctx, queries.NewGetAllDriversQuery())
				}
				if err != nil {
					return err
				}
				return printDrivers(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().BoolVar(&available, "available", false, "only available drivers, by name")
	return cmd
}

func newDriversAddCommand(opts *options) *cobra.Command {
	var name, license string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				add, err := commands.NewAddDriverCommand(name, license)
				if err != nil {
					return err
				}
				added, err := root.CreateAddDriverCommandHandler().Handle(ctx, add)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "driver %s added\n", added.ID())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&license, "license", "", "license number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("license")
	return cmd
}

func newDriversDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				del, err := commands.NewDeleteDriverCommand(id)
				if err != nil {
					return err
				}
				if err = root.CreateDeleteDriverCommandHandler().Handle(ctx, del); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "driver %s deleted\n", id)
				return nil
			})
		},
	}
}

func newDriversAvailabilityCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "availability ID true|false",
		Short: "Mark a driver available or unavailable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			available, err := strconv.ParseBool(args[1])
			if err != nil {
				return errs.NewValueIsInvalidErrorWithCause("availability", err)
			}
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				change, err := commands.NewChangeDriverAvailabilityCommand(id, available)
				if err != nil {
					return err
				}
				if err = root.CreateChangeDriverAvailabilityCommandHandler().Handle(ctx, change); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "driver %s available: %t\n", id, available)
				return nil
			})
		},
	}
}
