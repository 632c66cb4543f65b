package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/truck"
)

func newTrucksCommand(opts *options) *cobra.Command {
	trucks := &cobra.Command{
		Use:     "trucks",
		Aliases: []string{"truck"},
		Short:   "Manage the truck fleet in the stored data",
	}
	trucks.AddCommand(
		newTrucksListCommand(opts),
		newTrucksAddCommand(opts),
		newTrucksDeleteCommand(opts),
		newTrucksStatusCommand(opts),
	)
	return trucks
}

func newTrucksListCommand(opts *options) *cobra.Command {
	var (
		available   bool
		minCapacity float64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trucks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOffline(cmd, opts, false, func(ctx context.Context, root *CompositionRoot) error {
				var (
					result []queries.TruckResponse
					err    error
				)
				if available {
					query, qErr := queries.NewGetAvailableTrucksQuery(minCapacity)
					if qErr != nil {
						return qErr
					}
					result, err = root.CreateGetAvailableTrucksQueryHandler().Handle(ctx, query)
				} else {
					result, err = root.CreateGetAllTrucksQueryHandler().Handle(ctx, queries.NewGetAllTrucksQuery())
				}
				if err != nil {
					return err
				}
				return printTrucks(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().BoolVar(&available, "available", false, "only available trucks, smallest capacity first")
	cmd.Flags().Float64Var(&minCapacity, "min-capacity", 0, "with --available, only trucks that carry at least this many tons")
	return cmd
}

func newTrucksAddCommand(opts *options) *cobra.Command {
	var (
		registration string
		capacity     float64
		fuel         float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a truck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				add, err := commands.NewAddTruckCommand(registration, capacity, fuel)
				if err != nil {
					return err
				}
				added, err := root.CreateAddTruckCommandHandler().Handle(ctx, add)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "truck %s added\n", added.ID())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&registration, "registration", "", "registration plate")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "capacity in tons")
	cmd.Flags().Float64Var(&fuel, "fuel", 0, "fuel consumption in l/100 km")
	_ = cmd.MarkFlagRequired("registration")
	_ = cmd.MarkFlagRequired("capacity")
	return cmd
}

func newTrucksDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a truck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				del, err := commands.NewDeleteTruckCommand(id)
				if err != nil {
					return err
				}
				if err = root.CreateDeleteTruckCommandHandler().Handle(ctx, del); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "truck %s deleted\n", id)
				return nil
			})
		},
	}
}

func newTrucksStatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "status ID STATUS",
		Short:     "Set a truck's status (Available, OnRoute or Maintenance)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"Available", "OnRoute", "Maintenance"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			status, err := truck.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				change, err := commands.NewChangeTruckStatusCommand(id, status)
				if err != nil {
					return err
				}
				if err = root.CreateChangeTruckStatusCommandHandler().Handle(ctx, change); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "truck %s is %s\n", id, status)
				return nil
			})
		},
	}
}
