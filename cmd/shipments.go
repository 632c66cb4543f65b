package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
)

func newShipmentsCommand(opts *options) *cobra.Command {
	shipments := &cobra.Command{
		Use:     "shipments",
		Aliases: []string{"shipment"},
		Short:   "Plan and dispatch shipments in the stored data",
	}
	shipments.AddCommand(
		newShipmentsListCommand(opts),
		newShipmentsShowCommand(opts),
		newShipmentsCreateCommand(opts),
		newShipmentsAssignCommand(opts),
		newShipmentActionCommand(opts, "start", "Send an assigned shipment on its way", startShipment),
		newShipmentActionCommand(opts, "complete", "Mark a shipment in transit as delivered", completeShipment),
		newShipmentActionCommand(opts, "cancel", "Cancel a planned shipment", cancelShipment),
	)
	return shipments
}

func newShipmentsListCommand(opts *options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shipments, optionally only those planned within --from and --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOffline(cmd, opts, false, func(ctx context.Context, root *CompositionRoot) error {
				var (
					result []queries.ShipmentResponse
					err    error
				)
				if from == "" && to == "" {
					result, err = root.CreateGetAllShipmentsQueryHandler().Handle(ctx, queries.NewGetAllShipmentsQuery())
				} else {
					result, err = shipmentsInPeriod(ctx, root, from, to)
				}
				if err != nil {
					return err
				}
				return printShipments(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first planned day, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&to, "to", "", "last planned day, YYYY-MM-DD (default today)")
	return cmd
}

func shipmentsInPeriod(ctx context.Context, root *CompositionRoot, from, to string) ([]queries.ShipmentResponse, error) {
	today := kernel.DateOf(root.now())
	first, last := today, today
	var err error
	if from != "" {
		if first, err = kernel.ParseDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if last, err = kernel.ParseDate(to); err != nil {
			return nil, err
		}
	}
	if first.Compare(last) > 0 {
		return nil, fmt.Errorf("--from %s is after --to %s", first, last)
	}
	return root.CreateGetShipmentsByPeriodQueryHandler().Handle(ctx, queries.NewGetShipmentsByPeriodQuery(first, last))
}

func newShipmentsShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			return runOffline(cmd, opts, false, func(ctx context.Context, root *CompositionRoot) error {
				query, err := queries.NewGetShipmentQuery(id)
				if err != nil {
					return err
				}
				result, err := root.CreateGetShipmentQueryHandler().Handle(ctx, query)
				if err != nil {
					return err
				}
				return printShipment(cmd.OutOrStdout(), result)
			})
		},
	}
}

func newShipmentsCreateCommand(opts *options) *cobra.Command {
	var (
		description  string
		weight       float64
		distance     float64
		refrigerated bool
		planned      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Plan a new shipment and price it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				plannedDate := root.now()
				if planned != "" {
					day, err := kernel.ParseDate(planned)
					if err != nil {
						return err
					}
					plannedDate = day.Time(time.Local)
				}

				create, err := commands.NewCreateShipmentCommand(description, weight, refrigerated, distance, plannedDate)
				if err != nil {
					return err
				}
				created, err := root.CreateCreateShipmentCommandHandler().Handle(ctx, create)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "shipment %s created, cost %s\n", created.ID(), created.Cost())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "cargo description")
	cmd.Flags().Float64Var(&weight, "weight", 0, "cargo weight in tons")
	cmd.Flags().Float64Var(&distance, "distance", 0, "route length in km")
	cmd.Flags().BoolVar(&refrigerated, "refrigerated", false, "cargo needs refrigeration")
	cmd.Flags().StringVar(&planned, "date", "", "planned day, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

func newShipmentsAssignCommand(opts *options) *cobra.Command {
	var truckID, driverID int64

	cmd := &cobra.Command{
		Use:   "assign ID",
		Short: "Book a truck and a driver for a planned shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				assign, err := commands.NewAssignResourcesCommand(id, kernel.ID(truckID), kernel.ID(driverID))
				if err != nil {
					return err
				}
				if err = root.CreateAssignResourcesCommandHandler().Handle(ctx, assign); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "shipment %s assigned truck %d and driver %d\n", id, truckID, driverID)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&truckID, "truck", 0, "truck ID")
	cmd.Flags().Int64Var(&driverID, "driver", 0, "driver ID")
	_ = cmd.MarkFlagRequired("truck")
	_ = cmd.MarkFlagRequired("driver")
	return cmd
}

type shipmentAction func(ctx context.Context, root *CompositionRoot, id kernel.ID) error

func newShipmentActionCommand(opts *options, name, short string, action shipmentAction) *cobra.Command {
	return &cobra.Command{
		Use:   name + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args, 0)
			if err != nil {
				return err
			}
			return runOffline(cmd, opts, true, func(ctx context.Context, root *CompositionRoot) error {
				if err := action(ctx, root, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "shipment %s: %s done\n", id, name)
				return nil
			})
		},
	}
}

func startShipment(ctx context.Context, root *CompositionRoot, id kernel.ID) error {
	cmd, err := commands.NewStartShipmentCommand(id)
	if err != nil {
		return err
	}
	return root.CreateStartShipmentCommandHandler().Handle(ctx, cmd)
}

func completeShipment(ctx context.Context, root *CompositionRoot, id kernel.ID) error {
	cmd, err := commands.NewCompleteShipmentCommand(id)
	if err != nil {
		return err
	}
	return root.CreateCompleteShipmentCommandHandler().Handle(ctx, cmd)
}

func cancelShipment(ctx context.Context, root *CompositionRoot, id kernel.ID) error {
	cmd, err := commands.NewCancelShipmentCommand(id)
	if err != nil {
		return err
	}
	return root.CreateCancelShipmentCommandHandler().Handle(ctx, cmd)
}
