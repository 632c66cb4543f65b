package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"freight/internal/core/domain/model/kernel"
)

type options struct {
	envFile string
}

// NewRootCommand builds the freight command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "freight",
		Short: "Freight shipment planning and dispatch service",
		Long: `Plans freight shipments, prices them, books trucks and drivers for them
and tracks them from departure to delivery.

Run "freight serve" for the HTTP API, or use the shipments, trucks and
drivers commands to work on the stored data directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newShipmentsCommand(opts),
		newTrucksCommand(opts),
		newDriversCommand(opts),
	)
	return root
}

// Execute executes the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// runOffline loads the stored snapshot into a fresh engine, runs fn on it and,
// when save is set, writes the result back.
func runOffline(
	cmd *cobra.Command,
	opts *options,
	save bool,
	fn func(ctx context.Context, root *CompositionRoot) error,
) error {
	cfg, err := LoadConfig(opts.envFile)
	if err != nil {
		return err
	}
	logger, err := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closeStore, err := OpenSnapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil {
			logger.WarnContext(ctx, "Snapshot store not closed", "error", closeErr)
		}
	}()

	root := NewCompositionRoot(store, logger)
	if err = root.Load(ctx); err != nil {
		return err
	}
	if err = fn(ctx, root); err != nil {
		return err
	}
	if save {
		return root.Save(ctx)
	}
	return nil
}

func argID(args []string, i int) (kernel.ID, error) {
	id, err := kernel.ParseID(args[i])
	if err != nil {
		return 0, err
	}
	if err = id.Validate(); err != nil {
		return 0, fmt.Errorf("argument %d: %w", i+1, err)
	}
	return id, nil
}
