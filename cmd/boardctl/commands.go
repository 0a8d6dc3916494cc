package main

import (
	"fmt"
	"io"
	"log/slog"

	"workshop/cmd"
	"workshop/internal/adapters/out/rabbitmq"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openApp builds the composition root against the configured database.
// Events are not published from the CLI.
func openApp(c *cobra.Command) (*cmd.CompositionRoot, error) {
	envFile, err := c.Flags().GetString("env-file")
	if err != nil {
		return nil, err
	}
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}
	columns, err := cmd.LoadColumns(configs.PipelineColumnsFile)
	if err != nil {
		return nil, err
	}
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := cmd.NewCompositionRoot(configs, gormDB, rabbitmq.NopPublisher{}, columns, quiet)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Print the pipeline board",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			app, err := openApp(c)
			if err != nil {
				return err
			}
			handler := app.CreateGetPipelineBoardQueryHandler()
			board, err := handler.Handle(c.Context(), queries.NewGetPipelineBoardQuery())
			if err != nil {
				return err
			}
			renderBoard(c.OutOrStdout(), board)
			return nil
		},
	}
}

func moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <order-id> <STATUS>",
		Short: "Drop an order on another column",
		Long: `Drop an order on the column of STATUS. The move is checked against the
transition policy exactly like a drag and drop on the board.

Examples:
  boardctl move 5f0c7e1e-8f7a-4b52-9d55-0c1f3f0f6a11 CANCELLED`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			target, err := serviceorder.ParseStatus(args[1])
			if err != nil {
				return err
			}
			command, err := commands.NewMoveServiceOrderCommand(id, target)
			if err != nil {
				return err
			}

			app, err := openApp(c)
			if err != nil {
				return err
			}
			handler := app.CreateMoveServiceOrderCommandHandler()
			result, err := handler.Handle(c.Context(), command)
			if err != nil {
				return err
			}
			renderMove(c.OutOrStdout(), target, result)
			return nil
		},
	}
}

func actionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "action <order-id> <name>",
		Short: "Run a quick action on an order",
		Long: `Run a card quick action: start, wait, complete, resume or deliver.

Examples:
  boardctl action 5f0c7e1e-8f7a-4b52-9d55-0c1f3f0f6a11 start`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			command, err := commands.NewApplyQuickActionCommand(id, args[1])
			if err != nil {
				return err
			}

			app, err := openApp(c)
			if err != nil {
				return err
			}
			handler := app.CreateApplyQuickActionCommandHandler()
			result, err := handler.Handle(c.Context(), command)
			if err != nil {
				return err
			}
			renderQuickAction(c.OutOrStdout(), result)
			return nil
		},
	}
}
