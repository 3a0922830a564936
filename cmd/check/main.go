package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vuorovahti/internal/app"
	"vuorovahti/internal/avoinna"
	"vuorovahti/internal/config"
	"vuorovahti/internal/controller/handlers"
	"vuorovahti/internal/service"
)

var (
	Version = "dev"
)

// One-shot checker: same resolver as the bot, verdicts printed to
// stdout instead of a chat.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "check [facility...]",
		Short: "Check whether the recurring badminton shifts are still free",
		Args:  cobra.ArbitraryArgs,
		RunE:  runCheck,
	}

	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vuorovahti check %s\n", Version)
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	client := avoinna.NewClient(cfg.HTTPTimeout, logger)
	availability := service.NewAvailabilityService(client, config.Facilities(), loc, logger)

	names := args
	if len(names) == 0 {
		names = availability.Names()
	}

	ctx := context.Background()
	failed := false

	for i, name := range names {
		if i > 0 {
			fmt.Println("-----")
		}

		result, err := availability.CheckFacility(ctx, name)
		if err != nil {
			logger.Error("Availability check failed",
				zap.String("facility", name),
				zap.Error(err))
			fmt.Printf("⚠️ %s: tarkistus epäonnistui\n", name)
			failed = true
			continue
		}

		fmt.Println(handlers.FormatResult(result))
	}

	if failed {
		return fmt.Errorf("one or more checks failed")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
