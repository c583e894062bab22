// Package cli is the terminal surface of the accounting client: a filterable
// document list, the cancel/delete confirmations, and the printable-document
// export. All document logic lives in the application layer; commands only
// parse flags and render output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alonilk2/accounting-sub001/internal/infrastructure/api"
	"github.com/alonilk2/accounting-sub001/pkg/config"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
	// client implements both repository ports against the configured backend.
	client *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "accli",
	Short: "Client for the small-business accounting backend",
	Long: `accli lists, cancels, deletes and prints tax documents held by the
accounting backend configured via API_BASE_URL.

Run the bundled devserver binary for a local in-memory backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
		client = api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
