// Package cli defines the cobra command tree for inmoctl.
package cli

import (
	"encoding/json"
	"os"

	"inmomarket/internal/client/visits"

	"github.com/spf13/cobra"
)

var (
	flagServer string
	flagToken  string
	flagFormat string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "inmoctl",
		Short:         "Manage property visit requests from the terminal",
		Long:          "A client for the visit scheduling API. List your requested and received visits, respond to pending requests, and check your notification inbox.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", envOr("INMOMARKET_SERVER", "http://localhost:8080"), "API server base URL")
	root.PersistentFlags().StringVar(&flagToken, "token", os.Getenv("INMOMARKET_TOKEN"), "bearer token (default: INMOMARKET_TOKEN)")
	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newVisitsCmd(),
		newAcceptCmd(),
		newRejectCmd(),
		newCancelCmd(),
		newNotificationsCmd(),
		newMarkReadCmd(),
	)

	return root
}

// newVisitClient creates the typed API client from the global flags.
func newVisitClient() *visits.Client {
	return visits.NewClient(flagServer, flagToken)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
