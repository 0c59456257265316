// The claims event service validates bulk legal aid claim submissions:
// it consumes validation requests from Kafka, runs every claim through
// the validation pipeline, and writes statuses and messages back to the
// claims API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:           "claims-event-service",
		Short:         "Validates bulk legal aid claim submissions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
