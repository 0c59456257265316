package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/logger"
)

// validate runs a single submission through the pipeline without Kafka.
// Useful for replaying a stuck submission by hand.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <submission-id>",
		Short: "Validate one submission and print the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseSubmissionID(args[0])
			if err != nil {
				return fmt.Errorf("invalid submission id %q: %w", args[0], err)
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log)

			svc, cleanup, err := buildService(cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome, err := svc.ValidateSubmission(cmd.Context(), id)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(outcome)
		},
	}
}
