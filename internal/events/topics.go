package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Topic names for the submission validation pipeline.
const (
	TopicValidationRequests = "submission-validation-requests"
	TopicValidationRetries  = "submission-validation-retries"
	TopicDeadLetter         = "submission-validation-deadletter"
)

// EnsureTopics creates the pipeline topics if they do not already exist.
// Existing topics are left untouched.
func EnsureTopics(ctx context.Context, client *kgo.Client) error {
	adm := kadm.NewClient(client)

	resps, err := adm.CreateTopics(ctx, 1, 1, nil,
		TopicValidationRequests, TopicValidationRetries, TopicDeadLetter)
	if err != nil {
		return fmt.Errorf("creating topics: %w", err)
	}
	for _, resp := range resps {
		if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("creating topic %s: %w", resp.Topic, resp.Err)
		}
	}
	return nil
}
