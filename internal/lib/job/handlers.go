package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/phonecustody/internal/lib/email"
)

type custodyMailer interface {
	SendCustodyRecordedEmail(ctx context.Context, n email.CustodyRecorded) error
}

func (j *JobService) handleCustodyRecordedTask(ctx context.Context, t *asynq.Task) error {
	var n email.CustodyRecorded
	if err := json.Unmarshal(t.Payload(), &n); err != nil {
		// a malformed payload will never succeed
		return fmt.Errorf("failed to unmarshal custody payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskCustodyRecorded).
		Str("to", n.To).
		Int64("ownership_record_id", n.OwnershipRecordID).
		Logger()

	if j.mailer == nil {
		logger.Warn().Msg("no mailer configured, dropping custody notification")
		return nil
	}

	logger.Info().Msg("processing custody notification")

	if err := j.mailer.SendCustodyRecordedEmail(ctx, n); err != nil {
		logger.Error().Err(err).Msg("failed to send custody notification")
		return err
	}

	logger.Info().Msg("custody notification sent")
	return nil
}
