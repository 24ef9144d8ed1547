package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Expirer interface {
	ExpireStale(ctx context.Context) (int64, error)
}

// ExpiryJob periodically moves drafts past their validity window to EXPIRED.
type ExpiryJob struct {
	expirer Expirer
	cron    *cron.Cron
	timeout time.Duration
}

// NewExpiryJob schedules the job with a standard cron spec or a descriptor
// such as "@every 1h".
func NewExpiryJob(expirer Expirer, spec string) (*ExpiryJob, error) {
	j := &ExpiryJob{
		expirer: expirer,
		cron:    cron.New(),
		timeout: time.Minute,
	}
	if _, err := j.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		_, _ = j.RunOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule proforma expiry %q: %w", spec, err)
	}
	return j, nil
}

func (j *ExpiryJob) Start() {
	j.cron.Start()
	log.Info().Int("entries", len(j.cron.Entries())).Msg("proforma expiry job started")
}

// Stop waits for a running expiry pass to finish or for ctx to be done.
func (j *ExpiryJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("proforma expiry job did not stop in time")
	}
}

func (j *ExpiryJob) RunOnce(ctx context.Context) (int64, error) {
	n, err := j.expirer.ExpireStale(ctx)
	if err != nil {
		log.Error().Err(err).Msg("proforma expiry failed")
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("expired", n).Msg("proformas expired")
	}
	return n, nil
}
