package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// ExpiredDeleter purges rows that are past their expiry.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// CleanupJob periodically purges expired single-use OAuth login states.
type CleanupJob struct {
	oauthStates ExpiredDeleter
	interval    time.Duration
	timeout     time.Duration
	done        chan struct{}
	stopped     chan struct{}
}

func NewCleanupJob(oauthStates ExpiredDeleter, interval time.Duration) *CleanupJob {
	return &CleanupJob{
		oauthStates: oauthStates,
		interval:    interval,
		timeout:     30 * time.Second,
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

func (j *CleanupJob) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("cleanup job started")
}

// Stop ends the loop and waits for an in-flight pass to finish.
func (j *CleanupJob) Stop() {
	close(j.done)
	<-j.stopped
	log.Info().Msg("cleanup job stopped")
}

func (j *CleanupJob) run() {
	defer close(j.stopped)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.cleanup()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.cleanup()
		}
	}
}

func (j *CleanupJob) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	j.runCleanup(ctx, "oauth states", j.oauthStates.DeleteExpired)
}

func (j *CleanupJob) runCleanup(ctx context.Context, name string, fn func(context.Context) (int64, error)) {
	count, err := fn(ctx)
	if err != nil {
		log.Error().Err(err).Msgf("failed to cleanup %s", name)
	} else if count > 0 {
		log.Info().Int64("count", count).Msgf("cleaned up %s", name)
	}
}
