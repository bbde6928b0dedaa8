package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/metrics"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
)

const (
	clientIDPrefix      = "RED-"
	clientIDMin         = 1000
	clientIDMax         = 9999
	clientIDMaxAttempts = 25
	clientIDBackoffStep = 5 * time.Millisecond
)

// ClientIDGenerator assigns RED-dddd identifiers. Uniqueness is decided by
// the store: a candidate is inserted and a duplicate key triggers a retry.
type ClientIDGenerator struct {
	clients     repository.ClientRepository
	intn        func(n int) int
	wait        func(ctx context.Context, d time.Duration) error
	maxAttempts int
}

func NewClientIDGenerator(clients repository.ClientRepository) *ClientIDGenerator {
	return &ClientIDGenerator{
		clients:     clients,
		intn:        rand.Intn,
		wait:        sleepCtx,
		maxAttempts: clientIDMaxAttempts,
	}
}

// Candidate returns a random id in RED-1000..RED-9999.
func (g *ClientIDGenerator) Candidate() string {
	return fmt.Sprintf("%s%04d", clientIDPrefix, clientIDMin+g.intn(clientIDMax-clientIDMin+1))
}

// Exists reports whether id is taken. It never writes.
func (g *ClientIDGenerator) Exists(ctx context.Context, id string) (bool, error) {
	return g.clients.Exists(ctx, id)
}

// Create inserts the client under a freshly generated id, retrying with
// linear backoff while the store reports a duplicate key.
func (g *ClientIDGenerator) Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := g.wait(ctx, time.Duration(attempt)*clientIDBackoffStep); err != nil {
				return nil, err
			}
		} else if err := ctx.Err(); err != nil {
			return nil, err
		}

		params.ID = g.Candidate()
		client, err := g.clients.Create(ctx, params)
		if err == nil {
			return client, nil
		}
		if !repository.IsUniqueViolation(err) {
			if repository.IsForeignKeyViolation(err) {
				return nil, apperrors.InvalidInput("developerIds", "unknown developer")
			}
			return nil, apperrors.Database(err)
		}

		metrics.ClientIDCollisionsTotal.Inc()
		log.Debug().Str("candidate", params.ID).Int("attempt", attempt+1).Msg("client id collision")
	}

	log.Warn().Int("attempts", g.maxAttempts).Msg("client id space exhausted")
	return nil, apperrors.Conflict("Could not allocate a unique client id")
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
