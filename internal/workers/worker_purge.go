// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/store"
)

// purgeTimeout bounds a single cleanup sweep.
const purgeTimeout = 30 * time.Second

// purgeWorker periodically deletes expired or consumed reset tokens and
// expired or revoked sessions so the tables do not grow without bound.
type purgeWorker struct {
	resetTokens store.ResetTokenRepository
	sessions    store.SessionRepository
	interval    time.Duration
	logger      *logger.Logger
}

// NewPurgeWorker creates a worker that sweeps dead reset tokens and sessions
// every interval.
func NewPurgeWorker(resetTokens store.ResetTokenRepository, sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) Worker {
	return &purgeWorker{
		resetTokens: resetTokens,
		sessions:    sessions,
		interval:    interval,
		logger:      logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (w *purgeWorker) Run() {
	go w.loop()
}

func (w *purgeWorker) loop() {
	w.logger.Info().Dur("interval", w.interval).Msg("purge worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for now := range ticker.C {
		w.purge(now)
	}
}

func (w *purgeWorker) purge(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	tokens, err := w.resetTokens.PurgeResetTokens(ctx, now)
	if err != nil {
		w.logger.Err(err).Str("func", "*purgeWorker.purge").Msg("error purging reset tokens")
	}

	sessions, err := w.sessions.PurgeSessions(ctx, now)
	if err != nil {
		w.logger.Err(err).Str("func", "*purgeWorker.purge").Msg("error purging sessions")
	}

	if tokens > 0 || sessions > 0 {
		w.logger.Info().
			Int64("reset_tokens", tokens).
			Int64("sessions", sessions).
			Msg("purged dead rows")
	}
}
