// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/store"
)

// RegistryReconciler drops UI registry records whose config set is gone,
// e.g. after config.toml was edited by hand. It prunes once on start and
// then on every tick.
type RegistryReconciler struct {
	repository store.ConfigSetRepository
	interval   time.Duration

	logger *logger.Logger
}

func NewRegistryReconciler(repository store.ConfigSetRepository, interval time.Duration, logger *logger.Logger) *RegistryReconciler {
	return &RegistryReconciler{
		repository: repository,
		interval:   interval,
		logger:     logger,
	}
}

// Run prunes immediately. With a non-positive interval it returns after
// that single pass.
func (r *RegistryReconciler) Run(ctx context.Context) {
	r.reconcile(ctx)

	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("registry reconciler stopped")
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *RegistryReconciler) reconcile(ctx context.Context) {
	removed, err := r.repository.PruneRegistry(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Err(err).Msg("registry reconciliation failed")
		}
		return
	}
	if removed > 0 {
		r.logger.Info().Int("removed", removed).Msg("stale registry records pruned")
	}
}
