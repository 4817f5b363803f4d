package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-sets/internal/store"
)

type healthService struct {
	checker store.HealthChecker
}

func NewHealthService(checker store.HealthChecker) HealthService {
	return &healthService{checker: checker}
}

func (h *healthService) Ready(ctx context.Context) error {
	if h.checker == nil {
		return ErrStorageUnavailable
	}
	if err := h.checker.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
