package diagnostic

import (
	"context"
	"fmt"

	"github.com/balanco/balanco/internal/event_bus"
	"github.com/balanco/balanco/internal/utils"
	"github.com/balanco/balanco/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetDiagnostic loads the effective user's record merged with the default
	// template. The result is flagged IsDefault when nothing was persisted yet.
	GetDiagnostic(ctx context.Context) (DiagnosticRecord, error)
	// SaveDiagnostic normalizes and persists the record for the effective user.
	SaveDiagnostic(ctx context.Context, record DiagnosticRecord) (DiagnosticRecord, error)
	// CacheAnalysis stores a generated analysis and its fingerprint on the
	// persisted record. Reads trigger it, so it does not stamp LastUpdated
	// and does not notify subscribers.
	CacheAnalysis(ctx context.Context, analysis string, hash string) error
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewService(repo Repository, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus, clock: clock}
}

func (s *ServiceImpl) GetDiagnostic(ctx context.Context) (DiagnosticRecord, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return DiagnosticRecord{}, fmt.Errorf("failed to get current user: %w", err)
	}

	persisted, err := s.repo.Find(ctx, userId)
	if err != nil {
		return DiagnosticRecord{}, err
	}
	return Merge(persisted, DefaultTemplate()), nil
}

func (s *ServiceImpl) SaveDiagnostic(ctx context.Context, record DiagnosticRecord) (DiagnosticRecord, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return DiagnosticRecord{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if record.IsDefault {
		// An untouched template must never be written as user data.
		log.Debugf("skipping save of default record for user %d", userId)
		return record, nil
	}

	record.Normalize()
	record.LastUpdated = s.clock.Now()

	if err := s.repo.Save(ctx, userId, record); err != nil {
		return DiagnosticRecord{}, err
	}

	if s.eventBus != nil {
		err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.DiagnosticUpdated, event_bus.DiagnosticUpdatedEvent{
			UserId:      userId,
			LastUpdated: record.LastUpdated,
		}))
		if err != nil {
			log.Warnf("failed to publish diagnostic.updated for user %d: %v", userId, err)
		}
	}

	return record, nil
}

func (s *ServiceImpl) CacheAnalysis(ctx context.Context, analysis string, hash string) error {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.UpdateAnalysis(ctx, userId, analysis, hash)
}
