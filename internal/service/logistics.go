package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/cache"
	"github.com/jrdxnra/eventflow-service/internal/domain"
	"github.com/jrdxnra/eventflow-service/internal/repository"
)

// LogisticsService owns per-event day-of bundles. A bundle that was never
// saved reads back empty rather than not-found so the day-of builder always
// starts from a blank plan.
type LogisticsService struct {
	repository repository.EventRepository
	gate       *cache.Gate
	log        *zap.Logger
}

// NewLogisticsService creates a new logistics service
func NewLogisticsService(repo repository.EventRepository, gate *cache.Gate, log *zap.Logger) *LogisticsService {
	return &LogisticsService{
		repository: repo,
		gate:       gate,
		log:        log,
	}
}

func logisticsKey(eventID string) string { return "logistics-" + eventID }

// GetLogistics reads an event's bundle through the freshness gate.
func (s *LogisticsService) GetLogistics(ctx context.Context, eventID string) (*domain.LogisticsBundle, error) {
	if _, err := s.repository.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	raw, err := s.gate.ReadThrough(ctx, logisticsKey(eventID), func(ctx context.Context) (string, error) {
		bundle, err := s.repository.GetLogistics(ctx, eventID)
		if errors.Is(err, repository.ErrNotFound) {
			bundle = emptyBundle(eventID)
			err = nil
		}
		if err != nil {
			return "", err
		}
		return encode(bundle)
	})
	if err != nil {
		return nil, err
	}

	var bundle domain.LogisticsBundle
	if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode cached logistics: %w", err)
	}
	return &bundle, nil
}

// ReplaceLogistics persists an edited bundle, replacing the whole document.
func (s *LogisticsService) ReplaceLogistics(ctx context.Context, bundle *domain.LogisticsBundle) (*domain.LogisticsBundle, error) {
	if _, err := s.repository.GetEvent(ctx, bundle.EventID); err != nil {
		return nil, err
	}

	if err := s.repository.ReplaceLogistics(ctx, bundle); err != nil {
		return nil, fmt.Errorf("failed to replace logistics: %w", err)
	}

	raw, err := encode(bundle)
	if err != nil {
		s.log.Warn("Failed to encode logistics for cache",
			zap.String("event_id", bundle.EventID),
			zap.Error(err))
	} else {
		s.gate.WriteThrough(ctx, logisticsKey(bundle.EventID), raw)
	}

	s.log.Info("Logistics replaced",
		zap.String("event_id", bundle.EventID),
		zap.Int("team_members", len(bundle.TeamMembers)),
		zap.Int("activities", len(bundle.Activities)))

	return bundle, nil
}

func emptyBundle(eventID string) *domain.LogisticsBundle {
	return &domain.LogisticsBundle{
		EventID:       eventID,
		TeamMembers:   []domain.TeamMember{},
		Activities:    []domain.Activity{},
		ScheduleItems: []domain.ScheduleItem{},
		Contacts:      []domain.EventContact{},
	}
}
