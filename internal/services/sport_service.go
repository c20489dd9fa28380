package services

import (
	"context"

	"github.com/athlyze/athlyze/internal/errors"
	"github.com/athlyze/athlyze/internal/logger"
	"github.com/athlyze/athlyze/internal/profile"
)

// SportSummary is the listing view of a scoring profile.
type SportSummary struct {
	Sport    string   `json:"sport"`
	Name     string   `json:"name"`
	Phases   []string `json:"phases"`
	Criteria int      `json:"criteria"`
}

// SportService exposes the registered scoring profiles
type SportService interface {
	ListSports(ctx context.Context) []SportSummary
	GetSport(ctx context.Context, sport string) (*profile.Profile, error)
}

type sportService struct {
	registry *profile.Registry
}

// NewSportService creates a new SportService
func NewSportService(registry *profile.Registry) SportService {
	return &sportService{registry: registry}
}

func (s *sportService) ListSports(ctx context.Context) []SportSummary {
	profiles := s.registry.List()
	summaries := make([]SportSummary, 0, len(profiles))
	for _, p := range profiles {
		phases := make([]string, 0, len(p.Phases))
		for _, ph := range p.Phases {
			phases = append(phases, ph.Name)
		}
		summaries = append(summaries, SportSummary{
			Sport:    p.Sport,
			Name:     p.Name,
			Phases:   phases,
			Criteria: len(p.Criteria),
		})
	}
	return summaries
}

func (s *sportService) GetSport(ctx context.Context, sport string) (*profile.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting sport profile: sport=%s", sport)

	p, ok := s.registry.Get(sport)
	if !ok {
		return nil, errors.NewNotFoundError("sport", sport)
	}
	return &p, nil
}
