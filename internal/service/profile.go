package service

import (
	"context"
	"errors"
	"sync"

	"wealthview/internal/entity"
	"wealthview/internal/repository"
	"wealthview/pkg/logger"
)

// ProfileService owns the single user profile: loading with defaults,
// partial updates, and change notification for reactive consumers.
type ProfileService interface {
	Load(ctx context.Context) (entity.UserProfile, error)
	Update(ctx context.Context, update entity.UserProfileUpdate) (entity.UserProfile, error)
	// Subscribe returns a channel receiving every saved profile and a
	// cancel function that must be called when the consumer goes away.
	Subscribe() (<-chan entity.UserProfile, func())
}

// NewProfileService creates the profile store service.
func NewProfileService(repo repository.ProfileRepository, log *logger.Logger) ProfileService {
	return &profileService{
		repo:        repo,
		log:         log,
		subscribers: make(map[int]chan entity.UserProfile),
	}
}

type profileService struct {
	repo repository.ProfileRepository
	log  *logger.Logger

	mu          sync.Mutex
	subscribers map[int]chan entity.UserProfile
	nextSubID   int
}

// Load returns the stored profile, seeding storage with the defaults on
// first use.
func (s *profileService) Load(ctx context.Context) (entity.UserProfile, error) {
	profile, err := s.repo.Load(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return entity.UserProfile{}, err
	}

	profile = entity.DefaultUserProfile()
	if err := s.repo.Save(ctx, profile); err != nil {
		return entity.UserProfile{}, err
	}
	s.log.InfoContext(ctx, "Seeded default user profile")
	return profile, nil
}

// Update shallow-merges the partial update, persists the result, and
// notifies subscribers.
func (s *profileService) Update(ctx context.Context, update entity.UserProfileUpdate) (entity.UserProfile, error) {
	// One writer at a time; profile writes only happen on direct user
	// action so the lock is uncontended in practice.
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return entity.UserProfile{}, err
		}
		current = entity.DefaultUserProfile()
	}

	merged := update.Apply(current)
	if err := s.repo.Save(ctx, merged); err != nil {
		return entity.UserProfile{}, err
	}

	for _, ch := range s.subscribers {
		select {
		case ch <- merged:
		default:
			// Slow subscribers miss intermediate states rather than
			// blocking the update path.
		}
	}

	return merged, nil
}

func (s *profileService) Subscribe() (<-chan entity.UserProfile, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan entity.UserProfile, 1)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}
