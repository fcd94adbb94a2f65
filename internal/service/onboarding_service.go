package service

import (
	"context"
	"fmt"
	"sync"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"

	"github.com/rs/zerolog"
)

// OnboardingService implements ports.Onboarding. The stage lives in the
// users/{uid} document; every mutation writes through.
type OnboardingService struct {
	docs ports.DocumentStore
	auth ports.AuthSession
	log  zerolog.Logger

	mu    sync.Mutex
	stage domain.OnboardingStage
}

// NewOnboardingService creates a new OnboardingService.
func NewOnboardingService(docs ports.DocumentStore, auth ports.AuthSession, log zerolog.Logger) *OnboardingService {
	return &OnboardingService{
		docs:  docs,
		auth:  auth,
		log:   log,
		stage: domain.StageStart,
	}
}

// Load reads the persisted stage, if any. Missing documents are not an
// error; the stage stays at the start.
func (s *OnboardingService) Load(ctx context.Context) {
	uid, err := s.auth.UserID(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("resolving user for onboarding stage failed")
		return
	}

	var doc ports.UserDocument
	if err := s.docs.GetDocument(ctx, "users/"+uid, &doc); err != nil {
		s.log.Warn().Err(err).Msg("onboarding stage fetch failed")
		return
	}
	if doc.Stage == "" {
		return
	}
	s.mu.Lock()
	s.stage = doc.Stage
	s.mu.Unlock()
}

// SetStage advances the stage locally and persists it with a merge write,
// leaving the rest of the user document untouched.
func (s *OnboardingService) SetStage(ctx context.Context, stage domain.OnboardingStage) error {
	s.mu.Lock()
	s.stage = stage
	s.mu.Unlock()

	uid, err := s.auth.UserID(ctx)
	if err != nil {
		return fmt.Errorf("resolving user: %w", err)
	}
	if err := s.docs.SetDocument(ctx, "users/"+uid, map[string]any{"stage": string(stage)}, true); err != nil {
		s.log.Error().Err(err).Str("stage", string(stage)).Msg("persisting onboarding stage failed")
		return fmt.Errorf("persisting onboarding stage: %w", err)
	}
	return nil
}

// Stage returns the current onboarding stage.
func (s *OnboardingService) Stage() domain.OnboardingStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}
