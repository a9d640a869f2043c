package service

import (
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/session"
	"github.com/rs/zerolog"
)

// sessionService is the concrete implementation of SessionService
type sessionService struct {
	*hub
	log zerolog.Logger
}

func newSessionService(h *hub, log zerolog.Logger) *sessionService {
	return &sessionService{hub: h, log: log.With().Str("service", "session").Logger()}
}

// Login authenticates against the current member directory
func (s *sessionService) Login() (models.UserSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	us, err := s.auth.Login(s.repos.Member.All())
	if err != nil {
		s.log.Warn().Err(err).Msg("Login failed")
		return s.snapshot(), err
	}
	s.current = us
	s.log.Info().Str("member_id", us.Member.ID).Str("role", string(us.Member.Role)).Msg("Member logged in")
	return s.snapshot(), nil
}

// Logout clears the session
func (s *sessionService) Logout() models.UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.Member != nil {
		s.log.Info().Str("member_id", s.current.Member.ID).Msg("Member logged out")
	}
	s.current = session.Logout()
	return s.snapshot()
}

// Current returns a copy of the session
func (s *sessionService) Current() models.UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}
