package service

import (
	"sync"

	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
	"github.com/plague-community-hub/internal/repository"
	"github.com/plague-community-hub/internal/session"
	"github.com/rs/zerolog"
)

// DirectoryService defines the interface for member directory operations
type DirectoryService interface {
	Members(criteria filter.MemberCriteria) []models.Member
	Member(id string) (models.Member, error)
	Endorse(memberID, skillName string) (models.Member, error)
	SaveProfile(edit mutation.ProfileEdit) (models.Member, error)
	Summary() metrics.Summary
}

// BoardService defines the interface for mission board operations
type BoardService interface {
	Projects(query filter.ProjectQuery) []models.Project
	Project(id string) (models.Project, error)
	ToggleUpvote(projectID string) (models.Project, error)
	Enlist(projectID string) (models.Project, error)
	SaveProject(patch mutation.ProjectPatch) (models.Project, error)
	Roster(projectID string, kind RosterKind) ([]models.Member, error)
}

// SessionService defines the interface for login state
type SessionService interface {
	Login() (models.UserSession, error)
	Logout() models.UserSession
	Current() models.UserSession
}

// RosterKind selects which member list of a project Roster resolves
type RosterKind string

const (
	RosterVoters   RosterKind = "voters"
	RosterEnlisted RosterKind = "enlisted"
)

// Services holds all service interfaces
type Services struct {
	Directory DirectoryService
	Board     BoardService
	Session   SessionService
}

// hub is the controller state shared by every service.
// mu serializes commands so each read-modify-write of a snapshot is atomic.
type hub struct {
	mu      sync.Mutex
	repos   *repository.Repositories
	auth    session.Authenticator
	current models.UserSession
}

// NewServices creates all services over one shared hub
func NewServices(repos *repository.Repositories, auth session.Authenticator, log zerolog.Logger) *Services {
	if auth == nil {
		auth = session.DemoAuthenticator{}
	}
	h := &hub{repos: repos, auth: auth}

	return &Services{
		Directory: newDirectoryService(h, log),
		Board:     newBoardService(h, log),
		Session:   newSessionService(h, log),
	}
}

// snapshot returns the current session. Callers must hold mu.
func (h *hub) snapshot() models.UserSession {
	s := h.current
	if s.Member != nil {
		m := s.Member.Clone()
		s.Member = &m
	}
	return s
}
