package service

import (
	"fmt"

	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
	"github.com/plague-community-hub/internal/session"
	"github.com/rs/zerolog"
)

// boardService is the concrete implementation of BoardService
type boardService struct {
	*hub
	log zerolog.Logger
}

func newBoardService(h *hub, log zerolog.Logger) *boardService {
	return &boardService{hub: h, log: log.With().Str("service", "board").Logger()}
}

// Projects returns the projects matching query
func (s *boardService) Projects(query filter.ProjectQuery) []models.Project {
	return filter.FilterProjects(s.repos.Project.All(), query)
}

// Project returns a single project
func (s *boardService) Project(id string) (models.Project, error) {
	p, ok := s.repos.Project.Get(id)
	if !ok {
		return models.Project{}, models.ErrProjectNotFound
	}
	return p, nil
}

// ToggleUpvote casts or retracts the logged-in member's vote
func (s *boardService) ToggleUpvote(projectID string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := session.RequireLogin(s.current); err != nil {
		return models.Project{}, err
	}
	if _, ok := s.repos.Project.Get(projectID); !ok {
		s.log.Warn().Str("project_id", projectID).Msg("Upvote on unknown project")
		return models.Project{}, models.ErrProjectNotFound
	}

	next := mutation.ToggleUpvote(s.repos.Project.All(), projectID, s.current.Member.ID)
	s.repos.Project.Replace(next)

	p, _ := filter.FindProject(next, projectID)
	return p, nil
}

// Enlist commits the logged-in member to a project. Ended operations refuse new recruits.
func (s *boardService) Enlist(projectID string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := session.RequireLogin(s.current); err != nil {
		return models.Project{}, err
	}

	existing, ok := s.repos.Project.Get(projectID)
	if !ok {
		s.log.Warn().Str("project_id", projectID).Msg("Enlist on unknown project")
		return models.Project{}, models.ErrProjectNotFound
	}
	if existing.Status == models.StatusEnded {
		return existing, models.ErrOperationEnded
	}

	next, outcome := mutation.Enlist(s.repos.Project.All(), projectID, s.current.Member.ID)
	switch outcome {
	case mutation.AlreadyEnlisted:
		return existing, models.ErrAlreadyEnlisted
	case mutation.ProjectMissing:
		return models.Project{}, models.ErrProjectNotFound
	}

	s.repos.Project.Replace(next)
	s.log.Info().Str("project_id", projectID).Str("member_id", s.current.Member.ID).Msg("Member enlisted")

	p, _ := filter.FindProject(next, projectID)
	return p, nil
}

// SaveProject edits the project named by patch.ID, or creates a proposal when the id is absent.
// Edits require ownership; creation requires Representative rank or above.
func (s *boardService) SaveProject(patch mutation.ProjectPatch) (models.Project, error) {
	if err := validatePatch(patch); err != nil {
		return models.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := session.RequireLogin(s.current); err != nil {
		return models.Project{}, err
	}

	projects := s.repos.Project.All()

	if patch.ID != nil {
		existing, ok := filter.FindProject(projects, *patch.ID)
		if !ok {
			s.log.Warn().Str("project_id", *patch.ID).Msg("Edit of unknown project")
			return models.Project{}, models.ErrProjectNotFound
		}
		if err := session.RequireOwner(s.current, existing); err != nil {
			return models.Project{}, err
		}

		next := mutation.UpsertProject(projects, patch, s.current.Member.ID)
		s.repos.Project.Replace(next)
		updated, _ := filter.FindProject(next, existing.ID)
		s.log.Info().Str("project_id", updated.ID).Msg("Project updated")
		return updated, nil
	}

	if err := session.RequireProposer(s.current); err != nil {
		return models.Project{}, err
	}

	next := mutation.UpsertProject(projects, patch, s.current.Member.ID)
	s.repos.Project.Replace(next)
	created := next[0]
	s.log.Info().Str("project_id", created.ID).Str("elder_id", created.ElderID).Msg("Proposal created")
	return created, nil
}

// Roster resolves a project's voters or enlisted members in directory order
func (s *boardService) Roster(projectID string, kind RosterKind) ([]models.Member, error) {
	p, ok := s.repos.Project.Get(projectID)
	if !ok {
		return nil, models.ErrProjectNotFound
	}

	switch kind {
	case RosterVoters:
		return filter.Roster(s.repos.Member.All(), p.UpvoterIDs), nil
	case RosterEnlisted:
		return filter.Roster(s.repos.Member.All(), p.EnlistedIDs), nil
	default:
		return nil, fmt.Errorf("roster kind %q: %w", kind, models.ErrInvalidArgument)
	}
}

func validatePatch(patch mutation.ProjectPatch) error {
	if patch.Workgroup != nil && !patch.Workgroup.Valid() {
		return fmt.Errorf("workgroup %q: %w", *patch.Workgroup, models.ErrInvalidArgument)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return fmt.Errorf("status %q: %w", *patch.Status, models.ErrInvalidArgument)
	}
	return nil
}
