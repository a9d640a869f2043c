package service

import (
	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
	"github.com/plague-community-hub/internal/session"
	"github.com/rs/zerolog"
)

// directoryService is the concrete implementation of DirectoryService
type directoryService struct {
	*hub
	log zerolog.Logger
}

func newDirectoryService(h *hub, log zerolog.Logger) *directoryService {
	return &directoryService{hub: h, log: log.With().Str("service", "directory").Logger()}
}

// Members returns the members matching criteria in directory order
func (s *directoryService) Members(criteria filter.MemberCriteria) []models.Member {
	return filter.FilterMembers(s.repos.Member.All(), criteria)
}

// Member returns a single member
func (s *directoryService) Member(id string) (models.Member, error) {
	m, ok := s.repos.Member.Get(id)
	if !ok {
		return models.Member{}, models.ErrMemberNotFound
	}
	return m, nil
}

// Endorse adds one endorsement to a member's skill. Endorsing needs no login.
// Unknown members or skills change nothing and are reported as not found.
func (s *directoryService) Endorse(memberID, skillName string) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := s.repos.Member.All()
	m, ok := filter.FindMember(members, memberID)
	if !ok {
		s.log.Debug().Str("member_id", memberID).Msg("Endorse skipped, member not found")
		return models.Member{}, models.ErrMemberNotFound
	}

	if _, ok := m.FindSkill(skillName); !ok {
		s.log.Debug().Str("member_id", memberID).Str("skill", skillName).Msg("Endorse skipped, skill not found")
		return m, models.ErrSkillNotFound
	}

	next := mutation.EndorseSkill(members, memberID, skillName)
	updated, _ := filter.FindMember(next, memberID)
	s.repos.Member.Replace(next)
	return updated, nil
}

// SaveProfile applies edit to the logged-in member and re-syncs the session copy
func (s *directoryService) SaveProfile(edit mutation.ProfileEdit) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := session.RequireLogin(s.current); err != nil {
		return models.Member{}, err
	}

	id := s.current.Member.ID
	member, ok := s.repos.Member.Get(id)
	if !ok {
		s.log.Warn().Str("member_id", id).Msg("Profile save for unknown member")
		return models.Member{}, models.ErrMemberNotFound
	}

	draft := mutation.NewProfileDraft(member)
	if err := draft.Apply(edit); err != nil {
		return models.Member{}, err
	}

	s.repos.Member.Replace(mutation.SaveProfile(s.repos.Member.All(), draft))
	saved := draft.Member()
	s.current.Member = &saved

	s.log.Info().Str("member_id", id).Int("skills", len(saved.Skills)).Msg("Profile saved")
	return draft.Member(), nil
}

// Summary recomputes the directory header statistics
func (s *directoryService) Summary() metrics.Summary {
	return metrics.Summarize(s.repos.Member.All(), s.repos.Project.All())
}
