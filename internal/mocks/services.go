package mocks

import (
	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
	"github.com/plague-community-hub/internal/service"
)

// MockDirectoryService is a mock implementation of DirectoryService
type MockDirectoryService struct {
	MembersList    []models.Member
	EndorseErr     error
	SaveProfileErr error
	SummaryResult  metrics.Summary
	EndorseCalls   []string
	SavedProfiles  []mutation.ProfileEdit
	LastCriteria   filter.MemberCriteria
}

// Verify interface compliance
var _ service.DirectoryService = (*MockDirectoryService)(nil)

func NewMockDirectoryService(members ...models.Member) *MockDirectoryService {
	return &MockDirectoryService{MembersList: members}
}

func (m *MockDirectoryService) Members(criteria filter.MemberCriteria) []models.Member {
	m.LastCriteria = criteria
	return filter.FilterMembers(m.MembersList, criteria)
}

func (m *MockDirectoryService) Member(id string) (models.Member, error) {
	if mem, ok := filter.FindMember(m.MembersList, id); ok {
		return mem, nil
	}
	return models.Member{}, models.ErrMemberNotFound
}

func (m *MockDirectoryService) Endorse(memberID, skillName string) (models.Member, error) {
	m.EndorseCalls = append(m.EndorseCalls, memberID+"/"+skillName)
	if m.EndorseErr != nil {
		return models.Member{}, m.EndorseErr
	}
	return m.Member(memberID)
}

func (m *MockDirectoryService) SaveProfile(edit mutation.ProfileEdit) (models.Member, error) {
	m.SavedProfiles = append(m.SavedProfiles, edit)
	if m.SaveProfileErr != nil {
		return models.Member{}, m.SaveProfileErr
	}
	return models.Member{Skills: edit.Skills, Workgroups: edit.Workgroups, LearningMode: edit.LearningMode}, nil
}

func (m *MockDirectoryService) Summary() metrics.Summary {
	return m.SummaryResult
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	ProjectsList  []models.Project
	UpvoteErr     error
	EnlistErr     error
	SaveErr       error
	SavedPatches  []mutation.ProjectPatch
	LastQuery     filter.ProjectQuery
	RosterMembers []models.Member
}

// Verify interface compliance
var _ service.BoardService = (*MockBoardService)(nil)

func NewMockBoardService(projects ...models.Project) *MockBoardService {
	return &MockBoardService{ProjectsList: projects}
}

func (m *MockBoardService) Projects(query filter.ProjectQuery) []models.Project {
	m.LastQuery = query
	return filter.FilterProjects(m.ProjectsList, query)
}

func (m *MockBoardService) Project(id string) (models.Project, error) {
	if p, ok := filter.FindProject(m.ProjectsList, id); ok {
		return p, nil
	}
	return models.Project{}, models.ErrProjectNotFound
}

func (m *MockBoardService) ToggleUpvote(projectID string) (models.Project, error) {
	if m.UpvoteErr != nil {
		return models.Project{}, m.UpvoteErr
	}
	return m.Project(projectID)
}

func (m *MockBoardService) Enlist(projectID string) (models.Project, error) {
	if m.EnlistErr != nil {
		return models.Project{}, m.EnlistErr
	}
	return m.Project(projectID)
}

func (m *MockBoardService) SaveProject(patch mutation.ProjectPatch) (models.Project, error) {
	m.SavedPatches = append(m.SavedPatches, patch)
	if m.SaveErr != nil {
		return models.Project{}, m.SaveErr
	}
	if patch.ID != nil {
		base, err := m.Project(*patch.ID)
		if err != nil {
			return models.Project{}, err
		}
		return mutation.MergeProject(base, patch), nil
	}
	next := mutation.UpsertProject(m.ProjectsList, patch, "mock-elder")
	return next[0], nil
}

func (m *MockBoardService) Roster(projectID string, kind service.RosterKind) ([]models.Member, error) {
	if _, err := m.Project(projectID); err != nil {
		return nil, err
	}
	return m.RosterMembers, nil
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	Session  models.UserSession
	LoginAs  *models.Member
	LoginErr error
}

// Verify interface compliance
var _ service.SessionService = (*MockSessionService)(nil)

func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

func (m *MockSessionService) Login() (models.UserSession, error) {
	if m.LoginErr != nil {
		return models.UserSession{}, m.LoginErr
	}
	if m.LoginAs == nil {
		return models.UserSession{}, models.ErrUnauthenticated
	}
	member := *m.LoginAs
	m.Session = models.UserSession{IsLoggedIn: true, Member: &member}
	return m.Session, nil
}

func (m *MockSessionService) Logout() models.UserSession {
	m.Session = models.UserSession{}
	return m.Session
}

func (m *MockSessionService) Current() models.UserSession {
	return m.Session
}
