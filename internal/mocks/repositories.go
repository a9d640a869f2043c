package mocks

import (
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/repository"
)

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	Members      []models.Member
	ReplaceCalls int
}

// Verify interface compliance
var _ repository.MemberRepository = (*MockMemberRepository)(nil)

func NewMockMemberRepository(members ...models.Member) *MockMemberRepository {
	return &MockMemberRepository{Members: members}
}

func (m *MockMemberRepository) All() []models.Member {
	out := make([]models.Member, len(m.Members))
	for i := range m.Members {
		out[i] = m.Members[i].Clone()
	}
	return out
}

func (m *MockMemberRepository) Replace(members []models.Member) {
	m.ReplaceCalls++
	m.Members = members
}

func (m *MockMemberRepository) Get(id string) (models.Member, bool) {
	for _, mem := range m.Members {
		if mem.ID == id {
			return mem.Clone(), true
		}
	}
	return models.Member{}, false
}

func (m *MockMemberRepository) Count() int {
	return len(m.Members)
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	Projects     []models.Project
	ReplaceCalls int
}

// Verify interface compliance
var _ repository.ProjectRepository = (*MockProjectRepository)(nil)

func NewMockProjectRepository(projects ...models.Project) *MockProjectRepository {
	return &MockProjectRepository{Projects: projects}
}

func (m *MockProjectRepository) All() []models.Project {
	out := make([]models.Project, len(m.Projects))
	for i := range m.Projects {
		out[i] = m.Projects[i].Clone()
	}
	return out
}

func (m *MockProjectRepository) Replace(projects []models.Project) {
	m.ReplaceCalls++
	m.Projects = projects
}

func (m *MockProjectRepository) Get(id string) (models.Project, bool) {
	for _, p := range m.Projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

func (m *MockProjectRepository) Count() int {
	return len(m.Projects)
}
