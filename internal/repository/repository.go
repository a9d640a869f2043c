package repository

import (
	"github.com/plague-community-hub/internal/models"
)

// MemberRepository defines the interface for member snapshot storage
type MemberRepository interface {
	All() []models.Member
	Replace(members []models.Member)
	Get(id string) (models.Member, bool)
	Count() int
}

// ProjectRepository defines the interface for project snapshot storage
type ProjectRepository interface {
	All() []models.Project
	Replace(projects []models.Project)
	Get(id string) (models.Project, bool)
	Count() int
}

// Repositories holds all repository interfaces
type Repositories struct {
	Member  MemberRepository
	Project ProjectRepository
}

// New creates in-memory repositories holding copies of the given seed
func New(members []models.Member, projects []models.Project) *Repositories {
	return &Repositories{
		Member:  NewMemberRepo(members),
		Project: NewProjectRepo(projects),
	}
}
