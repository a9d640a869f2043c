package repository

import (
	"sync"

	"github.com/plague-community-hub/internal/models"
)

// projectRepo is the in-memory implementation of ProjectRepository
type projectRepo struct {
	mu       sync.RWMutex
	projects []models.Project
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(projects []models.Project) ProjectRepository {
	r := &projectRepo{}
	r.Replace(projects)
	return r
}

// All returns a copy of the current snapshot in board order
func (r *projectRepo) All() []models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneProjects(r.projects)
}

// Replace swaps the snapshot for a copy of projects
func (r *projectRepo) Replace(projects []models.Project) {
	next := cloneProjects(projects)
	r.mu.Lock()
	r.projects = next
	r.mu.Unlock()
}

// Get looks a project up by id
func (r *projectRepo) Get(id string) (models.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// Count returns the number of projects
func (r *projectRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects)
}

func cloneProjects(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
