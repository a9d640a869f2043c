package repository

import (
	"sync"

	"github.com/plague-community-hub/internal/models"
)

// memberRepo is the in-memory implementation of MemberRepository
type memberRepo struct {
	mu      sync.RWMutex
	members []models.Member
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(members []models.Member) MemberRepository {
	r := &memberRepo{}
	r.Replace(members)
	return r
}

// All returns a copy of the current snapshot in directory order
func (r *memberRepo) All() []models.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneMembers(r.members)
}

// Replace swaps the snapshot for a copy of members
func (r *memberRepo) Replace(members []models.Member) {
	next := cloneMembers(members)
	r.mu.Lock()
	r.members = next
	r.mu.Unlock()
}

// Get looks a member up by id
func (r *memberRepo) Get(id string) (models.Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return models.Member{}, false
}

// Count returns the number of members
func (r *memberRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func cloneMembers(in []models.Member) []models.Member {
	out := make([]models.Member, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
