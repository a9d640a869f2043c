package filter

import "github.com/plague-community-hub/internal/models"

// Roster returns the members whose id appears in ids, in member-list order.
// Unknown ids are skipped.
func Roster(members []models.Member, ids []string) []models.Member {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	out := make([]models.Member, 0, len(ids))
	for _, m := range members {
		if wanted[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// FindMember returns the member with the given id
func FindMember(members []models.Member, id string) (models.Member, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return models.Member{}, false
}

// FindProject returns the project with the given id
func FindProject(projects []models.Project, id string) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}
