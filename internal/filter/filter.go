// Package filter computes the visible slices of the member directory and the project board.
//
// Every function is pure: inputs are never modified and results are recomputed from scratch.
package filter

import (
	"slices"
	"strings"

	"github.com/plague-community-hub/internal/models"
	"golang.org/x/text/cases"
)

// MemberCriteria holds the directory filters. Empty fields are inactive.
type MemberCriteria struct {
	SearchQuery string
	// Skill matches a skill name or a skill category; both share one namespace
	Skill     string
	Workgroup models.WorkgroupType
}

// FilterMembers returns the members matching every active criterion, in input order
func FilterMembers(members []models.Member, c MemberCriteria) []models.Member {
	// a Caser carries state, so each call folds with its own
	fold := cases.Fold()
	query := fold.String(c.SearchQuery)

	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if matchesSearch(fold, &m, query) && matchesSkill(&m, c.Skill) && matchesWorkgroup(&m, c.Workgroup) {
			out = append(out, m)
		}
	}
	return out
}

func matchesSearch(fold cases.Caser, m *models.Member, query string) bool {
	if query == "" {
		return true
	}
	if containsFolded(fold, m.Name, query) || containsFolded(fold, m.Bio, query) {
		return true
	}
	for _, s := range m.Skills {
		if containsFolded(fold, s.Name, query) {
			return true
		}
	}
	return false
}

// matchesSkill compares case-sensitively, a skill literally named "AI" also matches the AI category
func matchesSkill(m *models.Member, skill string) bool {
	if skill == "" {
		return true
	}
	for _, s := range m.Skills {
		if s.Name == skill || string(s.Category) == skill {
			return true
		}
	}
	return false
}

func matchesWorkgroup(m *models.Member, wg models.WorkgroupType) bool {
	return wg == "" || m.InWorkgroup(wg)
}

func containsFolded(fold cases.Caser, s, foldedQuery string) bool {
	return strings.Contains(fold.String(s), foldedQuery)
}

// ProjectSort names a board ordering
type ProjectSort string

const (
	SortNone     ProjectSort = ""
	SortRecent   ProjectSort = "recent"
	SortVotes    ProjectSort = "votes"
	SortEnlisted ProjectSort = "enlisted"
)

// ValidSorts defines the accepted sort keys
var ValidSorts = map[ProjectSort]bool{
	SortNone:     true,
	SortRecent:   true,
	SortVotes:    true,
	SortEnlisted: true,
}

// ProjectQuery holds the board filters. An empty Status matches every project.
type ProjectQuery struct {
	Status models.ProjectStatus
	Title  string
	Sort   ProjectSort
}

// FilterProjects returns the projects matching q. Sorting is stable, ties keep input order.
func FilterProjects(projects []models.Project, q ProjectQuery) []models.Project {
	fold := cases.Fold()
	title := fold.String(q.Title)

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		if title != "" && !containsFolded(fold, p.Title, title) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortRecent:
		slices.SortStableFunc(out, byStartDateDesc)
	case SortVotes:
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return len(b.UpvoterIDs) - len(a.UpvoterIDs)
		})
	case SortEnlisted:
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return len(b.EnlistedIDs) - len(a.EnlistedIDs)
		})
	}
	return out
}

// byStartDateDesc orders ISO dates newest first; projects without a start date go last
func byStartDateDesc(a, b models.Project) int {
	switch {
	case a.StartDate == b.StartDate:
		return 0
	case a.StartDate == "":
		return 1
	case b.StartDate == "":
		return -1
	}
	return strings.Compare(b.StartDate, a.StartDate)
}
