// Package mutation holds the copy-on-write reducers for the hub's canonical state.
//
// Each reducer takes the prior member or project list and returns a new list. Inputs are never
// modified, so callers may keep references to earlier snapshots. Reducers assume the caller has
// already authorized the acting member, see package session.
package mutation

import (
	"fmt"

	"github.com/plague-community-hub/internal/models"
)

// EndorseSkill adds one endorsement to the member's skill named exactly skillName.
// Matching is case-sensitive. A missing member or skill leaves the list unchanged.
func EndorseSkill(members []models.Member, memberID, skillName string) []models.Member {
	mi, si := -1, -1
	for i := range members {
		if members[i].ID != memberID {
			continue
		}
		mi = i
		for j, s := range members[i].Skills {
			if s.Name == skillName {
				si = j
				break
			}
		}
		break
	}
	if mi < 0 || si < 0 {
		return members
	}

	out := append([]models.Member(nil), members...)
	m := out[mi].Clone()
	m.Skills[si].Endorsements++
	out[mi] = m
	return out
}

// ToggleUpvote casts memberID's vote on the project, or retracts it if already cast
func ToggleUpvote(projects []models.Project, projectID, memberID string) []models.Project {
	return updateProject(projects, projectID, func(p *models.Project) {
		if p.HasUpvoter(memberID) {
			p.UpvoterIDs = removeID(p.UpvoterIDs, memberID)
			return
		}
		p.UpvoterIDs = append(p.UpvoterIDs, memberID)
	})
}

// EnlistOutcome reports what Enlist did
type EnlistOutcome int

const (
	// Enlisted means the member was added to the project
	Enlisted EnlistOutcome = iota + 1
	// AlreadyEnlisted means the member was enlisted before and nothing changed
	AlreadyEnlisted
	// ProjectMissing means no project has the given id and nothing changed
	ProjectMissing
)

func (o EnlistOutcome) String() string {
	switch o {
	case Enlisted:
		return "enlisted"
	case AlreadyEnlisted:
		return "already_enlisted"
	case ProjectMissing:
		return "project_missing"
	default:
		return fmt.Sprintf("EnlistOutcome(%d)", int(o))
	}
}

// Enlist commits memberID to the project. Enlistment is one-way; there is no reverse operation.
// Enlist does not look at the project status: callers must refuse enlistment in ended operations.
func Enlist(projects []models.Project, projectID, memberID string) ([]models.Project, EnlistOutcome) {
	p, ok := findProject(projects, projectID)
	if !ok {
		return projects, ProjectMissing
	}
	if p.IsEnlisted(memberID) {
		return projects, AlreadyEnlisted
	}

	out := updateProject(projects, projectID, func(p *models.Project) {
		p.EnlistedIDs = append(p.EnlistedIDs, memberID)
	})
	return out, Enlisted
}

// updateProject copies the list and the matching project before applying fn
func updateProject(projects []models.Project, projectID string, fn func(*models.Project)) []models.Project {
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		out := append([]models.Project(nil), projects...)
		p := out[i].Clone()
		fn(&p)
		out[i] = p
		return out
	}
	return projects
}

func findProject(projects []models.Project, id string) (*models.Project, bool) {
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], true
		}
	}
	return nil, false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
