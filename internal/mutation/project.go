package mutation

import (
	"fmt"

	"github.com/plague-community-hub/internal/models"
)

// ProjectPatch is a partial project. A nil field is absent and keeps the existing value on merge.
type ProjectPatch struct {
	ID           *string
	Title        *string
	Description  *string
	Tags         []string
	Workgroup    *models.WorkgroupType
	Status       *models.ProjectStatus
	Requirements []string
	StartDate    *string
	EndDate      *string
	IsOngoing    *bool
}

// MergeProject returns base with every present patch field applied.
// ID, ElderID, votes, enlistment and applicants are never taken from the patch.
func MergeProject(base models.Project, patch ProjectPatch) models.Project {
	p := base.Clone()
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Tags != nil {
		p.Tags = append([]string{}, patch.Tags...)
	}
	if patch.Workgroup != nil {
		p.Workgroup = *patch.Workgroup
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Requirements != nil {
		p.Requirements = models.NormalizeRequirements(patch.Requirements)
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.IsOngoing != nil {
		p.IsOngoing = *patch.IsOngoing
	}
	return p
}

// UpsertProject edits the project named by patch.ID, or creates a new one when patch.ID is nil.
//
// An edit whose id matches nothing returns the list unchanged. A new project is owned by
// actingMemberID, starts with no votes or enlistment, and is prepended to the list.
// The ongoing/end-date rule is not enforced here; values are stored as given.
func UpsertProject(projects []models.Project, patch ProjectPatch, actingMemberID string) []models.Project {
	if patch.ID != nil {
		return updateProject(projects, *patch.ID, func(p *models.Project) {
			*p = MergeProject(*p, patch)
		})
	}

	out := make([]models.Project, 0, len(projects)+1)
	out = append(out, newProject(projects, patch, actingMemberID))
	return append(out, projects...)
}

func newProject(existing []models.Project, patch ProjectPatch, elderID string) models.Project {
	p := models.Project{
		ID:          NextProjectID(existing),
		Title:       models.DefaultProjectTitle,
		ElderID:     elderID,
		UpvoterIDs:  []string{},
		Tags:        []string{},
		Workgroup:   models.DefaultWorkgroup,
		Status:      models.StatusProposal,
		EnlistedIDs: []string{},
	}
	if patch.Title != nil && *patch.Title != "" {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if len(patch.Tags) > 0 {
		p.Tags = append([]string{}, patch.Tags...)
	}
	if patch.Workgroup != nil && *patch.Workgroup != "" {
		p.Workgroup = *patch.Workgroup
	}
	if patch.Status != nil && *patch.Status != "" {
		p.Status = *patch.Status
	}
	p.Requirements = models.NormalizeRequirements(patch.Requirements)
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.IsOngoing != nil {
		p.IsOngoing = *patch.IsOngoing
	}
	return p
}

// NextProjectID returns P<len+1>, counting upward past any label already taken
func NextProjectID(projects []models.Project) string {
	taken := make(map[string]bool, len(projects))
	for _, p := range projects {
		taken[p.ID] = true
	}
	for n := len(projects) + 1; ; n++ {
		id := fmt.Sprintf("P%d", n)
		if !taken[id] {
			return id
		}
	}
}
