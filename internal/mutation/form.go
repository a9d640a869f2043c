package mutation

import (
	"strings"

	"github.com/plague-community-hub/internal/models"
)

// ProposalForm carries the raw proposal form fields. Tags and Requirements are comma-separated.
type ProposalForm struct {
	ID           string               `json:"id,omitempty"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Tags         string               `json:"tags"`
	Workgroup    models.WorkgroupType `json:"workgroup"`
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	IsOngoing    bool                 `json:"isOngoing"`
	Requirements string               `json:"requirements"`
	Status       models.ProjectStatus `json:"status"`
}

// NewProposalForm returns the blank form shown for a new proposal
func NewProposalForm() ProposalForm {
	return ProposalForm{
		Workgroup: models.Workgroups()[0],
		Status:    models.StatusProposal,
	}
}

// FormFromProject pre-fills the form for editing p
func FormFromProject(p models.Project) ProposalForm {
	return ProposalForm{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Tags:         strings.Join(p.Tags, ", "),
		Workgroup:    p.Workgroup,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		IsOngoing:    p.IsOngoing,
		Requirements: strings.Join(p.Requirements, ", "),
		Status:       p.Status,
	}
}

// Patch reconciles the form into a project patch.
// List entries are trimmed and empty ones dropped; EndDate is cleared for ongoing operations.
// An empty requirement list is left for UpsertProject to default.
func (f ProposalForm) Patch() ProjectPatch {
	patch := ProjectPatch{
		Title:        ptr(f.Title),
		Description:  ptr(f.Description),
		Tags:         SplitList(f.Tags),
		Workgroup:    ptr(f.Workgroup),
		StartDate:    ptr(f.StartDate),
		IsOngoing:    ptr(f.IsOngoing),
		Requirements: SplitList(f.Requirements),
		Status:       ptr(f.Status),
	}
	if f.ID != "" {
		patch.ID = ptr(f.ID)
	}
	patch.EndDate = ptr(f.EndDate)
	if f.IsOngoing {
		patch.EndDate = ptr("")
	}
	if f.Workgroup == "" {
		patch.Workgroup = nil
	}
	if f.Status == "" {
		patch.Status = nil
	}
	return patch
}

// SplitList splits a comma-separated field, trimming entries and dropping empty ones.
// The result is never nil, so an empty field still replaces the list on edit.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
