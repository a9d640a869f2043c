package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/plague-community-hub/internal/models"
)

// DateLayout is the calendar date format used by project schedules
const DateLayout = "2006-01-02"

// ValidationError represents a single validation error
type ValidationError struct {
	Record  string `json:"record"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s: %s (%v)", e.Record, e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s: %s", e.Record, e.Field, e.Message)
}

// DatasetError collects every problem found in a dataset
type DatasetError struct {
	Errors []ValidationError
}

func (e *DatasetError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		msgs = append(msgs, ve.Error())
	}
	return fmt.Sprintf("invalid dataset: %d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidArgument
func (e *DatasetError) Unwrap() error {
	return models.ErrInvalidArgument
}

// Validator provides validation methods
type Validator struct {
	memberIDCache  map[string]bool
	projectIDCache map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		memberIDCache:  make(map[string]bool),
		projectIDCache: make(map[string]bool),
	}
}

// AddMemberID adds a member ID to the cache for uniqueness and reference checks
func (v *Validator) AddMemberID(id string) {
	v.memberIDCache[id] = true
}

// AddProjectID adds a project ID to the uniqueness cache
func (v *Validator) AddProjectID(id string) {
	v.projectIDCache[id] = true
}

// ValidateMember validates a member record
func (v *Validator) ValidateMember(m *models.Member, index int) []ValidationError {
	var errors []ValidationError
	record := fmt.Sprintf("member[%d]", index)
	add := func(field, msg string, value any) {
		errors = append(errors, ValidationError{Record: record, Field: field, Message: msg, Value: value})
	}

	// Validate ID
	if m.ID == "" {
		add("id", "id is required", nil)
	} else if v.memberIDCache[m.ID] {
		add("id", "duplicate member id", m.ID)
	}

	if strings.TrimSpace(m.Name) == "" {
		add("name", "name is required", nil)
	}

	if !m.Role.Valid() {
		add("role", "invalid role, must be one of: Army, Citizen, Representative, Elder", string(m.Role))
	}

	seen := make(map[string]bool, len(m.Skills))
	for i, s := range m.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			add(field+".name", "skill name is required", nil)
			continue
		}
		key := models.FoldName(s.Name)
		if seen[key] {
			add(field+".name", "duplicate skill", s.Name)
		}
		seen[key] = true
		if !s.Category.Valid() {
			add(field+".category", "invalid skill category", string(s.Category))
		}
		if s.Endorsements < 0 {
			add(field+".endorsements", "endorsements must not be negative", s.Endorsements)
		}
	}

	groups := make(map[models.WorkgroupType]bool, len(m.Workgroups))
	for i, wg := range m.Workgroups {
		field := fmt.Sprintf("workgroups[%d]", i)
		if !wg.Valid() {
			add(field, "invalid workgroup", string(wg))
		} else if groups[wg] {
			add(field, "duplicate workgroup", string(wg))
		}
		groups[wg] = true
	}

	return errors
}

// ValidateProject validates a project record. Member ids must already be cached.
func (v *Validator) ValidateProject(p *models.Project, index int) []ValidationError {
	var errors []ValidationError
	record := fmt.Sprintf("project[%d]", index)
	add := func(field, msg string, value any) {
		errors = append(errors, ValidationError{Record: record, Field: field, Message: msg, Value: value})
	}

	// Validate ID
	if p.ID == "" {
		add("id", "id is required", nil)
	} else if v.projectIDCache[p.ID] {
		add("id", "duplicate project id", p.ID)
	}

	if strings.TrimSpace(p.Title) == "" {
		add("title", "title is required", nil)
	}

	// Validate elderId (FK)
	if p.ElderID == "" {
		add("elderId", "elderId is required", nil)
	} else if !v.memberIDCache[p.ElderID] {
		add("elderId", "referenced member does not exist", p.ElderID)
	}

	if !p.Status.Valid() {
		add("status", "invalid status, must be one of: Proposal, Live, Ended", string(p.Status))
	}
	if !p.Workgroup.Valid() {
		add("workgroup", "invalid workgroup", string(p.Workgroup))
	}
	if p.Applicants < 0 {
		add("applicants", "applicants must not be negative", p.Applicants)
	}

	errors = append(errors, v.validateIDSet(record, "upvoterIds", p.UpvoterIDs)...)
	errors = append(errors, v.validateIDSet(record, "enlistedIds", p.EnlistedIDs)...)

	var start, end time.Time
	if p.StartDate != "" {
		t, err := time.Parse(DateLayout, p.StartDate)
		if err != nil {
			add("startDate", "invalid date format, want YYYY-MM-DD", p.StartDate)
		}
		start = t
	}
	if p.EndDate != "" {
		t, err := time.Parse(DateLayout, p.EndDate)
		if err != nil {
			add("endDate", "invalid date format, want YYYY-MM-DD", p.EndDate)
		}
		end = t
	}
	if p.IsOngoing && p.EndDate != "" {
		add("endDate", "ongoing operations must not have an end date", p.EndDate)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		add("endDate", "end date is before start date", p.EndDate)
	}

	return errors
}

func (v *Validator) validateIDSet(record, field string, ids []string) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		switch {
		case seen[id]:
			errors = append(errors, ValidationError{Record: record, Field: field, Message: "duplicate member id", Value: id})
		case !v.memberIDCache[id]:
			errors = append(errors, ValidationError{Record: record, Field: field, Message: "referenced member does not exist", Value: id})
		}
		seen[id] = true
	}
	return errors
}

// ValidateDataset checks members then projects and returns a *DatasetError when anything is wrong
func ValidateDataset(members []models.Member, projects []models.Project) error {
	v := NewValidator()
	var errors []ValidationError

	for i := range members {
		errors = append(errors, v.ValidateMember(&members[i], i)...)
		if members[i].ID != "" {
			v.AddMemberID(members[i].ID)
		}
	}
	for i := range projects {
		errors = append(errors, v.ValidateProject(&projects[i], i)...)
		if projects[i].ID != "" {
			v.AddProjectID(projects[i].ID)
		}
	}

	if len(errors) > 0 {
		return &DatasetError{Errors: errors}
	}
	return nil
}
