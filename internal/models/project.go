package models

// DefaultProjectTitle is used when a new proposal is submitted without a title
const DefaultProjectTitle = "Untitled Proposal"

// DefaultRequirement is the sentinel requirement list for projects that name none
var DefaultRequirement = []string{"Team Member"}

// Project represents an operation proposed, run or archived by the collective
type Project struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	ElderID     string        `json:"elderId" yaml:"elderId"`
	UpvoterIDs  []string      `json:"upvoterIds" yaml:"upvoterIds"`
	Tags        []string      `json:"tags" yaml:"tags"`
	Workgroup   WorkgroupType `json:"workgroup" yaml:"workgroup"`
	Status      ProjectStatus `json:"status" yaml:"status"`
	Applicants  int           `json:"applicants" yaml:"applicants"`
	// Requirements is never empty, see NormalizeRequirements
	Requirements []string `json:"requirements" yaml:"requirements"`
	EnlistedIDs  []string `json:"enlistedIds" yaml:"enlistedIds"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	// EndDate is ignored when IsOngoing is set
	EndDate   string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	IsOngoing bool   `json:"isOngoing,omitempty" yaml:"isOngoing,omitempty"`
}

// NormalizeRequirements substitutes the default requirement for an empty list
func NormalizeRequirements(reqs []string) []string {
	if len(reqs) == 0 {
		return append([]string(nil), DefaultRequirement...)
	}
	return append([]string(nil), reqs...)
}

// HasUpvoter reports whether memberID has upvoted the project
func (p *Project) HasUpvoter(memberID string) bool {
	return containsID(p.UpvoterIDs, memberID)
}

// IsEnlisted reports whether memberID is enlisted in the project
func (p *Project) IsEnlisted(memberID string) bool {
	return containsID(p.EnlistedIDs, memberID)
}

// Clone returns a deep copy that shares no slices with p
func (p Project) Clone() Project {
	p.UpvoterIDs = copyIDs(p.UpvoterIDs)
	p.EnlistedIDs = copyIDs(p.EnlistedIDs)
	p.Tags = copyIDs(p.Tags)
	p.Requirements = copyIDs(p.Requirements)
	return p
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// copyIDs keeps empty-but-present slices non-nil so they encode as []
func copyIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	return append(make([]string, 0, len(ids)), ids...)
}
