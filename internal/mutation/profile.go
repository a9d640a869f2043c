package mutation

import (
	"fmt"
	"strings"

	"github.com/plague-community-hub/internal/models"
)

// ProfileDraft is a member's in-progress profile edit. It starts as a copy of the member and is
// written back wholesale by SaveProfile.
type ProfileDraft struct {
	member models.Member
}

// NewProfileDraft starts a draft from m
func NewProfileDraft(m models.Member) *ProfileDraft {
	return &ProfileDraft{member: m.Clone()}
}

// Member returns a copy of the drafted member
func (d *ProfileDraft) Member() models.Member {
	return d.member.Clone()
}

// ToggleSkill removes every skill matching name case-insensitively, or adds it with no endorsements
func (d *ProfileDraft) ToggleSkill(name string, category models.SkillType) {
	if d.member.HasSkill(name) {
		key := models.FoldName(name)
		kept := make([]models.Skill, 0, len(d.member.Skills))
		for _, s := range d.member.Skills {
			if models.FoldName(s.Name) != key {
				kept = append(kept, s)
			}
		}
		d.member.Skills = kept
		return
	}
	d.member.Skills = append(d.member.Skills, models.Skill{Name: name, Category: category})
}

// AddCustomSkill adds a manually entered skill. The name is trimmed; empty names and
// case-insensitive duplicates are rejected.
func (d *ProfileDraft) AddCustomSkill(name string, category models.SkillType) error {
	skill, err := models.NewSkill(name, category)
	if err != nil {
		return err
	}
	return d.member.AddSkill(skill)
}

// RemoveSkill drops the skill named exactly name
func (d *ProfileDraft) RemoveSkill(name string) {
	kept := make([]models.Skill, 0, len(d.member.Skills))
	for _, s := range d.member.Skills {
		if s.Name != name {
			kept = append(kept, s)
		}
	}
	d.member.Skills = kept
}

// ToggleWorkgroup joins or leaves wg
func (d *ProfileDraft) ToggleWorkgroup(wg models.WorkgroupType) {
	if d.member.InWorkgroup(wg) {
		kept := make([]models.WorkgroupType, 0, len(d.member.Workgroups))
		for _, w := range d.member.Workgroups {
			if w != wg {
				kept = append(kept, w)
			}
		}
		d.member.Workgroups = kept
		return
	}
	d.member.Workgroups = append(d.member.Workgroups, wg)
}

// SetLearningMode flags the member as looking for mentorship
func (d *ProfileDraft) SetLearningMode(on bool) {
	d.member.LearningMode = on
}

// ProfileEdit is a wholesale replacement of the editable profile fields
type ProfileEdit struct {
	Skills       []models.Skill
	Workgroups   []models.WorkgroupType
	LearningMode bool
}

// Apply replaces the draft's editable fields with e, enforcing skill uniqueness and valid workgroups
func (d *ProfileDraft) Apply(e ProfileEdit) error {
	next := d.member.Clone()
	next.Skills = make([]models.Skill, 0, len(e.Skills))
	for _, s := range e.Skills {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" || !s.Category.Valid() || s.Endorsements < 0 {
			return fmt.Errorf("skill %q: %w", s.Name, models.ErrInvalidArgument)
		}
		if err := next.AddSkill(s); err != nil {
			return err
		}
	}

	next.Workgroups = make([]models.WorkgroupType, 0, len(e.Workgroups))
	for _, wg := range e.Workgroups {
		if !wg.Valid() {
			return fmt.Errorf("workgroup %q: %w", wg, models.ErrInvalidArgument)
		}
		if !next.InWorkgroup(wg) {
			next.Workgroups = append(next.Workgroups, wg)
		}
	}
	next.LearningMode = e.LearningMode

	d.member = next
	return nil
}

// SaveProfile replaces the member whose id matches the draft. A missing member leaves the list unchanged.
func SaveProfile(members []models.Member, d *ProfileDraft) []models.Member {
	for i := range members {
		if members[i].ID != d.member.ID {
			continue
		}
		out := append([]models.Member(nil), members...)
		out[i] = d.member.Clone()
		return out
	}
	return members
}
