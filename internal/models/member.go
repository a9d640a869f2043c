package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Skill is a named specialty with an endorsement counter
type Skill struct {
	Name         string    `json:"name" yaml:"name"`
	Category     SkillType `json:"category" yaml:"category"`
	Endorsements int       `json:"endorsements" yaml:"endorsements"`
}

// NewSkill creates a skill with no endorsements
func NewSkill(name string, category SkillType) (Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Skill{}, fmt.Errorf("skill name is required: %w", ErrInvalidArgument)
	}
	return Skill{Name: name, Category: category}, nil
}

// Member represents a participant profile in the collective
type Member struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	XHandle      string          `json:"xHandle" yaml:"xHandle"`
	Bio          string          `json:"bio" yaml:"bio"`
	Avatar       string          `json:"avatar" yaml:"avatar"`
	Skills       []Skill         `json:"skills" yaml:"skills"`
	Workgroups   []WorkgroupType `json:"workgroups" yaml:"workgroups"`
	Role         Role            `json:"role" yaml:"role"`
	IsRecruiter  bool            `json:"isRecruiter" yaml:"isRecruiter"`
	LearningMode bool            `json:"learningMode" yaml:"learningMode"`
}

// FoldName normalizes a skill name for case-insensitive identity.
// It builds a fresh caser per call; loops over many strings should hold their own cases.Fold().
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// HasSkill reports whether the member has a skill whose name matches case-insensitively
func (m *Member) HasSkill(name string) bool {
	key := FoldName(name)
	for _, s := range m.Skills {
		if FoldName(s.Name) == key {
			return true
		}
	}
	return false
}

// FindSkill returns the skill named exactly name. Matching is case-sensitive.
func (m *Member) FindSkill(name string) (Skill, bool) {
	for _, s := range m.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// AddSkill appends a skill, rejecting a case-insensitive name collision
func (m *Member) AddSkill(skill Skill) error {
	if m.HasSkill(skill.Name) {
		return fmt.Errorf("%s: %w", skill.Name, ErrSkillExists)
	}
	m.Skills = append(m.Skills, skill)
	return nil
}

// InWorkgroup reports whether the member belongs to wg
func (m *Member) InWorkgroup(wg WorkgroupType) bool {
	for _, w := range m.Workgroups {
		if w == wg {
			return true
		}
	}
	return false
}

// TotalEndorsements sums endorsements across all skills
func (m *Member) TotalEndorsements() int {
	total := 0
	for _, s := range m.Skills {
		total += s.Endorsements
	}
	return total
}

// Clone returns a deep copy that shares no slices with m
func (m Member) Clone() Member {
	if m.Skills != nil {
		m.Skills = append(make([]Skill, 0, len(m.Skills)), m.Skills...)
	}
	if m.Workgroups != nil {
		m.Workgroups = append(make([]WorkgroupType, 0, len(m.Workgroups)), m.Workgroups...)
	}
	return m
}
