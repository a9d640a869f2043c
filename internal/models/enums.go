package models

// Role represents a member's standing in the collective
type Role string

const (
	RoleArmy           Role = "Army"
	RoleCitizen        Role = "Citizen"
	RoleRepresentative Role = "Representative"
	RoleElder          Role = "Elder"
)

// roleRanks orders roles by increasing privilege
var roleRanks = map[Role]int{
	RoleArmy:           1,
	RoleCitizen:        2,
	RoleRepresentative: 3,
	RoleElder:          4,
}

// Rank returns the privilege rank of the role, 0 for unknown roles
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r carries at least the privilege of min
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// SkillType is the category a skill belongs to
type SkillType string

const (
	SkillDevelopment SkillType = "Development"
	SkillDesign      SkillType = "Design"
	SkillMarketing   SkillType = "Marketing"
	SkillLore        SkillType = "Lore"
	SkillCommunity   SkillType = "Community"
	SkillTrading     SkillType = "Trading"
	SkillLegal       SkillType = "Legal"
	SkillMusic       SkillType = "Music"
	SkillAI          SkillType = "AI"
	SkillPodcast     SkillType = "Podcast"
	SkillOutreach    SkillType = "Outreach"
	SkillSales       SkillType = "Sales"
)

var skillTypes = []SkillType{
	SkillDevelopment, SkillDesign, SkillMarketing, SkillLore, SkillCommunity, SkillTrading,
	SkillLegal, SkillMusic, SkillAI, SkillPodcast, SkillOutreach, SkillSales,
}

// SkillTypes returns every skill category in display order
func SkillTypes() []SkillType {
	return append([]SkillType(nil), skillTypes...)
}

// Valid reports whether t is a known skill category
func (t SkillType) Valid() bool {
	for _, s := range skillTypes {
		if s == t {
			return true
		}
	}
	return false
}

// WorkgroupType names a workgroup a member can join
type WorkgroupType string

const (
	WorkgroupLab       WorkgroupType = "The Lab (Dev)"
	WorkgroupStudio    WorkgroupType = "The Studio (Art)"
	WorkgroupMegaphone WorkgroupType = "The Megaphone (Marketing)"
	WorkgroupNeuralNet WorkgroupType = "The Neural Net (AI)"
	WorkgroupTower     WorkgroupType = "The Tower (Lore)"
	WorkgroupStreets   WorkgroupType = "The Streets (Outreach)"
	WorkgroupAirwaves  WorkgroupType = "The Airwaves (Podcast)"
)

// DefaultWorkgroup is assigned to new projects that do not name one
const DefaultWorkgroup = WorkgroupLab

var workgroups = []WorkgroupType{
	WorkgroupLab, WorkgroupStudio, WorkgroupMegaphone, WorkgroupNeuralNet,
	WorkgroupTower, WorkgroupStreets, WorkgroupAirwaves,
}

// Workgroups returns every workgroup in display order
func Workgroups() []WorkgroupType {
	return append([]WorkgroupType(nil), workgroups...)
}

// Valid reports whether w is a known workgroup
func (w WorkgroupType) Valid() bool {
	for _, g := range workgroups {
		if g == w {
			return true
		}
	}
	return false
}

// ProjectStatus represents where an operation is in its lifecycle
type ProjectStatus string

const (
	StatusProposal ProjectStatus = "Proposal"
	StatusLive     ProjectStatus = "Live"
	StatusEnded    ProjectStatus = "Ended"
)

// ValidStatuses defines allowed project statuses
var ValidStatuses = map[ProjectStatus]bool{
	StatusProposal: true,
	StatusLive:     true,
	StatusEnded:    true,
}

// Valid reports whether s is a known status
func (s ProjectStatus) Valid() bool {
	return ValidStatuses[s]
}
