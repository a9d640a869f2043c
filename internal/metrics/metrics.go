// Package metrics derives the directory header statistics and the contagion gauge.
package metrics

import (
	"math"

	"github.com/plague-community-hub/internal/models"
)

// Summary aggregates hub activity, recomputed on demand
type Summary struct {
	TotalEndorsements   int    `json:"totalEndorsements"`
	TotalContaminations int    `json:"totalContaminations"`
	LiveProjects        int    `json:"liveProjects"`
	ProposalProjects    int    `json:"proposalProjects"`
	EndedProjects       int    `json:"endedProjects"`
	MemberCount         int    `json:"memberCount"`
	ContagionLevel      int    `json:"contagionLevel"`
	Label               string `json:"label"`
}

// Summarize reduces members and projects into a Summary
func Summarize(members []models.Member, projects []models.Project) Summary {
	s := Summary{MemberCount: len(members)}
	for i := range members {
		s.TotalEndorsements += members[i].TotalEndorsements()
	}
	for _, p := range projects {
		s.TotalContaminations += len(p.UpvoterIDs) + len(p.EnlistedIDs)
		switch p.Status {
		case models.StatusLive:
			s.LiveProjects++
		case models.StatusProposal:
			s.ProposalProjects++
		case models.StatusEnded:
			s.EndedProjects++
		}
	}
	s.ContagionLevel = level(s.TotalContaminations, s.MemberCount, s.LiveProjects, len(projects))
	s.Label = Label(s.ContagionLevel)
	return s
}

// ContagionLevel blends vote/enlist volume and the live-project ratio into [0, 100].
// Volume saturates at ten contaminations per member.
func ContagionLevel(members []models.Member, projects []models.Project) int {
	return Summarize(members, projects).ContagionLevel
}

func level(contaminations, memberCount, live, total int) int {
	volume := float64(contaminations) / float64(max(1, memberCount)*10)
	volume = math.Min(1, volume)

	var liveRatio float64
	if total > 0 {
		liveRatio = float64(live) / float64(total)
	}

	lvl := int(math.Floor(volume*50 + liveRatio*50))
	return min(100, max(0, lvl))
}

// Label names the band a contagion level falls in
func Label(level int) string {
	switch {
	case level < 30:
		return "Low Risk"
	case level < 60:
		return "Contained"
	case level < 80:
		return "Spreading"
	default:
		return "Pandemic"
	}
}

// MemberStats is the per-member breakdown shown on a profile card
type MemberStats struct {
	SkillCount        int `json:"skillCount"`
	TotalEndorsements int `json:"totalEndorsements"`
}

// ForMember computes MemberStats for m
func ForMember(m models.Member) MemberStats {
	return MemberStats{SkillCount: len(m.Skills), TotalEndorsements: m.TotalEndorsements()}
}
