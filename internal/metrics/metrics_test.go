package metrics_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/models"
)

func members(n int) []models.Member {
	out := make([]models.Member, n)
	for i := range out {
		out[i] = models.Member{
			ID:     fmt.Sprint(i + 1),
			Skills: []models.Skill{{Name: "s", Endorsements: i}},
		}
	}
	return out
}

func project(status models.ProjectStatus, votes, enlisted int) models.Project {
	p := models.Project{Status: status}
	for i := 0; i < votes; i++ {
		p.UpvoterIDs = append(p.UpvoterIDs, fmt.Sprint(i))
	}
	for i := 0; i < enlisted; i++ {
		p.EnlistedIDs = append(p.EnlistedIDs, fmt.Sprint(i))
	}
	return p
}

func TestContagionLevel(t *testing.T) {
	tests := []struct {
		name     string
		members  []models.Member
		projects []models.Project
		want     int
	}{
		{"empty everything", nil, nil, 0},
		{"no members still divides by one", nil, []models.Project{project(models.StatusLive, 3, 2)}, 75},
		{"no projects", members(5), nil, 0},
		{"half volume, no live", members(2), []models.Project{project(models.StatusProposal, 5, 5)}, 25},
		{"volume saturates", members(1), []models.Project{project(models.StatusProposal, 50, 50)}, 50},
		{"live ratio only", members(10), []models.Project{project(models.StatusLive, 0, 0), project(models.StatusEnded, 0, 0)}, 25},
		{"floored", members(3), []models.Project{project(models.StatusLive, 1, 0), project(models.StatusProposal, 0, 0), project(models.StatusProposal, 0, 0)}, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metrics.ContagionLevel(tt.members, tt.projects)
			if got != tt.want {
				t.Errorf("ContagionLevel() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("ContagionLevel() = %d out of bounds", got)
			}
		})
	}
}

func TestContagionLevel_AlwaysBounded(t *testing.T) {
	for m := 0; m < 5; m++ {
		for live := 0; live < 4; live++ {
			var projects []models.Project
			for i := 0; i < live; i++ {
				projects = append(projects, project(models.StatusLive, 40, 40))
			}
			projects = append(projects, project(models.StatusProposal, m, m))
			got := metrics.ContagionLevel(members(m), projects)
			if got < 0 || got > 100 {
				t.Fatalf("members=%d live=%d: level %d out of bounds", m, live, got)
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	projects := []models.Project{
		project(models.StatusLive, 2, 1),
		project(models.StatusProposal, 1, 0),
		project(models.StatusProposal, 0, 0),
		project(models.StatusEnded, 0, 3),
	}

	got := metrics.Summarize(members(4), projects)
	want := metrics.Summary{
		TotalEndorsements:   0 + 1 + 2 + 3,
		TotalContaminations: 7,
		LiveProjects:        1,
		ProposalProjects:    2,
		EndedProjects:       1,
		MemberCount:         4,
		ContagionLevel:      21,
		Label:               "Low Risk",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Low Risk"}, {29, "Low Risk"}, {30, "Contained"}, {59, "Contained"},
		{60, "Spreading"}, {79, "Spreading"}, {80, "Pandemic"}, {100, "Pandemic"},
	}
	for _, tt := range tests {
		if got := metrics.Label(tt.level); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestForMember(t *testing.T) {
	m := models.Member{Skills: []models.Skill{{Name: "a", Endorsements: 5}, {Name: "b", Endorsements: 7}}}
	got := metrics.ForMember(m)
	if got.SkillCount != 2 || got.TotalEndorsements != 12 {
		t.Errorf("ForMember() = %+v", got)
	}
}
