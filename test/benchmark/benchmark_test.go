package benchmark

import (
	"fmt"
	"testing"

	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
	"github.com/plague-community-hub/internal/validation"
)

// generateHub builds a directory of n members and n/2 projects
func generateHub(n int) ([]models.Member, []models.Project) {
	members := make([]models.Member, n)
	groups := models.Workgroups()
	types := models.SkillTypes()
	for i := range members {
		members[i] = models.Member{
			ID:   fmt.Sprint(i + 1),
			Name: fmt.Sprintf("Frog %06d", i),
			Bio:  "Dwelling in the swamp, building for the collective.",
			Role: models.RoleArmy,
			Skills: []models.Skill{
				{Name: fmt.Sprintf("Skill %d", i%50), Category: types[i%len(types)], Endorsements: i % 200},
				{Name: "Lore Crafting", Category: models.SkillLore, Endorsements: 3},
			},
			Workgroups: []models.WorkgroupType{groups[i%len(groups)]},
		}
	}

	statuses := []models.ProjectStatus{models.StatusProposal, models.StatusLive, models.StatusEnded}
	projects := make([]models.Project, n/2)
	for i := range projects {
		voters := make([]string, i%25)
		for j := range voters {
			voters[j] = fmt.Sprint(j + 1)
		}
		projects[i] = models.Project{
			ID:          fmt.Sprintf("P%d", i+1),
			Title:       fmt.Sprintf("Operation %d", i),
			ElderID:     "1",
			UpvoterIDs:  voters,
			EnlistedIDs: []string{},
			Workgroup:   groups[i%len(groups)],
			Status:      statuses[i%len(statuses)],
			StartDate:   fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1),
		}
	}
	return members, projects
}

// BenchmarkFilterMembers benchmarks directory search over 10k members
func BenchmarkFilterMembers(b *testing.B) {
	members, _ := generateHub(10000)
	criteria := filter.MemberCriteria{SearchQuery: "lore", Workgroup: models.WorkgroupTower}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		filter.FilterMembers(members, criteria)
	}

	b.ReportMetric(float64(10000*b.N)/b.Elapsed().Seconds(), "members/sec")
}

// BenchmarkFilterProjectsSorted benchmarks status filtering with a stable sort
func BenchmarkFilterProjectsSorted(b *testing.B) {
	_, projects := generateHub(10000)
	query := filter.ProjectQuery{Status: models.StatusLive, Sort: filter.SortRecent}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		filter.FilterProjects(projects, query)
	}
}

// BenchmarkContagionLevel benchmarks the gauge over a large hub
func BenchmarkContagionLevel(b *testing.B) {
	members, projects := generateHub(10000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		metrics.ContagionLevel(members, projects)
	}
}

// BenchmarkToggleUpvote benchmarks one copy-on-write vote on a large board
func BenchmarkToggleUpvote(b *testing.B) {
	_, projects := generateHub(10000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		projects = mutation.ToggleUpvote(projects, "P2500", "42")
	}
}

// BenchmarkValidateDataset benchmarks seed validation
func BenchmarkValidateDataset(b *testing.B) {
	members, projects := generateHub(5000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := validation.ValidateDataset(members, projects); err != nil {
			b.Fatalf("unexpected validation error: %v", err)
		}
	}
}
