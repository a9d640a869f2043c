package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/plague-community-hub/internal/filter"
	"github.com/plague-community-hub/internal/metrics"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/seed"
	"github.com/plague-community-hub/internal/validation"
	"github.com/spf13/cobra"
)

type loader func() (*seed.Dataset, error)

func newMembersCmd(load loader) *cobra.Command {
	var criteria filter.MemberCriteria
	var workgroup string

	cmd := &cobra.Command{
		Use:   "members",
		Short: "List members matching the directory filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load()
			if err != nil {
				return err
			}
			criteria.Workgroup = models.WorkgroupType(workgroup)
			if criteria.Workgroup != "" && !criteria.Workgroup.Valid() {
				return fmt.Errorf("unknown workgroup %q", workgroup)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tROLE\tSKILLS\tENDORSEMENTS")
			for _, m := range filter.FilterMembers(ds.Members, criteria) {
				names := make([]string, len(m.Skills))
				for i, s := range m.Skills {
					names[i] = s.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", m.ID, m.Name, m.Role, strings.Join(names, ", "), m.TotalEndorsements())
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&criteria.SearchQuery, "query", "q", "", "Search names, bios and skill names")
	cmd.Flags().StringVar(&criteria.Skill, "skill", "", "Exact skill name or category")
	cmd.Flags().StringVar(&workgroup, "workgroup", "", "Workgroup, e.g. \"The Lab (Dev)\"")
	return cmd
}

func newProjectsCmd(load loader) *cobra.Command {
	var status, title, sort string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects on the mission board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load()
			if err != nil {
				return err
			}
			q := filter.ProjectQuery{
				Status: models.ProjectStatus(status),
				Title:  title,
				Sort:   filter.ProjectSort(sort),
			}
			if q.Status != "" && !q.Status.Valid() {
				return fmt.Errorf("unknown status %q", status)
			}
			if !filter.ValidSorts[q.Sort] {
				return fmt.Errorf("unknown sort %q", sort)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tVOTES\tENLISTED\tSTART")
			for _, p := range filter.FilterProjects(ds.Projects, q) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n", p.ID, p.Title, p.Status, len(p.UpvoterIDs), len(p.EnlistedIDs), p.StartDate)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Proposal, Live or Ended")
	cmd.Flags().StringVar(&title, "title", "", "Case-insensitive title substring")
	cmd.Flags().StringVar(&sort, "sort", "", "recent, votes or enlisted")
	return cmd
}

func newContagionCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "contagion",
		Short: "Show the contagion gauge and hub totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load()
			if err != nil {
				return err
			}
			s := metrics.Summarize(ds.Members, ds.Projects)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Contagion level\t%d%% (%s)\n", s.ContagionLevel, s.Label)
			fmt.Fprintf(w, "Members\t%d\n", s.MemberCount)
			fmt.Fprintf(w, "Endorsements\t%d\n", s.TotalEndorsements)
			fmt.Fprintf(w, "Contaminations\t%d\n", s.TotalContaminations)
			fmt.Fprintf(w, "Live / Proposal / Ended\t%d / %d / %d\n", s.LiveProjects, s.ProposalProjects, s.EndedProjects)
			return w.Flush()
		},
	}
}

func newValidateCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the seed dataset and list every problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load()
			var dsErr *validation.DatasetError
			if errors.As(err, &dsErr) {
				out := cmd.OutOrStdout()
				for _, ve := range dsErr.Errors {
					fmt.Fprintln(out, ve.Error())
				}
				return fmt.Errorf("%d validation errors", len(dsErr.Errors))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d members, %d projects\n", len(ds.Members), len(ds.Projects))
			return nil
		},
	}
}
