// Package recommend builds upskilling plans from the skill gaps surfaced by
// match results, picking courses from the catalog and attaching practice
// tasks with a time estimate.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	maxPrioritySkills  = 5
	maxCoursesPerSkill = 2
	maxTasksPerSkill   = 2
	hoursPerWeek       = 5
)

// PlanItem is a single step in a skill plan, either a catalog course or a
// hands-on microtask.
type PlanItem struct {
	Type    string   `json:"type"` // "course" or "microtask"
	RefID   string   `json:"ref_id"`
	Label   string   `json:"label"`
	Hours   int      `json:"hours"`
	Prereqs []string `json:"prereqs,omitempty"`
}

// SkillPlan groups the plan items for one gap skill with a completion
// estimate in weeks.
type SkillPlan struct {
	Skill    string     `json:"skill"`
	ETAWeeks int        `json:"eta_weeks"`
	Items    []PlanItem `json:"items"`
}

// Plan is a full upskilling plan for a candidate.
type Plan struct {
	TargetRole     string      `json:"target_role"`
	PrioritySkills []string    `json:"priority_skills"`
	Skills         []SkillPlan `json:"plan"`
	Narrative      string      `json:"narrative,omitempty"`
}

// Narrator turns a finished plan into prose. Implementations may call an
// LLM; a nil Narrator disables the narrative entirely.
type Narrator interface {
	Narrate(ctx context.Context, plan Plan) (string, error)
}

// LabelFunc maps a canonical skill ID to its display label.
type LabelFunc func(id string) string

// Recommender builds upskilling plans from a course catalog.
type Recommender struct {
	coursesBySkill map[string][]types.CatalogEntry
	labelFor       LabelFunc
	narrator       Narrator
}

// New indexes the course entries of the catalog by the skills they teach.
// Role entries are ignored. labelFor may be nil, in which case skill IDs
// are used as labels. narrator may be nil.
func New(entries []types.CatalogEntry, labelFor LabelFunc, narrator Narrator) *Recommender {
	if labelFor == nil {
		labelFor = func(id string) string { return id }
	}
	bySkill := make(map[string][]types.CatalogEntry)
	for _, e := range entries {
		if e.Kind != types.KindCourse {
			continue
		}
		for _, s := range e.Skills {
			bySkill[s.ID] = append(bySkill[s.ID], e)
		}
	}
	for _, courses := range bySkill {
		sort.Slice(courses, func(i, j int) bool {
			ri, rj := levelRank(courses[i].Level), levelRank(courses[j].Level)
			if ri != rj {
				return ri < rj
			}
			if courses[i].Hours != courses[j].Hours {
				return courses[i].Hours < courses[j].Hours
			}
			return courses[i].ID < courses[j].ID
		})
	}
	return &Recommender{coursesBySkill: bySkill, labelFor: labelFor, narrator: narrator}
}

// PrioritySkills collects the missing must-have skills across the given
// match results and returns the most frequent ones, capped at five.
// Ties break on skill ID so the order is stable.
func PrioritySkills(results []types.MatchResult) []string {
	frequency := make(map[string]int)
	for _, r := range results {
		for _, id := range r.Breakdown.Skills.MissingMustHaves {
			frequency[id]++
		}
	}

	ids := make([]string, 0, len(frequency))
	for id := range frequency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if frequency[ids[i]] != frequency[ids[j]] {
			return frequency[ids[i]] > frequency[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > maxPrioritySkills {
		ids = ids[:maxPrioritySkills]
	}
	return ids
}

// BuildPlan assembles a plan for the given gap skills. Skills with no
// catalog courses still get a plan built from microtasks alone.
func (r *Recommender) BuildPlan(ctx context.Context, gaps []string, targetRole string) (Plan, error) {
	if targetRole == "" {
		targetRole = "Software Engineer"
	}

	plan := Plan{
		TargetRole:     targetRole,
		PrioritySkills: gaps,
		Skills:         make([]SkillPlan, 0, len(gaps)),
	}

	for _, skill := range gaps {
		items := r.courseItems(skill)
		items = append(items, r.microtasks(skill)...)
		if len(items) == 0 {
			continue
		}

		totalHours := 0
		for _, item := range items {
			totalHours += item.Hours
		}
		etaWeeks := max(1, (totalHours+hoursPerWeek-1)/hoursPerWeek)

		plan.Skills = append(plan.Skills, SkillPlan{
			Skill:    skill,
			ETAWeeks: etaWeeks,
			Items:    items,
		})
	}

	if r.narrator != nil && len(plan.Skills) > 0 {
		narrative, err := r.narrator.Narrate(ctx, plan)
		if err != nil {
			return Plan{}, fmt.Errorf("failed to narrate plan: %w", err)
		}
		plan.Narrative = narrative
	}
	return plan, nil
}

// PlanFromMatches derives the gap skills from match results and builds a
// plan. When no target role is given, the top-ranked result's title is
// used.
func (r *Recommender) PlanFromMatches(ctx context.Context, results []types.MatchResult, targetRole string) (Plan, error) {
	if targetRole == "" && len(results) > 0 {
		targetRole = results[0].Title
	}
	return r.BuildPlan(ctx, PrioritySkills(results), targetRole)
}

func (r *Recommender) courseItems(skill string) []PlanItem {
	courses := r.coursesBySkill[skill]
	if len(courses) > maxCoursesPerSkill {
		courses = courses[:maxCoursesPerSkill]
	}

	items := make([]PlanItem, 0, len(courses))
	for _, c := range courses {
		label := c.Title
		if c.Provider != "" {
			label = fmt.Sprintf("%s - %s", c.Provider, c.Title)
		}
		items = append(items, PlanItem{
			Type:  "course",
			RefID: c.ID,
			Label: label,
			Hours: c.Hours,
		})
	}
	return items
}

// taskTemplates maps canonical skill IDs to hands-on tasks with hour
// estimates. Skills without a template fall back to a generic practice
// task.
var taskTemplates = map[string][]struct {
	Label string
	Hours int
}{
	"python": {
		{"Build a simple CLI tool", 4},
		{"Write unit tests for existing code", 3},
	},
	"javascript": {
		{"Build a simple web app with vanilla JS", 6},
		{"Implement form validation", 3},
	},
	"sql": {
		{"Write complex queries for business reports", 4},
		{"Optimize slow queries", 3},
	},
	"docker": {
		{"Containerize an existing application", 4},
		{"Set up multi-stage builds", 3},
	},
	"aws": {
		{"Deploy a simple app to EC2", 4},
		{"Set up S3 bucket with proper permissions", 2},
	},
	"kubernetes": {
		{"Deploy an application to a local cluster", 5},
		{"Write liveness and readiness probes", 2},
	},
}

func (r *Recommender) microtasks(skill string) []PlanItem {
	templates, ok := taskTemplates[skill]
	if !ok {
		return []PlanItem{{
			Type:  "microtask",
			RefID: fmt.Sprintf("task-%s-1", skill),
			Label: fmt.Sprintf("Practice %s in a real project", r.labelFor(skill)),
			Hours: 6,
		}}
	}

	if len(templates) > maxTasksPerSkill {
		templates = templates[:maxTasksPerSkill]
	}
	items := make([]PlanItem, 0, len(templates))
	for i, tmpl := range templates {
		items = append(items, PlanItem{
			Type:  "microtask",
			RefID: fmt.Sprintf("task-%s-%d", skill, i+1),
			Label: tmpl.Label,
			Hours: tmpl.Hours,
		})
	}
	return items
}

func levelRank(level string) int {
	switch strings.ToLower(level) {
	case "beginner":
		return 0
	case "intermediate":
		return 1
	case "advanced":
		return 2
	default:
		return 3
	}
}
