package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/akoirala/pathwise/internal/catalog"
)

// Channel timeline multipliers. Harder channels carry more work per
// node, so the week estimates stretch.
var channelMultiplier = map[catalog.Channel]float64{
	catalog.ChannelA: 1.0,
	catalog.ChannelB: 1.2,
	catalog.ChannelC: 1.5,
}

// baselineWeeklyHours is the time budget the course calibration
// assumes. Pace multipliers are computed against it.
const baselineWeeklyHours = 6

// Initial builds the onboarding recommendation for a new student from
// the intake diagnostic.
func (e *Engine) Initial(profile DiagnosticProfile) *InitialRecommendation {
	ch := initialChannel(profile.Level)
	pace := pacePlan(profile.TimeBudgetHours)

	return &InitialRecommendation{
		StudentID:    profile.StudentID,
		Channel:      ch,
		StartingNode: e.cat.First().ID,
		WeakSkills:   weakSkillPlan(profile.WeakSkills),
		Pace:         pace,
		Style:        styleAdvice(profile.LearningStyle),
		Interests:    interestFocus(profile.Interests),
		Timeline:     e.timeline(ch, pace),
		Resources:    initialResources(profile),
		Checkpoints:  monitoringCheckpoints(),
		CreatedAt:    time.Now().UTC(),
	}
}

// initialChannel seeds the starting channel from the placement level.
// Unknown levels get the standard track.
func initialChannel(level LearnerLevel) catalog.Channel {
	switch level {
	case LevelL0:
		return catalog.ChannelA
	case LevelL1, LevelL2:
		return catalog.ChannelB
	case LevelL3:
		return catalog.ChannelC
	default:
		return catalog.ChannelB
	}
}

// pacePlan maps the weekly time budget onto a timeline multiplier.
func pacePlan(weeklyHours int) PacePlan {
	ratio := float64(weeklyHours) / float64(baselineWeeklyHours)

	p := PacePlan{WeeklyHours: weeklyHours}
	switch {
	case ratio <= 0.5:
		p.Level = "slow"
		p.Multiplier = 2.0
		p.Suggestion = "Stretch the schedule and prioritize fundamentals over coverage."
	case ratio <= 0.8:
		p.Level = "standard"
		p.Multiplier = 1.2
		p.Suggestion = "Follow the standard schedule with extra practice time."
	case ratio <= 1.2:
		p.Level = "normal"
		p.Multiplier = 1.0
		p.Suggestion = "Proceed at the normal course pace."
	default:
		p.Level = "fast"
		p.Multiplier = 0.8
		p.Suggestion = "Move faster and take on the stretch material."
	}
	return p
}

// Weak skills grouped into focus areas.
var skillCategories = map[string][]string{
	"programming": {"python basics", "programming logic", "debugging"},
	"tools":       {"git", "docker", "ide"},
	"concepts":    {"http", "api design", "databases"},
	"frameworks":  {"web frameworks", "frontend frameworks", "ai frameworks"},
}

var skillResources = map[string][]string{
	"python basics": {"intro Python course", "basic syntax drills"},
	"git":           {"Git fundamentals tutorial", "version control practice"},
	"http":          {"HTTP protocol walkthrough", "web basics primer"},
	"debugging":     {"debugging techniques course", "error localization drills"},
}

// weakSkillPlan turns the flagged weak skills into a reinforcement
// strategy. Prep time scales with the skill count, capped at ten hours.
func weakSkillPlan(weakSkills []string) WeakSkillPlan {
	normalized := make(map[string]bool, len(weakSkills))
	for _, s := range weakSkills {
		normalized[strings.ToLower(strings.TrimSpace(s))] = true
	}

	var areas []string
	for _, area := range []string{"programming", "tools", "concepts", "frameworks"} {
		for _, skill := range skillCategories[area] {
			if normalized[skill] {
				areas = append(areas, area)
				break
			}
		}
	}

	var resources []string
	seen := make(map[string]bool)
	for _, skill := range weakSkills {
		for _, r := range skillResources[strings.ToLower(strings.TrimSpace(skill))] {
			if !seen[r] {
				seen[r] = true
				resources = append(resources, r)
			}
		}
	}

	prep := len(weakSkills) * 2
	if prep > 10 {
		prep = 10
	}
	return WeakSkillPlan{
		FocusAreas:    areas,
		ExtraPractice: len(weakSkills) > 3,
		PrepHours:     prep,
		Resources:     resources,
	}
}

var styleStrategies = map[LearningStyle]StyleAdvice{
	StyleExamplesFirst: {
		Approach: "example-driven",
		Recommendations: []string{
			"start from worked examples and case studies",
			"learn concepts by comparing variations",
			"focus on concrete, repeatable steps",
		},
		ResourcePreference: "case libraries and sample code",
	},
	StyleTheoryFirst: {
		Approach: "theory-led",
		Recommendations: []string{
			"understand the principle before practicing it",
			"dig into the underlying mechanisms",
			"build a complete mental model of each topic",
		},
		ResourcePreference: "reference docs and technical deep dives",
	},
	StyleHandsOn: {
		Approach: "practice-driven",
		Recommendations: []string{
			"learn by building, not by reading",
			"iterate quickly and learn from failures",
			"prioritize project work over exercises",
		},
		ResourcePreference: "sandboxes and project templates",
	},
	StyleVisual: {
		Approach: "visual",
		Recommendations: []string{
			"use diagrams and flows to anchor concepts",
			"pay attention to interface and experience work",
			"lean on visual tooling while learning",
		},
		ResourcePreference: "video walkthroughs and diagramming tools",
	},
}

func styleAdvice(style LearningStyle) StyleAdvice {
	if s, ok := styleStrategies[style]; ok {
		return s
	}
	return styleStrategies[StyleExamplesFirst]
}

// Interests mapped onto the course nodes that serve them.
var interestNodes = map[string][]string{
	"mobile":           {"ui_design", "frontend_dev"},
	"agents":           {"api_calling", "no_code_ai", "backend_dev"},
	"rag":              {"rag_system", "backend_dev"},
	"machine learning": {"model_deployment", "rag_system"},
	"web":              {"frontend_dev", "backend_dev", "ui_design"},
	"data":             {"api_calling", "rag_system"},
}

// interestFocus counts how many interests each node serves and orders
// the nodes by that weight.
func interestFocus(interests []string) InterestFocus {
	normalized := make([]string, 0, len(interests))
	for _, in := range interests {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(in)))
	}

	alignment := make(map[string]int)
	for _, in := range normalized {
		for _, node := range interestNodes[in] {
			alignment[node]++
		}
	}

	priority := make([]string, 0, len(alignment))
	for node := range alignment {
		priority = append(priority, node)
	}
	sort.Slice(priority, func(i, j int) bool {
		if alignment[priority[i]] != alignment[priority[j]] {
			return alignment[priority[i]] > alignment[priority[j]]
		}
		return priority[i] < priority[j]
	})

	return InterestFocus{
		PriorityNodes: priority,
		Alignment:     alignment,
		Suggestion:    focusSuggestion(normalized),
	}
}

func focusSuggestion(interests []string) string {
	has := make(map[string]bool, len(interests))
	for _, in := range interests {
		has[in] = true
	}
	switch {
	case has["agents"] && has["rag"]:
		return "Focus on combining agent development with retrieval techniques."
	case has["mobile"]:
		return "Invest extra effort in the UI design and frontend nodes."
	case has["machine learning"]:
		return "Go deep on model deployment and retrieval system construction."
	default:
		return "Develop all skill areas evenly toward full-stack capability."
	}
}

// timeline estimates weeks per node after the channel and pace
// multipliers, rounded to one decimal.
func (e *Engine) timeline(ch catalog.Channel, pace PacePlan) Timeline {
	mult := channelMultiplier[ch] * pace.Multiplier

	weeks := make(map[string]float64, e.cat.Len())
	total := 0.0
	for _, node := range e.cat.Nodes() {
		w := node.BaseWeeks * mult
		weeks[node.ID] = math.Round(w*10) / 10
		total += w
	}
	total = math.Round(total*10) / 10

	return Timeline{
		NodeWeeks:           weeks,
		TotalWeeks:          total,
		EstimatedCompletion: time.Now().UTC().Add(time.Duration(total * 7 * 24 * float64(time.Hour))),
		PaceLevel:           pace.Level,
	}
}

// initialResources picks starter resources: onboarding material for L0,
// reinforcement for up to three weak skills, extension material for up
// to two interests.
func initialResources(profile DiagnosticProfile) []Resource {
	var out []Resource

	if profile.Level == LevelL0 {
		out = append(out,
			Resource{Type: "starter course", Title: "Python programming from zero", Priority: "high"},
			Resource{Type: "tool guide", Title: "development environment setup", Priority: "high"},
			Resource{Type: "concept primer", Title: "APIs and web services basics", Priority: "medium"},
		)
	}

	for i, skill := range profile.WeakSkills {
		if i == 3 {
			break
		}
		out = append(out, Resource{
			Type:     "reinforcement",
			Title:    fmt.Sprintf("%s focused drills", skill),
			Priority: "medium",
		})
	}

	for i, interest := range profile.Interests {
		if i == 2 {
			break
		}
		out = append(out, Resource{
			Type:     "extension",
			Title:    fmt.Sprintf("%s case study", interest),
			Priority: "low",
		})
	}

	return out
}

func monitoringCheckpoints() []Checkpoint {
	return []Checkpoint{
		{
			Label:   "end of week 1",
			Focus:   "API calling fundamentals",
			Metrics: []string{"completion rate", "accuracy", "study time"},
		},
		{
			Label:   "end of week 3",
			Focus:   "model deployment and no-code progress",
			Metrics: []string{"project quality", "concept understanding", "hands-on ability"},
		},
		{
			Label:   "end of week 6",
			Focus:   "retrieval system and UI design capability",
			Metrics: []string{"system complexity", "design quality", "user feedback"},
		},
		{
			Label:   "course end",
			Focus:   "end-to-end project delivery",
			Metrics: []string{"project completeness", "technical depth", "originality"},
		},
	}
}
