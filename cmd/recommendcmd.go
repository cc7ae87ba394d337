package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akoirala/pathwise/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <student-id>",
	Short: "Recommend the student's next step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]

		svc, st, err := openService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := svc.RecommendNextStep(cmd.Context(), studentID, nil)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Next step for " + rec.StudentID))
		printField("Decision", rec.Decision.DisplayName())
		printField("Channel", fmt.Sprintf("%s → %s", rec.CurrentChannel, rec.RecommendedChannel))
		if rec.NextNode != "" {
			printField("Work on", fmt.Sprintf("%s (about %d hours)", rec.NextNode, rec.EstimatedHours))
		} else {
			printField("Work on", "nothing: the course is complete")
		}
		fmt.Println(labelStyle.Render(rec.Reasoning))

		if len(rec.ScaffoldResources) > 0 {
			fmt.Println()
			fmt.Println(titleStyle.Render("Scaffolding"))
			for _, r := range rec.ScaffoldResources {
				fmt.Printf("  • %s\n", r)
			}
		}
		return nil
	},
}

var recommendAdjustCmd = &cobra.Command{
	Use:   "adjust <student-id>",
	Short: "Analyze recent history and recommend a path adjustment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]

		hours, _ := cmd.Flags().GetFloat64Slice("weekly-hours")
		pattern, _ := cmd.Flags().GetString("pattern")
		helpReqs, _ := cmd.Flags().GetInt("help-requests")

		var behavior *recommend.BehavioralSignals
		if len(hours) > 0 || pattern != "" {
			behavior = &recommend.BehavioralSignals{
				WeeklyStudyHours:  hours,
				SubmissionPattern: pattern,
				HelpRequests:      helpReqs,
			}
		}

		svc, st, err := openService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		adj, err := svc.RecommendAdjustment(cmd.Context(), studentID, behavior)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Adjustment for " + adj.StudentID))
		printField("Recommendation", string(adj.Type))
		printField("Confidence", fmt.Sprintf("%.2f", adj.Confidence))
		printField("Trend", adj.Performance.Trend)
		printField("Average score", fmt.Sprintf("%.1f", adj.Performance.AverageScore))
		printField("Engagement", adj.Behavior.Engagement)
		if len(adj.Difficulties) > 0 {
			printField("Signals", strings.Join(adj.Difficulties, ", "))
		}
		fmt.Println(labelStyle.Render(adj.Reasoning))

		fmt.Println()
		fmt.Println(titleStyle.Render("Actions"))
		for _, a := range adj.Actions {
			fmt.Printf("  • %s\n", a)
		}
		printField("Review cadence", adj.Monitoring.Frequency)
		return nil
	},
}

func init() {
	recommendAdjustCmd.Flags().Float64Slice("weekly-hours", nil, "Observed study hours per week, oldest first (repeatable)")
	recommendAdjustCmd.Flags().String("pattern", "", "Submission pattern: regular or last_minute")
	recommendAdjustCmd.Flags().Int("help-requests", 0, "Help requests made in the period")

	recommendCmd.AddCommand(recommendAdjustCmd)
}
