package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akoirala/pathwise/internal/recommend"
)

var initCmd = &cobra.Command{
	Use:   "init <student-id>",
	Short: "Create a learning path from an intake diagnostic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]

		level, _ := cmd.Flags().GetString("level")
		hours, _ := cmd.Flags().GetInt("hours")
		style, _ := cmd.Flags().GetString("style")
		weak, _ := cmd.Flags().GetStringSlice("weak")
		interests, _ := cmd.Flags().GetStringSlice("interest")

		svc, st, err := openService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, p, err := svc.InitializePath(cmd.Context(), studentID, recommend.DiagnosticProfile{
			Level:           recommend.LearnerLevel(strings.ToUpper(level)),
			WeakSkills:      weak,
			TimeBudgetHours: hours,
			LearningStyle:   recommend.LearningStyle(style),
			Interests:       interests,
		})
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Path initialized"))
		printField("Student", p.StudentID)
		printField("Channel", fmt.Sprintf("%s (%s)", rec.Channel, rec.Channel.DisplayName()))
		printField("Starting node", rec.StartingNode)
		printField("Pace", fmt.Sprintf("%s (%d h/week)", rec.Pace.Level, rec.Pace.WeeklyHours))
		printField("Estimated length", fmt.Sprintf("%.1f weeks", rec.Timeline.TotalWeeks))
		fmt.Println(labelStyle.Render(rec.Pace.Suggestion))

		if len(rec.Interests.PriorityNodes) > 0 {
			fmt.Println()
			printField("Focus nodes", strings.Join(rec.Interests.PriorityNodes, ", "))
			fmt.Println(labelStyle.Render(rec.Interests.Suggestion))
		}

		if len(rec.Resources) > 0 {
			fmt.Println()
			fmt.Println(titleStyle.Render("Starter resources"))
			for _, r := range rec.Resources {
				fmt.Printf("  [%s] %s (%s)\n", r.Priority, r.Title, r.Type)
			}
		}
		return nil
	},
}

func init() {
	initCmd.Flags().String("level", "L1", "Placement level: L0, L1, L2 or L3")
	initCmd.Flags().Int("hours", 6, "Weekly study time budget in hours")
	initCmd.Flags().String("style", "examples_first", "Learning style: examples_first, theory_first, hands_on, visual")
	initCmd.Flags().StringSlice("weak", nil, "Weak skills from the diagnostic (repeatable)")
	initCmd.Flags().StringSlice("interest", nil, "Stated interests (repeatable)")
}
