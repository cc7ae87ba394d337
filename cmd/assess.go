package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akoirala/pathwise/internal/assess"
	"github.com/akoirala/pathwise/internal/evaluator"
)

var assessCmd = &cobra.Command{
	Use:   "assess <student-id>",
	Short: "Grade a submission and fold the outcome into the path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		nodeID, _ := cmd.Flags().GetString("node")
		links, _ := cmd.Flags().GetStringSlice("link")

		concept, err := readFileFlag(cmd, "idea")
		if err != nil {
			return err
		}
		uiArtifact, _ := cmd.Flags().GetString("ui")
		code, err := readFileFlag(cmd, "code")
		if err != nil {
			return err
		}

		svc, st, err := openService(cmd, true)
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := svc.Assess(cmd.Context(), evaluator.Submission{
			StudentID:  studentID,
			NodeID:     nodeID,
			ConceptDoc: concept,
			UIArtifact: uiArtifact,
			Code:       code,
			Links:      links,
		})
		if err != nil {
			return err
		}

		printResult(result)
		return nil
	},
}

func printResult(r *assess.Result) {
	verdict := badStyle.Render("FAIL")
	if r.Passed() {
		verdict = goodStyle.Render("PASS")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n",
		titleStyle.Render(r.NodeID),
		scoreStyle(r.OverallScore).Render(fmt.Sprintf("%.1f", r.OverallScore)),
		verdict)
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		labelStyle.Render("Level:"), string(r.Level),
		labelStyle.Render("Next channel:"), r.ExitRule.RecommendedChannel.DisplayName())
	for _, cat := range assess.AllCategories() {
		score := r.CategoryScores[cat]
		fmt.Fprintf(&b, "  %-5s %s\n", cat, scoreStyle(score).Render(fmt.Sprintf("%.1f", score)))
	}
	fmt.Println(cardStyle.Render(strings.TrimRight(b.String(), "\n")))

	if len(r.Diagnosis) > 0 {
		fmt.Println(titleStyle.Render("Findings"))
		for _, d := range r.Diagnosis {
			fmt.Printf("  P%d %s: %s\n", d.Priority, d.Dimension, d.Issue)
			if d.Fix != "" {
				fmt.Printf("     %s\n", labelStyle.Render("fix: "+d.Fix))
			}
		}
	}

	if r.ExitRule.RequireRemediation && len(r.ExitRule.Remedy) > 0 {
		fmt.Println(titleStyle.Render("Required before retry"))
		for _, rem := range r.ExitRule.Remedy {
			fmt.Printf("  • %s\n", rem)
		}
	}
	if len(r.ExitRule.UnlockNodes) > 0 {
		fmt.Println(titleStyle.Render("Unlocked"))
		fmt.Printf("  %s\n", strings.Join(r.ExitRule.UnlockNodes, ", "))
	}

	if len(r.Resources) > 0 {
		fmt.Println(titleStyle.Render("Recommended resources"))
		for _, res := range r.Resources {
			fmt.Printf("  • %s\n", res)
		}
	}

	fmt.Println()
	fmt.Println(r.Feedback)
}

func init() {
	assessCmd.Flags().String("node", "", "Node to assess (defaults to the student's current node)")
	assessCmd.Flags().String("idea", "", "Path to the concept document")
	assessCmd.Flags().String("ui", "", "Reference to the UI artifact (image path or URL)")
	assessCmd.Flags().String("code", "", "Path to the code listing")
	assessCmd.Flags().StringSlice("link", nil, "Supporting links, e.g. the repository (repeatable)")
}
