package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress <student-id>",
	Short: "Show a student's path state and assessment history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		historyLimit, _ := cmd.Flags().GetInt("history")

		svc, st, err := openService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := svc.GetProgress(cmd.Context(), studentID)
		if err != nil {
			return err
		}
		printProgress(p)

		if historyLimit != 0 {
			history, err := svc.History(cmd.Context(), studentID, historyLimit)
			if err != nil {
				return err
			}
			printHistory(history)
		}
		return nil
	},
}

func printProgress(p *store.StudentProgress) {
	fmt.Println(titleStyle.Render("Path for " + p.StudentID))
	printField("Channel", p.Channel)
	printField("Current node", p.CurrentNode)
	printField("Study hours", fmt.Sprintf("%.1f", p.TotalStudyHours))
	printField("Frustration", fmt.Sprintf("%.2f", p.FrustrationLevel))
	if !p.LastActivityAt.IsZero() {
		printField("Last activity", formatTime(p.LastActivityAt))
	}
	fmt.Println()

	// Course order, with any stray rows appended last.
	ordered := make([]*store.NodeProgress, 0, len(p.Nodes))
	seen := make(map[string]bool, len(p.Nodes))
	for _, id := range catalog.MustDefault().Sequence() {
		if n := p.Nodes[id]; n != nil {
			ordered = append(ordered, n)
			seen[id] = true
		}
	}
	for id, n := range p.Nodes {
		if !seen[id] {
			ordered = append(ordered, n)
		}
	}

	for _, n := range ordered {
		line := fmt.Sprintf("%-18s %-16s", n.NodeID, statusBadge(n.Status))
		if n.Status == "completed" {
			line += fmt.Sprintf("  mastery %.2f on %s", n.MasteryScore, n.Channel)
		} else if n.Retries > 0 {
			line += fmt.Sprintf("  retries %d", n.Retries)
		}
		fmt.Println("  " + line)
	}
}

func printHistory(history []*store.AssessmentRecord) {
	if len(history) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("Assessments"))
	fmt.Printf("  %-19s  %-18s  %-7s  %-6s  %s\n", "When", "Node", "Score", "Level", "Passed")
	fmt.Println("  " + strings.Repeat("─", 64))
	for _, rec := range history {
		passed := badStyle.Render("✗")
		if rec.Passed {
			passed = goodStyle.Render("✓")
		}
		fmt.Printf("  %-19s  %-18s  %-7s  %-6s  %s\n",
			formatTime(rec.CreatedAt),
			rec.NodeID,
			scoreStyle(rec.OverallScore).Render(fmt.Sprintf("%.1f", rec.OverallScore)),
			rec.Level,
			passed)
	}
}

func init() {
	progressCmd.Flags().Int("history", 10, "Number of assessment records to show (0 hides history, -1 shows all)")
}
