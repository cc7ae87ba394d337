package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akoirala/pathwise/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().ListLLMRequests(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-6d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				formatTime(e.Timestamp),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().ListLLMRequests(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		byPurpose := make(map[string]*usage)
		byModel := make(map[string]*usage)
		add := func(m map[string]*usage, key string, in, out int) {
			u := m[key]
			if u == nil {
				u = &usage{}
				m[key] = u
			}
			u.calls++
			u.in += in
			u.out += out
		}
		for _, e := range events {
			add(byPurpose, e.Purpose, e.InputTokens, e.OutputTokens)
			add(byModel, e.Model, e.InputTokens, e.OutputTokens)
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-16s  %6s  %10s  %10s  %10s\n", "Purpose", "Calls", "Input", "Output", "Total")
		fmt.Println(strings.Repeat("─", 64))
		var totalCalls, totalIn, totalOut int
		for _, p := range sortedKeys(byPurpose) {
			u := byPurpose[p]
			fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n", p, u.calls, u.in, u.out, u.in+u.out)
			totalCalls += u.calls
			totalIn += u.in
			totalOut += u.out
		}
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

		fmt.Println()
		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 64))
		var totalCost float64
		var unknown []string
		for _, m := range sortedKeys(byModel) {
			u := byModel[m]
			cost := llm.LookupCost(m)
			if cost == nil {
				unknown = append(unknown, m)
				fmt.Printf("%-32s  %6d  %10s\n", truncate(m, 32), u.calls, "?")
				continue
			}
			c := cost.Cost(u.in, u.out)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10s\n", truncate(m, 32), u.calls, formatCost(c))
		}
		label := "TOTAL"
		if len(unknown) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-32s  %6s  %10s\n", label, "", formatCost(totalCost))
		if len(unknown) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

// usage accumulates call and token counts for one grouping key.
type usage struct {
	calls   int
	in, out int
}

func sortedKeys(m map[string]*usage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (grade-idea, grade-ui, grade-code)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
