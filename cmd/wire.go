package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/evaluator"
	"github.com/akoirala/pathwise/internal/llm"
	"github.com/akoirala/pathwise/internal/path"
	"github.com/akoirala/pathwise/internal/progress"
	"github.com/akoirala/pathwise/internal/store"
)

// openStore opens the SQLite store for the command's --db / env
// configuration. The caller closes it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// openService wires the full path service: store, catalog, progress,
// and the three LLM-backed evaluators. Commands that never grade pass
// needLLM=false and work without a configured provider.
func openService(cmd *cobra.Command, needLLM bool) (*path.Service, *store.Store, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	cat, err := catalog.Default()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	var evaluators []evaluator.Evaluator
	if needLLM {
		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
		}
		evaluators = []evaluator.Evaluator{
			evaluator.NewIdeaEvaluator(provider),
			evaluator.NewUIEvaluator(provider),
			evaluator.NewCodeEvaluator(provider),
		}
	}
	runner := evaluator.NewRunner(evaluator.DefaultTimeout, evaluators...)

	prog := progress.NewService(st.ProgressRepo(), cat)
	return path.NewService(cat, prog, st.AssessmentRepo(), runner), st, nil
}

// readFileFlag reads the file named by the flag, or returns "" when the
// flag is unset.
func readFileFlag(cmd *cobra.Command, name string) (string, error) {
	p, _ := cmd.Flags().GetString(name)
	if p == "" {
		return "", nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("read --%s: %w", name, err)
	}
	return string(data), nil
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
