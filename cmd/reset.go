package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <student-id>",
	Short: "Delete a student's path state",
	Long:  "Deletes the student's path and node progress so a fresh init starts clean. Assessment records are append-only and are kept.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("Delete all path progress for %q? [y/N] ", studentID)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		svc, st, err := openService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.ResetProgress(cmd.Context(), studentID); err != nil {
			return err
		}
		fmt.Println("Path progress deleted for", studentID)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
