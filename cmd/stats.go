package cmd

import (
	"fmt"

	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/proficiency"
	"github.com/ritika/funlearn/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <username>",
	Short: "Show a learner's progress and recent sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := st.Profiles().Load(ctx, username)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		c := catalog.Default()
		fmt.Printf("%s: %d points\n\n", p.Username, p.Points)
		for _, subject := range c.Subjects() {
			progress := proficiency.SubjectProgress(p, c, subject)
			fmt.Printf("%-8s level %d, %3.0f%% through the content\n",
				catalog.SubjectDisplayName(subject), p.Level(subject), progress*100)
		}

		weak := proficiency.WeakSkills(p, c.AllSkills())
		if len(weak) > 0 {
			fmt.Printf("\nSkills to practice: %v\n", weak)
		}

		attempts, err := st.Attempts().Recent(ctx, username, limit)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, a := range attempts {
				result := "failed"
				if a.Passed {
					result = "passed"
				}
				fmt.Printf("  %s  %-11s %-8s L%d  %d/%d %s\n",
					a.CreatedAt.Format("2006-01-02"), a.Kind, a.Subject, a.Level,
					a.Score, a.Total, result)
			}
		}

		// The request log is not split per profile, so the spend line
		// covers the whole database.
		usage, err := st.LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("load llm usage: %w", err)
		}
		if usage.Requests > 0 {
			fmt.Printf("\nBuddy chat: %d requests, %d tokens in / %d out, $%.4f spent\n",
				usage.Requests, usage.InputTokens, usage.OutputTokens, usage.CostUSD)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent sessions to show")
}
