package cmd

import (
	"errors"
	"fmt"

	"github.com/ritika/funlearn/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <username>",
	Short: "Delete a learner and all their progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Profiles().Delete(cmd.Context(), username); err != nil {
			if errors.Is(err, store.ErrProfileNotFound) {
				return fmt.Errorf("no learner named %q", username)
			}
			return fmt.Errorf("delete learner: %w", err)
		}

		fmt.Printf("Deleted learner %q and their progress.\n", username)
		return nil
	},
}
