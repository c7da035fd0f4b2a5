package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ritika/funlearn/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update funlearn to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
		err := checker.Update(ctx, &selfupdate.UpdateInput{CurrentVersion: version},
			func(p selfupdate.UpdateProgress) { fmt.Println(p.Message) })

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo funlearn update", err)
		default:
			return err
		}
	},
}
