package cmd

import (
	"fmt"
	"os"

	"github.com/ritika/funlearn/internal/app"
	"github.com/ritika/funlearn/internal/buddy"
	"github.com/ritika/funlearn/internal/catalog"
	"github.com/ritika/funlearn/internal/llm"
	"github.com/ritika/funlearn/internal/practice"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	c := catalog.Default()
	deps := &nav.Deps{
		Engine:   progression.New(c, st.Profiles()),
		Profiles: st.Profiles(),
		Attempts: st.Attempts(),
		Gen:      practice.New(nil),
	}

	// The buddy works offline; an LLM provider just makes it chattier.
	provider, err := llm.NewProviderFromEnv(ctx, st.LLMLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The learning buddy will use built-in replies.")
		deps.Buddy = buddy.RuleResponder{}
	} else {
		deps.Buddy = buddy.NewProviderResponder(provider)
	}

	return app.Run(deps)
}
