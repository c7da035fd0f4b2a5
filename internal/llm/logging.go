package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ritika/funlearn/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// request log.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      store.LLMLogRepo
}

// WithLogging wraps a Provider with request logging. The provider name is
// the configured provider selector, not the model ID.
func WithLogging(p Provider, provider string, log store.LLMLogRepo) Provider {
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := store.LLMRequestRecord{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		if cost := LookupCost(rec.Model); cost != nil {
			rec.CostUSD = cost.Cost(rec.InputTokens, rec.OutputTokens)
		}
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Log the request but don't fail the call if logging fails.
	if logErr := l.log.AppendLLMRequest(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
