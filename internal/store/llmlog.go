package store

import (
	"context"
	"database/sql"
	"fmt"
)

// LLMRequestRecord captures a single LLM API call for the request log.
type LLMRequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMLogRepo provides append access to the LLM request log.
type LLMLogRepo interface {
	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, rec LLMRequestRecord) error
}

type llmLogRepo struct {
	db *sql.DB
}

// LLMUsage aggregates the request log: how many calls were made, the
// token totals and the summed estimated cost.
type LLMUsage struct {
	Requests     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

func (r *llmLogRepo) AppendLLMRequest(ctx context.Context, rec LLMRequestRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests (provider, model, purpose, input_tokens, output_tokens, cost_usd, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.InputTokens, rec.OutputTokens, rec.CostUSD, rec.LatencyMs, boolToInt(rec.Success), rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// LLMUsage sums the request log across all profiles.
func (s *Store) LLMUsage(ctx context.Context) (LLMUsage, error) {
	var u LLMUsage
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0), COALESCE(SUM(cost_usd), 0)
		 FROM llm_requests`,
	).Scan(&u.Requests, &u.InputTokens, &u.OutputTokens, &u.CostUSD)
	if err != nil {
		return LLMUsage{}, fmt.Errorf("sum llm requests: %w", err)
	}
	return u, nil
}
