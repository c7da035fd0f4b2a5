package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose labels the context with what the call is for, e.g.
// "buddy-chat". The logging decorator records it with each request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
