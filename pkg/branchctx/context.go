package branchctx

import (
	"context"
)

type contextKey string

const (
	// branchIDKey is the key used to store the branch ID in the context
	branchIDKey contextKey = "branch_id"
)

// SetBranchIDContext stores the branch ID in the context
func SetBranchIDContext(ctx context.Context, branchID string) context.Context {
	return context.WithValue(ctx, branchIDKey, branchID)
}

// GetBranchIDFromContext reads the branch ID from the context
func GetBranchIDFromContext(ctx context.Context) string {
	if branchID, ok := ctx.Value(branchIDKey).(string); ok {
		return branchID
	}
	return ""
}
