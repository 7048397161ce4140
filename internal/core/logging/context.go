package logging

import "context"

type contextKey string

const (
	formIDKey contextKey = "form_id"
	roleKey   contextKey = "role"
)

// WithFormID adds a form ID to the context.
func WithFormID(ctx context.Context, formID string) context.Context {
	return context.WithValue(ctx, formIDKey, formID)
}

// WithRole adds the selected role to the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// GetFormID retrieves the form ID from the context.
// Returns empty string if not present.
func GetFormID(ctx context.Context) string {
	if id, ok := ctx.Value(formIDKey).(string); ok {
		return id
	}
	return ""
}

// GetRole retrieves the role from the context.
// Returns empty string if not present.
func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return ""
}
