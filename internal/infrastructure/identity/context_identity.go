package identity

import (
	"context"
	"strings"

	"retifica_xpto/internal/usecase/interfaces"
)

type ctxKey struct{}

// WithUserID stores the authenticated technician id in the context. The HTTP
// layer calls this from middleware using the X-User-ID header.
func WithUserID(ctx context.Context, userID string) context.Context {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, userID)
}

// ContextIdentityProvider reads the technician id previously stored by
// WithUserID. Returns "" when the request carried no identity.
type ContextIdentityProvider struct{}

var _ interfaces.IIdentityProvider = (*ContextIdentityProvider)(nil)

func NewContextIdentityProvider() *ContextIdentityProvider {
	return &ContextIdentityProvider{}
}

func (p *ContextIdentityProvider) CurrentUserID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}
