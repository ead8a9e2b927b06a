package http

import (
	"context"

	"github.com/aussiebroadwan/userdeck/internal/domain"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

func contextWithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFrom returns the verified identity attached by AuthnMiddleware.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(domain.Identity)
	return id, ok
}
