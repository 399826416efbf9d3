package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/joinboard/backend/domain"
)

const actorKey = "actor"

// ActorResolver maps an opaque token key onto an actor snapshot.
type ActorResolver interface {
	ResolveToken(ctx context.Context, key string) (domain.Actor, error)
}

// ActorFrom returns the actor attached by TokenAuth, or the anonymous actor
// when the request carried no credentials.
func ActorFrom(ctx *fasthttp.RequestCtx) domain.Actor {
	if actor, ok := ctx.UserValue(actorKey).(domain.Actor); ok {
		return actor
	}
	return domain.Anonymous()
}

// TokenAuth resolves "Authorization: Token <key>" (Bearer works too) into an
// actor. Requests without credentials pass through as anonymous; the gates
// downstream decide what anonymous may do. A token that fails to resolve is
// rejected here.
func TokenAuth(resolver ActorResolver, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			key := extractToken(ctx)
			if key == "" {
				ctx.SetUserValue(actorKey, domain.Anonymous())
				next(ctx)
				return
			}

			actor, err := resolver.ResolveToken(ctx, key)
			if err != nil {
				logger.Warn("token resolution failed", zap.Error(err))
				reject(ctx)
				return
			}

			ctx.SetUserValue(actorKey, actor)
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	return header
}

func reject(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(http.StatusUnauthorized)
	body, _ := json.Marshal(map[string]interface{}{
		"ok":    false,
		"error": "invalid authentication token",
	})
	ctx.SetBody(body)
}
