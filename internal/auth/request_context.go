package auth

import (
	"context"
)

type contextKey string

var userClaimsKey contextKey = "user_claims"
var clientIDKey contextKey = "client_id"

func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) UserClaims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(UserClaims); ok {
		return claims
	}
	return nil
}

// SetClientID stores the id from the signed client cookie.
func SetClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// GetClientID returns the client id, or "" outside ClientMiddleware.
func GetClientID(ctx context.Context) string {
	if id, ok := ctx.Value(clientIDKey).(string); ok {
		return id
	}
	return ""
}

var requestIDKey contextKey = "request_id"
var requestMetaKey contextKey = "request_meta"

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestMeta is filled in by inner handlers so the outer request log can report who
// made the call.
type RequestMeta struct {
	Role string
}

func SetRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey, meta)
}

// NoteRole records the caller's role on the request meta, if the request carries one.
func NoteRole(ctx context.Context, role string) {
	if meta, ok := ctx.Value(requestMetaKey).(*RequestMeta); ok {
		meta.Role = role
	}
}
