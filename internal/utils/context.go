// Package utils provides the shared helpers the handlers lean on: response
// writing, transaction plumbing, logging, and claim extraction.
package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// contextKey is a type used for context keys to avoid conflicts with other
// packages' context keys.
type contextKey struct {
	name string
}

// String returns the string representation of the context key. Gin stores
// values under plain strings, so the keys are always used via String().
func (c *contextKey) String() string {
	return c.name
}

// ClaimsKey is the context key the JWT middleware stores validated claims under.
var ClaimsKey = &contextKey{"claims"}

// TraceIdKey is the context key for the per-request trace id.
var TraceIdKey = &contextKey{"traceId"}

// SanitizedPayloadKey is the context key for the bound and sanitized request body.
var SanitizedPayloadKey = &contextKey{"sanitizedPayload"}

var errNoClaims = errors.New("no token claims in request context")

// UserIdFromContext reads the authenticated user's id from the JWT claims
// the middleware stored. The subject travels as the string form of the id.
func UserIdFromContext(c *gin.Context) (int, error) {
	value, ok := c.Get(ClaimsKey.String())
	if !ok {
		return 0, errNoClaims
	}

	claims, ok := value.(jwt.MapClaims)
	if !ok {
		return 0, errNoClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(sub)
}
