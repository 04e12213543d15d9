package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/yokoo-bicycle/pkg/helpers"
	"github.com/oksasatya/yokoo-bicycle/pkg/response"
)

// CtxPrincipalEmail is the gin context key holding the verified email of the
// request's principal. Unset when the request carried no credential.
const CtxPrincipalEmail = "principalEmail"

// Identity resolves an optional bearer credential to a principal email.
//
// No Authorization header: the request continues unauthenticated and no
// principal is set; gated handlers decide what an absent principal means.
//
// A presented credential must verify. Any failure (wrong scheme, expired,
// malformed, bad signature) aborts the chain with 403 before the handler
// runs; a rejected credential never reaches gated logic.
func Identity(verifier *helpers.IDTokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Error[any](c, http.StatusForbidden, "Unauthorized", nil)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			response.Error[any](c, http.StatusForbidden, "Unauthorized", err.Error())
			c.Abort()
			return
		}

		c.Set(CtxPrincipalEmail, claims.Email)
		c.Next()
	}
}

// PrincipalEmail returns the verified principal email for the request, or ""
// when the request was unauthenticated.
func PrincipalEmail(c *gin.Context) string {
	return c.GetString(CtxPrincipalEmail)
}
