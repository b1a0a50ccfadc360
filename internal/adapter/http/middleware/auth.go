package middleware

import (
	"errors"
	"strconv"
	"strings"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"
	"mbanq-accounts/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderAdminKey and QueryAdminKey carry the shared admin API key.
	HeaderAdminKey = "X-Admin-Key"
	QueryAdminKey  = "admin_key"

	// Context keys
	CtxAccountID = "account_id"
	CtxAdmin     = "admin_principal"
	CtxClaims    = "claims"
)

// Authenticate resolves whatever credentials the request carries: a bearer
// session token and/or the admin API key. A request with neither passes
// through anonymous; a token that fails verification is rejected.
func Authenticate(tokens ports.TokenService, admin ports.AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				response.Abort(c, apperror.ErrInvalidToken())
				return
			}
			claims, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, ports.ErrTokenExpired) {
					response.Abort(c, apperror.ErrTokenExpired())
					return
				}
				response.Abort(c, apperror.ErrInvalidToken())
				return
			}

			c.Set(CtxClaims, claims)
			if p, ok := admin.AuthenticateClaims(claims); ok {
				c.Set(CtxAdmin, p)
			} else if id, ok := claims.AccountID(); ok {
				c.Set(CtxAccountID, id)
			} else {
				response.Abort(c, apperror.ErrInvalidToken())
				return
			}
		}

		if _, ok := Admin(c); !ok {
			if key := adminKey(c); key != "" {
				if p, ok := admin.AuthenticateAPIKey(key); ok {
					c.Set(CtxAdmin, p)
				}
			}
		}
		c.Next()
	}
}

func adminKey(c *gin.Context) string {
	if key := c.GetHeader(HeaderAdminKey); key != "" {
		return key
	}
	return c.Query(QueryAdminKey)
}

// RequireAccount admits user sessions only.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := AccountID(c); ok {
			c.Next()
			return
		}
		if _, ok := Admin(c); ok {
			response.Abort(c, apperror.ErrAccessDenied())
			return
		}
		response.Abort(c, apperror.ErrInvalidToken())
	}
}

// RequireAdmin admits any resolved administrator.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Admin(c); !ok {
			response.Abort(c, apperror.ErrAdminRequired())
			return
		}
		c.Next()
	}
}

// RequireOwnerOrAdmin admits an administrator or the account named by the
// path parameter param.
func RequireOwnerOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Admin(c); ok {
			c.Next()
			return
		}
		self, ok := AccountID(c)
		if !ok {
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}
		target, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil {
			response.Abort(c, apperror.Validation("invalid account id"))
			return
		}
		if target != self {
			response.Abort(c, apperror.ErrAccessDenied())
			return
		}
		c.Next()
	}
}

// AccountID returns the authenticated user's account id.
func AccountID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxAccountID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// Admin returns the resolved administrator, if any.
func Admin(c *gin.Context) (*domain.AdminPrincipal, bool) {
	v, ok := c.Get(CtxAdmin)
	if !ok {
		return nil, false
	}
	p, ok := v.(*domain.AdminPrincipal)
	return p, ok && p != nil
}
