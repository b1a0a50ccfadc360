package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testAdmin = &domain.AdminPrincipal{Name: "ADMIN", Method: domain.AdminMethodAPIKey}

func authRouter(t *testing.T) (*gin.Engine, *mocks.MockTokenService, *mocks.MockAdminAuthenticator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenService(ctrl)
	admin := mocks.NewMockAdminAuthenticator(ctrl)

	whoami := func(c *gin.Context) {
		if p, ok := Admin(c); ok {
			c.String(http.StatusOK, "admin:"+p.Name)
			return
		}
		id, _ := AccountID(c)
		c.String(http.StatusOK, fmt.Sprintf("account:%d", id))
	}

	r := gin.New()
	r.Use(Authenticate(tokens, admin))
	r.GET("/me", RequireAccount(), whoami)
	r.GET("/admin", RequireAdmin(), whoami)
	r.GET("/users/:id", RequireOwnerOrAdmin("id"), whoami)
	r.GET("/open", whoami)
	return r, tokens, admin
}

func serve(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(tok string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestAuthenticate_UserToken(t *testing.T) {
	r, tokens, admin := authRouter(t)
	claims := ports.Claims{ports.ClaimAccountID: int64(7)}
	tokens.EXPECT().Verify("user-token").Return(claims, nil).Times(3)
	admin.EXPECT().AuthenticateClaims(claims).Return(nil, false).Times(3)

	w := serve(r, "/me", bearer("user-token"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "account:7", w.Body.String())

	w = serve(r, "/users/7", bearer("user-token"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, "/users/8", bearer("user-token"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AUTH_007", decodeError(t, w).ErrorCode)
}

func TestAuthenticate_ExpiredAndInvalidTokens(t *testing.T) {
	r, tokens, _ := authRouter(t)
	tokens.EXPECT().Verify("old").Return(nil, ports.ErrTokenExpired)
	tokens.EXPECT().Verify("forged").Return(nil, fmt.Errorf("%w: bad signature", ports.ErrTokenInvalid))

	w := serve(r, "/open", bearer("old"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_005", decodeError(t, w).ErrorCode)

	w = serve(r, "/open", bearer("forged"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_004", decodeError(t, w).ErrorCode)

	w = serve(r, "/open", map[string]string{"Authorization": "Basic abc"})
	assert.Equal(t, "AUTH_004", decodeError(t, w).ErrorCode)
}

func TestAuthenticate_TokenWithoutSubject(t *testing.T) {
	r, tokens, admin := authRouter(t)
	claims := ports.Claims{"foo": "bar"}
	tokens.EXPECT().Verify("odd").Return(claims, nil)
	admin.EXPECT().AuthenticateClaims(claims).Return(nil, false)

	w := serve(r, "/open", bearer("odd"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_AdminToken(t *testing.T) {
	r, tokens, admin := authRouter(t)
	claims := ports.Claims{ports.ClaimRole: domain.RoleAdmin}
	p := &domain.AdminPrincipal{Name: "ADMIN", Method: domain.AdminMethodToken}
	tokens.EXPECT().Verify("admin-token").Return(claims, nil).Times(3)
	admin.EXPECT().AuthenticateClaims(claims).Return(p, true).Times(3)

	assert.Equal(t, "admin:ADMIN", serve(r, "/admin", bearer("admin-token")).Body.String())
	assert.Equal(t, http.StatusOK, serve(r, "/users/99", bearer("admin-token")).Code)

	w := serve(r, "/me", bearer("admin-token"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticate_AdminKey(t *testing.T) {
	r, _, admin := authRouter(t)
	admin.EXPECT().AuthenticateAPIKey("secret").Return(testAdmin, true).Times(2)
	admin.EXPECT().AuthenticateAPIKey("wrong").Return(nil, false)

	assert.Equal(t, http.StatusOK, serve(r, "/admin?admin_key=secret", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, "/admin", map[string]string{HeaderAdminKey: "secret"}).Code)

	w := serve(r, "/admin?admin_key=wrong", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AUTH_006", decodeError(t, w).ErrorCode)
}

func TestRequireGuards_Anonymous(t *testing.T) {
	r, _, _ := authRouter(t)

	assert.Equal(t, http.StatusOK, serve(r, "/open", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "/admin", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/users/1", nil).Code)
}

func TestRequireOwnerOrAdmin_BadID(t *testing.T) {
	r, tokens, admin := authRouter(t)
	claims := ports.Claims{ports.ClaimAccountID: int64(1)}
	tokens.EXPECT().Verify("t").Return(claims, nil)
	admin.EXPECT().AuthenticateClaims(claims).Return(nil, false)

	w := serve(r, "/users/abc", bearer("t"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeError(t, w).ErrorCode)
}
