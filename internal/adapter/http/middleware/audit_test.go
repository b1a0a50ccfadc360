package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_RecordsRouteTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditService(ctrl)

	var got *domain.AuditLog
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.AuditLog) {
		got = l
	})

	r := gin.New()
	r.Use(AuditLog(audit))
	r.PUT("/kyc/admin/verify/:id", func(c *gin.Context) {
		c.Set(CtxAdmin, testAdmin)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/kyc/admin/verify/12?status=VERIFIED", nil))

	require.NotNil(t, got)
	assert.Equal(t, domain.AuditActionKYCDecide, got.Action)
	assert.Equal(t, "kyc", got.ResourceType)
	assert.Equal(t, "12", got.ResourceID)
	assert.Nil(t, got.AccountID)
	assert.Contains(t, got.Details, `"admin":"ADMIN"`)
}

func TestAuditLog_UsesHandlerResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditService(ctrl)

	var got *domain.AuditLog
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.AuditLog) {
		got = l
	})

	r := gin.New()
	r.Use(AuditLog(audit))
	r.POST("/users/register", func(c *gin.Context) {
		c.Set(CtxAuditResource, int64(5))
		c.Status(http.StatusCreated)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users/register", nil))

	require.NotNil(t, got)
	assert.Equal(t, domain.AuditActionRegister, got.Action)
	assert.Equal(t, "5", got.ResourceID)
}

func TestAuditLog_SkipsFailuresAndReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(audit))
	r.POST("/users/register", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users/register", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/1", nil))
}
