package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobmarket-service/internal/mocks"
	"jobmarket-service/internal/telemetry"
)

func TestDebugAuditRouteEmits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	publisher := new(mocks.PublisherMock)
	publisher.On("Publish", mock.Anything, "audit.logs", mock.MatchedBy(func(event any) bool {
		envelope, ok := event.(telemetry.AuditEnvelope)
		return ok && envelope.Detail.Message == "broker check"
	})).Return(nil).Once()

	emitter := telemetry.NewAuditEmitter(publisher, "audit.logs", "jobmarket-service", "test")
	RegisterDebugRoutes(router, emitter, true)

	req := httptest.NewRequest(http.MethodGet, "/debug/audit?message=broker+check", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	publisher.AssertExpectations(t)
}

func TestDebugRoutesDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	RegisterDebugRoutes(router, nil, false)

	req := httptest.NewRequest(http.MethodGet, "/debug/audit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
