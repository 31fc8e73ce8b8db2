package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/attendance-tracker-api/internal/service"
)

func TestMetricsRecordsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/subjects/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, target := range []string{"/subjects/1", "/subjects/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	var found, goroutines bool
	for _, mf := range families {
		switch mf.GetName() {
		case "http_requests_total":
			found = true
			assert.Len(t, mf.GetMetric(), 2)
		case "goroutines_total":
			goroutines = true
		}
	}
	assert.True(t, found)
	assert.True(t, goroutines)
}
