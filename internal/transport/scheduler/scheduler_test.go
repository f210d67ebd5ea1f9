package scheduler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schedsvc "github.com/alanyang/caller-hub/internal/service/scheduler"
	transportscheduler "github.com/alanyang/caller-hub/internal/transport/scheduler"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(t *testing.T, sched *schedsvc.Scheduler) *gin.Engine {
	t.Helper()
	r := gin.New()
	transportscheduler.Register(r.Group("/scheduler"), sched)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// ── POST /trigger/:job ────────────────────────────────────────────────────────

func TestTriggerJob(t *testing.T) {
	tests := []struct {
		name        string
		job         string
		fn          schedsvc.JobFunc
		wantCode    int
		wantSuccess bool
	}{
		{
			name:        "known job runs and reports success",
			job:         "sweep",
			fn:          func(context.Context) error { return nil },
			wantCode:    http.StatusOK,
			wantSuccess: true,
		},
		{
			name:        "job error reported in body, not status",
			job:         "sweep",
			fn:          func(context.Context) error { return errors.New("pool unavailable") },
			wantCode:    http.StatusOK,
			wantSuccess: false,
		},
		{
			name:        "unknown job returns 404",
			job:         "nope",
			fn:          func(context.Context) error { return nil },
			wantCode:    http.StatusNotFound,
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := schedsvc.New()
			require.NoError(t, sched.Register("sweep", time.Hour, tt.fn))
			r := newRouter(t, sched)

			w := do(r, http.MethodPost, "/scheduler/trigger/"+tt.job)
			assert.Equal(t, tt.wantCode, w.Code)

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantSuccess, body.Success)
		})
	}
}

func TestTriggerJob_PanicReported(t *testing.T) {
	sched := schedsvc.New()
	require.NoError(t, sched.Register("sweep", time.Hour, func(context.Context) error {
		panic("bad state")
	}))
	r := newRouter(t, sched)

	w := do(r, http.MethodPost, "/scheduler/trigger/sweep")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "panicked")
}

// ── GET /status ───────────────────────────────────────────────────────────────

func TestStatus(t *testing.T) {
	sched := schedsvc.New()
	require.NoError(t, sched.Register("sweep", 5*time.Minute, func(context.Context) error { return nil }))
	require.NoError(t, sched.Register("health", 10*time.Minute, func(context.Context) error { return nil }))
	sched.Start()
	defer sched.Stop()

	r := newRouter(t, sched)
	w := do(r, http.MethodGet, "/scheduler/status")
	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]schedsvc.JobStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.Len(t, status, 2)
	assert.True(t, status["sweep"].Running)
	assert.Equal(t, "5m0s", status["sweep"].Interval)
	assert.Equal(t, "10m0s", status["health"].Interval)
	assert.NotNil(t, status["sweep"].NextRun)
}
