package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	domainemployee "github.com/alanyang/caller-hub/internal/domain/employee"
	"github.com/alanyang/caller-hub/internal/mocks"
	employeesvc "github.com/alanyang/caller-hub/internal/service/employee"
	transportemployee "github.com/alanyang/caller-hub/internal/transport/employee"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockEmployeeRepository) {
	t.Helper()
	repo := mocks.NewMockEmployeeRepository(gomock.NewController(t))
	r := gin.New()
	transportemployee.Register(r.Group("/employees"), employeesvc.NewService(repo))
	return r, repo
}

// ── POST / (createEmployee) ───────────────────────────────────────────────────

func TestCreateEmployee(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		setup    func(repo *mocks.MockEmployeeRepository)
		wantCode int
	}{
		{
			name: "success returns 201",
			body: map[string]any{"name": "Priya Shah", "email": "priya@example.com", "phone": "+15550200", "role": "employee"},
			setup: func(repo *mocks.MockEmployeeRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e domainemployee.Employee) (domainemployee.Employee, error) {
						return e, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "unknown role returns 400",
			body:     map[string]any{"name": "Priya Shah", "email": "priya@example.com", "phone": "+15550200", "role": "supervisor"},
			setup:    func(repo *mocks.MockEmployeeRepository) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing fields returns 400",
			body:     map[string]any{"role": "employee"},
			setup:    func(repo *mocks.MockEmployeeRepository) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate email returns 409",
			body: map[string]any{"name": "Priya Shah", "email": "priya@example.com", "phone": "+15550200", "role": "admin"},
			setup: func(repo *mocks.MockEmployeeRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domainemployee.Employee{}, domainemployee.ErrDuplicateEmail)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, repo := newRouter(t)
			tt.setup(repo)

			raw, _ := json.Marshal(tt.body)
			w := httptest.NewRecorder()
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/employees/", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

// ── GET / (listEmployees) ─────────────────────────────────────────────────────

func TestListEmployees(t *testing.T) {
	r, repo := newRouter(t)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]domainemployee.Load{
			{Employee: domainemployee.Employee{ID: uuid.New(), Name: "Priya Shah"}, ActiveCallerCount: 3},
		}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/employees/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var loads []domainemployee.Load
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loads))
	require.Len(t, loads, 1)
	assert.Equal(t, 3, loads[0].ActiveCallerCount)
}

func TestGetEmployee_NotFound(t *testing.T) {
	r, repo := newRouter(t)
	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).
		Return(domainemployee.Employee{}, domainassignment.ErrEmployeeNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/employees/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEmployee(t *testing.T) {
	r, repo := newRouter(t)
	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodDelete, "/employees/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
