package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

// fakeBackend implements every handler interface through function fields so
// each test overrides only what it exercises.
type fakeBackend struct {
	createSet     func(req models.CreateRecallSetRequest) (*ent.RecallSet, error)
	getSet        func(setID string) (*ent.RecallSet, error)
	listSets      func(limit, offset int) (*models.RecallSetListResponse, error)
	updateSet     func(setID string, req models.UpdateRecallSetRequest) (*ent.RecallSet, error)
	deleteSet     func(setID string) error
	addPoint      func(setID string, req models.CreateRecallPointRequest) (*ent.RecallPoint, error)
	getPoint      func(pointID string) (*ent.RecallPoint, error)
	listPoints    func(setID string, filters models.RecallPointFilters) ([]*ent.RecallPoint, error)
	getSession    func(sessionID string) (*ent.StudySession, error)
	activeSession func(setID string) (*ent.StudySession, error)
	listSessions  func(filters models.SessionFilters) (*models.SessionListResponse, error)
	startSession  func(req models.StartSessionRequest) (*ent.StudySession, error)
	listMessages  func(sessionID string, fromIndex int) ([]*ent.SessionMessage, error)
	listOutcomes  func(sessionID string) ([]*ent.RecallOutcome, error)
	listTangents  func(sessionID string) ([]*ent.RabbitholeEvent, error)
}

func (f *fakeBackend) CreateSet(_ context.Context, req models.CreateRecallSetRequest) (*ent.RecallSet, error) {
	return f.createSet(req)
}
func (f *fakeBackend) GetSet(_ context.Context, setID string) (*ent.RecallSet, error) {
	return f.getSet(setID)
}
func (f *fakeBackend) ListSets(_ context.Context, limit, offset int) (*models.RecallSetListResponse, error) {
	return f.listSets(limit, offset)
}
func (f *fakeBackend) UpdateSet(_ context.Context, setID string, req models.UpdateRecallSetRequest) (*ent.RecallSet, error) {
	return f.updateSet(setID, req)
}
func (f *fakeBackend) DeleteSet(_ context.Context, setID string) error {
	return f.deleteSet(setID)
}
func (f *fakeBackend) AddPoint(_ context.Context, setID string, req models.CreateRecallPointRequest) (*ent.RecallPoint, error) {
	return f.addPoint(setID, req)
}
func (f *fakeBackend) GetPoint(_ context.Context, pointID string) (*ent.RecallPoint, error) {
	return f.getPoint(pointID)
}
func (f *fakeBackend) ListPoints(_ context.Context, setID string, filters models.RecallPointFilters) ([]*ent.RecallPoint, error) {
	return f.listPoints(setID, filters)
}
func (f *fakeBackend) GetSession(_ context.Context, sessionID string) (*ent.StudySession, error) {
	return f.getSession(sessionID)
}
func (f *fakeBackend) ActiveSession(_ context.Context, setID string) (*ent.StudySession, error) {
	return f.activeSession(setID)
}
func (f *fakeBackend) ListSessions(_ context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	return f.listSessions(filters)
}
func (f *fakeBackend) StartSession(_ context.Context, req models.StartSessionRequest) (*ent.StudySession, error) {
	return f.startSession(req)
}
func (f *fakeBackend) ListMessages(_ context.Context, sessionID string, fromIndex int) ([]*ent.SessionMessage, error) {
	return f.listMessages(sessionID, fromIndex)
}
func (f *fakeBackend) ListOutcomes(_ context.Context, sessionID string) ([]*ent.RecallOutcome, error) {
	return f.listOutcomes(sessionID)
}
func (f *fakeBackend) ListRabbitholes(_ context.Context, sessionID string) ([]*ent.RabbitholeEvent, error) {
	return f.listTangents(sessionID)
}

func newTestRouter(backend *fakeBackend) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := NewServer(backend, backend, backend, backend, backend, backend, backend, nil, nil, nil)
	r := gin.New()
	server.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSet(t *testing.T) {
	backend := &fakeBackend{
		createSet: func(req models.CreateRecallSetRequest) (*ent.RecallSet, error) {
			return &ent.RecallSet{ID: "rs_1", Name: req.Name, CreatedAt: time.Now()}, nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodPost, "/api/v1/recall-sets",
		models.CreateRecallSetRequest{Name: "Cell Biology"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var got ent.RecallSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "rs_1", got.ID)
	assert.Equal(t, "Cell Biology", got.Name)
}

func TestCreateSetValidationError(t *testing.T) {
	backend := &fakeBackend{
		createSet: func(req models.CreateRecallSetRequest) (*ent.RecallSet, error) {
			return nil, services.NewValidationError("name", "required")
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodPost, "/api/v1/recall-sets", models.CreateRecallSetRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name")
}

func TestCreateSetDuplicateName(t *testing.T) {
	backend := &fakeBackend{
		createSet: func(req models.CreateRecallSetRequest) (*ent.RecallSet, error) {
			return nil, services.ErrAlreadyExists
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodPost, "/api/v1/recall-sets",
		models.CreateRecallSetRequest{Name: "Cell Biology"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetSetNotFound(t *testing.T) {
	backend := &fakeBackend{
		getSet: func(setID string) (*ent.RecallSet, error) {
			return nil, services.ErrNotFound
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodGet, "/api/v1/recall-sets/rs_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSet(t *testing.T) {
	var deleted string
	backend := &fakeBackend{
		deleteSet: func(setID string) error {
			deleted = setID
			return nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/recall-sets/rs_1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "rs_1", deleted)
}

func TestAddPoint(t *testing.T) {
	backend := &fakeBackend{
		addPoint: func(setID string, req models.CreateRecallPointRequest) (*ent.RecallPoint, error) {
			return &ent.RecallPoint{ID: "rp_1", RecallSetID: setID, Content: req.Content}, nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodPost, "/api/v1/recall-sets/rs_1/points",
		models.CreateRecallPointRequest{Content: "The mitochondrion synthesizes ATP"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "rp_1")
}

func TestListPointsPassesFilters(t *testing.T) {
	var gotFilters models.RecallPointFilters
	backend := &fakeBackend{
		listPoints: func(setID string, filters models.RecallPointFilters) ([]*ent.RecallPoint, error) {
			gotFilters = filters
			return nil, nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodGet, "/api/v1/recall-sets/rs_1/points?due_only=true&limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotFilters.DueOnly)
	assert.Equal(t, 5, gotFilters.Limit)
}

func TestStartSession(t *testing.T) {
	backend := &fakeBackend{
		startSession: func(req models.StartSessionRequest) (*ent.StudySession, error) {
			return &ent.StudySession{ID: "sess_1", RecallSetID: req.RecallSetID}, nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions",
		models.StartSessionRequest{RecallSetID: "rs_1"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "sess_1")
}

func TestStartSessionConflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"active session exists", services.ErrActiveSession, http.StatusConflict},
		{"no due points", services.ErrNoDuePoints, http.StatusUnprocessableEntity},
		{"set missing", services.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{
				startSession: func(req models.StartSessionRequest) (*ent.StudySession, error) {
					return nil, tt.err
				},
			}
			r := newTestRouter(backend)
			w := doJSON(t, r, http.MethodPost, "/api/v1/sessions",
				models.StartSessionRequest{RecallSetID: "rs_1"})
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestActiveSessionEmpty(t *testing.T) {
	backend := &fakeBackend{
		activeSession: func(setID string) (*ent.StudySession, error) {
			return nil, nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodGet, "/api/v1/recall-sets/rs_1/active-session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no active session")
}

func TestListSessionsPassesFilters(t *testing.T) {
	var gotFilters models.SessionFilters
	backend := &fakeBackend{
		listSessions: func(filters models.SessionFilters) (*models.SessionListResponse, error) {
			gotFilters = filters
			return &models.SessionListResponse{}, nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions?recall_set_id=rs_1&status=completed&limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rs_1", gotFilters.RecallSetID)
	assert.Equal(t, "completed", gotFilters.Status)
	assert.Equal(t, 10, gotFilters.Limit)
}

func TestListMessages(t *testing.T) {
	backend := &fakeBackend{
		listMessages: func(sessionID string, fromIndex int) ([]*ent.SessionMessage, error) {
			assert.Equal(t, 2, fromIndex)
			return []*ent.SessionMessage{{ID: "msg_1", SessionID: sessionID, MessageIndex: 2}}, nil
		},
	}
	r := newTestRouter(backend)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/sess_1/messages?from_index=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "msg_1")
}

func TestHealthWithoutDatabase(t *testing.T) {
	r := newTestRouter(&fakeBackend{})
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
