package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	defs map[string]Definition
}

func newMemStore() *memStore {
	return &memStore{defs: make(map[string]Definition)}
}

func (s *memStore) CreateDefinition(_ context.Context, d *Definition) error {
	s.defs[d.ID] = *d
	return nil
}

func (s *memStore) GetDefinition(_ context.Context, id string) (Definition, error) {
	d, ok := s.defs[id]
	if !ok {
		return Definition{}, ErrNotFound
	}
	return d, nil
}

func (s *memStore) ListDefinitions(_ context.Context, category string, activeOnly bool) ([]Definition, error) {
	var out []Definition
	for _, d := range s.defs {
		if category != "" && d.Category != category {
			continue
		}
		if activeOnly && !d.IsActive {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *memStore) UpdateDefinition(_ context.Context, d *Definition) error {
	if _, ok := s.defs[d.ID]; !ok {
		return ErrNotFound
	}
	s.defs[d.ID] = *d
	return nil
}

func (s *memStore) DeleteDefinition(_ context.Context, id string) error {
	if _, ok := s.defs[id]; !ok {
		return ErrNotFound
	}
	delete(s.defs, id)
	return nil
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/calculators", h.List).Methods("GET")
	r.HandleFunc("/api/calculators/{id}/evaluate", h.Evaluate).Methods("POST")
	r.HandleFunc("/api/admin/calculators", h.Create).Methods("POST")
	r.HandleFunc("/api/admin/calculators/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/api/admin/calculators/{id}", h.Delete).Methods("DELETE")
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateListRoundTrip(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})

	def := validDefinition()
	w := doJSON(t, router, "POST", "/api/admin/calculators", def)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, def.Name, created.Name)
	assert.Equal(t, def.Formula, created.Formula)
	assert.Equal(t, def.Variables, created.Variables)

	w = doJSON(t, router, "GET", "/api/calculators?category=flagstone", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Other categories don't see it.
	w = doJSON(t, router, "GET", "/api/calculators?category=mulch", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestInactiveHiddenFromPublicList(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})

	def := validDefinition()
	def.IsActive = false
	w := doJSON(t, router, "POST", "/api/admin/calculators", def)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/calculators", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestCreateRejectsBadFormula(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})

	def := validDefinition()
	def.Formula = "length * widht" // undeclared variable: refused at save
	w := doJSON(t, router, "POST", "/api/admin/calculators", def)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "widht")
}

func TestUpdatePreservesProvenance(t *testing.T) {
	store := newMemStore()
	router := newRouter(&Handler{Store: store})

	w := doJSON(t, router, "POST", "/api/admin/calculators", validDefinition())
	require.Equal(t, http.StatusCreated, w.Code)
	var created Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	update := created
	update.Name = "Flagstone Coverage v2"
	update.CreatedBy = "intruder" // must be ignored
	w = doJSON(t, router, "PUT", "/api/admin/calculators/"+created.ID, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Flagstone Coverage v2", updated.Name)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "CreatedAt must survive updates")
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestDeleteMissing(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})
	w := doJSON(t, router, "DELETE", "/api/admin/calculators/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteThenGone(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})

	w := doJSON(t, router, "POST", "/api/admin/calculators", validDefinition())
	require.Equal(t, http.StatusCreated, w.Code)
	var created Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "DELETE", "/api/admin/calculators/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())

	w = doJSON(t, router, "GET", "/api/calculators", nil)
	var listed []Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestEvaluateEndpoint(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})

	w := doJSON(t, router, "POST", "/api/admin/calculators", validDefinition())
	require.Equal(t, http.StatusCreated, w.Code)
	var created Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "POST", "/api/calculators/"+created.ID+"/evaluate",
		evaluateRequest{Inputs: map[string]float64{"length": 10, "width": 5, "depth": 0.5}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp evaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 25.0/27.0, resp.Result, 1e-9)
}

func TestEvaluateInactiveIsHidden(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})

	def := validDefinition()
	def.IsActive = false
	w := doJSON(t, router, "POST", "/api/admin/calculators", def)
	require.Equal(t, http.StatusCreated, w.Code)
	var created Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "POST", "/api/calculators/"+created.ID+"/evaluate",
		evaluateRequest{Inputs: map[string]float64{"length": 1, "width": 1, "depth": 1}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	router := newRouter(&Handler{Store: newMemStore()})

	def := validDefinition()
	def.Formula = "length / depth"
	def.Variables[2].DefaultValue = 0
	w := doJSON(t, router, "POST", "/api/admin/calculators", def)
	require.Equal(t, http.StatusCreated, w.Code)
	var created Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "POST", "/api/calculators/"+created.ID+"/evaluate",
		evaluateRequest{Inputs: map[string]float64{"length": 10, "width": 1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "division by zero")
}
