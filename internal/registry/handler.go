package registry

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"Quarry/internal/auth"
	"Quarry/internal/formula"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Store Store
}

// List serves active definitions for the public widget, optionally
// filtered by product category.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	defs, err := h.Store.ListDefinitions(r.Context(), r.URL.Query().Get("category"), true)
	if err != nil {
		log.Printf("ListDefinitions error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	if defs == nil {
		defs = []Definition{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(defs)
}

// ListAll serves every definition, active or not, for the admin manager.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	defs, err := h.Store.ListDefinitions(r.Context(), r.URL.Query().Get("category"), false)
	if err != nil {
		log.Printf("ListDefinitions error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	if defs == nil {
		defs = []Definition{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(defs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var def Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := def.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	def.ID = uuid.NewString()
	def.CreatedAt = now
	def.UpdatedAt = now
	if ident, ok := auth.FromContext(r.Context()); ok {
		def.CreatedBy = ident.Login
	}

	if err := h.Store.CreateDefinition(r.Context(), &def); err != nil {
		log.Printf("CreateDefinition error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(def)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	existing, err := h.Store.GetDefinition(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Calculator not found", http.StatusNotFound)
			return
		}
		log.Printf("GetDefinition error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	var def Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	def.ID = existing.ID
	def.CreatedBy = existing.CreatedBy
	def.CreatedAt = existing.CreatedAt
	def.UpdatedAt = time.Now().UTC()
	if err := def.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateDefinition(r.Context(), &def); err != nil {
		log.Printf("UpdateDefinition error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(def)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Calculator id required", http.StatusBadRequest)
		return
	}
	if err := h.Store.DeleteDefinition(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Calculator not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteDefinition error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte("{}"))
}

type evaluateRequest struct {
	Inputs map[string]float64 `json:"inputs"`
}

type evaluateResponse struct {
	Result float64 `json:"result"`
}

// Evaluate runs an active definition against caller inputs. This is the
// public endpoint behind the generic product calculator widget.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	def, err := h.Store.GetDefinition(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Calculator not found", http.StatusNotFound)
			return
		}
		log.Printf("GetDefinition error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	if !def.IsActive {
		http.Error(w, "Calculator not found", http.StatusNotFound)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := def.Evaluate(req.Inputs)
	if err != nil {
		var ferr *formula.Error
		if errors.As(err, &ferr) {
			http.Error(w, ferr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(evaluateResponse{Result: result})
}
