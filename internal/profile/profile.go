package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"Quarry/internal/auth"
	"Quarry/internal/repo"
)

type ProfileHandler struct {
	Repo repo.Repository
}

type updateRequest struct {
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
}

// GetProfile returns the authenticated caller's account record, including
// the account type the contractor tools gate on.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	prof, err := h.Repo.GetProfileByID(r.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prof)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.Repo.UpdateProfile(r.Context(), ident.UserID, req.CompanyName, req.Description); err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
