package estimate

import (
	"encoding/json"
	"errors"
	"net/http"

	"Quarry/internal/auth"
)

type Handler struct {
	Config Config
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(ident.AccountType, input, h.Config)
	if err != nil {
		if errors.Is(err, ErrContractorOnly) {
			http.Error(w, "Contractor account required", http.StatusForbidden)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
