package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Chit-ai/ChittaFlow/internal/domain"
)

// UserHandler exposes the unauthenticated user bootstrap endpoint.
// Created users are the principals that own agents and gate premium
// template access.
type UserHandler struct {
	store domain.UserStore
}

func NewUserHandler(store domain.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

type createUserRequest struct {
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	user := &domain.User{
		Name:      req.Name,
		IsPremium: req.IsPremium,
	}

	if err := h.store.Create(r.Context(), user); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
