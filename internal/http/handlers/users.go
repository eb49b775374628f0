package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"visionassist/internal/auth"
	"visionassist/internal/middleware"
)

// Me returns the calling user's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	user, err := a.Users.GetByID(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, toUserResponse(user))
}

type updateMeRequest struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
}

// UpdateMe changes the caller's profile fields. Only provided fields change.
func (a *App) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	user, err := a.Users.GetByID(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		a.fail(w, err)
		return
	}
	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			a.fail(w, err)
			return
		}
		user.PasswordHash = hash
	}
	if err := a.Users.Update(r.Context(), user); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, toUserResponse(user))
}

// DeleteMe removes the caller's account.
func (a *App) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := a.Users.Delete(r.Context(), middleware.UserIDFromContext(r.Context())); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers is admin-only; pagination via limit/offset query parameters.
func (a *App) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(r, "offset", 0)
	users, err := a.Users.List(r.Context(), limit, offset)
	if err != nil {
		a.fail(w, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"users": out})
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
