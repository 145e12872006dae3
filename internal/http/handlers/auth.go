package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/givehope/givehope/internal/domain"
	"github.com/givehope/givehope/internal/middleware"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type userDTO struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func userToDTO(u *domain.User) userDTO {
	return userDTO{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    string(u.Role),
		Avatar:  u.Avatar,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

// AuthSignup registers a new account and opens a session.
func (a *App) AuthSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	role := domain.UserRole(req.Role)
	if req.Role == "" {
		role = domain.UserRoleDonor
	}
	user, token, err := a.Sessions.Signup(r.Context(), req.Email, req.Password, req.Name, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			a.error(w, http.StatusConflict, "conflict", "email already registered")
		case errors.Is(err, domain.ErrInvalidCredentials):
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		default:
			a.Logger.Error().Err(err).Msg("signup failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to create account")
		}
		return
	}
	a.json(w, http.StatusCreated, authResponse{Token: token, User: userToDTO(user)})
}

// AuthLogin verifies credentials and opens a session.
func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	user, token, err := a.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
			return
		}
		a.Logger.Error().Err(err).Msg("login failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to log in")
		return
	}
	a.json(w, http.StatusOK, authResponse{Token: token, User: userToDTO(user)})
}

// AuthLogout revokes the current session token. The session is gone by the
// time the response is written.
func (a *App) AuthLogout(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	if token != "" {
		a.Sessions.Logout(token)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me serves the authenticated user's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := a.currentUser(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, userToDTO(user))
}

type profileUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Avatar  *string `json:"avatar"`
}

// MeUpdate applies a partial profile update; only supplied fields change.
func (a *App) MeUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := a.currentUser(w, r)
	if !ok {
		return
	}
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if user.Name == "" || user.Email == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name and email are required")
		return
	}
	if err := a.Users.Update(r.Context(), user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			a.error(w, http.StatusConflict, "conflict", "email already registered")
			return
		}
		a.Logger.Error().Err(err).Msg("profile update failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update profile")
		return
	}
	a.json(w, http.StatusOK, userToDTO(user))
}

// currentUser resolves the account behind the request, writing the error
// response itself when the session is missing or stale.
func (a *App) currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return nil, false
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "unknown user")
		return nil, false
	}
	return user, true
}
