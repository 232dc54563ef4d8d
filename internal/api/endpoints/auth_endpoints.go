package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"guest-portal-backend/internal/auth"
	"guest-portal-backend/internal/dto"
	"guest-portal-backend/internal/model"
)

type AuthEndpoints interface {
	Login(http.ResponseWriter, *http.Request) error
	Me(http.ResponseWriter, *http.Request) error
}

type authEndpoints struct {
	users *auth.Directory
}

func NewAuthEndpoints(users *auth.Directory) AuthEndpoints {
	return &authEndpoints{users: users}
}

func (h *authEndpoints) Login(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleLogin,
	})
}

func (h *authEndpoints) Me(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleMe,
	})
}

func (h *authEndpoints) handleLogin(w http.ResponseWriter, r *http.Request) error {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode login request: %w", err))
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return &HTTPError{
				StatusCode: http.StatusUnauthorized,
				Message:    "Invalid email or password",
				ErrorLog:   fmt.Errorf("login failed for %s", req.Email),
			}
		}
		return internalError(fmt.Errorf("authenticate: %w", err))
	}

	token, err := auth.CreateToken(user, 0)
	if err != nil {
		return internalError(fmt.Errorf("create token: %w", err))
	}

	return WriteJSON(w, http.StatusOK, dto.AuthResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	})
}

func (h *authEndpoints) handleMe(w http.ResponseWriter, r *http.Request) error {
	identity, err := auth.IdentityFromAuthorizationHeader(r.Header.Get("Authorization"))
	if err != nil {
		return &HTTPError{
			StatusCode: http.StatusUnauthorized,
			Message:    "Unauthorized",
			ErrorLog:   err,
		}
	}

	user, ok := h.users.Lookup(identity.Email)
	if !ok {
		return notFound("Account no longer exists", fmt.Errorf("me: unknown user %s", identity.Email))
	}

	return WriteJSON(w, http.StatusOK, dto.MeResponse{User: toUserResponse(user)})
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     string(user.Role),
		TenantID: user.TenantID,
	}
}
