package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/userdeck/internal/service"
	"github.com/aussiebroadwan/userdeck/pkg/httpx"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
)

// LoginRequest is the credential pair presented to /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the freshly issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type LoginHandler struct {
	Credentials *service.CredentialService
	Tokens      *service.TokenService
}

// ServeHTTP handles password login.
//
//	@Summary		Log in with username and password
//	@Description	Verifies the credentials and issues an HS256 bearer token valid for the configured lifetime (8 hours by default).
//	@Description	Unknown usernames and wrong passwords produce an identical 401 response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse	"Bearer token and its expiry"
//	@Failure		400		{object}	httpx.APIError	"Missing or blank username/password"
//	@Failure		401		{object}	httpx.APIError	"Invalid credentials"
//	@Failure		429		{object}	httpx.APIError	"Too many attempts"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	identity, err := h.Credentials.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	token, expiresAt, err := h.Tokens.Issue(identity)
	if err != nil {
		log.Error("token issuance failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	log.Info("login succeeded", "username", identity.Username)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
