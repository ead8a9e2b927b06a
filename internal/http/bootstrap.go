package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/userdeck/internal/service"
	"github.com/aussiebroadwan/userdeck/pkg/httpx"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
)

// BootstrapRequest seeds the first admin account.
type BootstrapRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BootstrapResponse reports the created admin.
type BootstrapResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type BootstrapHandler struct {
	Bootstrap *service.BootstrapService
}

// ServeHTTP handles first-run setup.
//
//	@Summary		Create the initial admin user
//	@Description	Seeds the first admin account into an empty database. Available only while no users exist; if a bootstrap token is configured it must be supplied in the X-Bootstrap-Token header.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string				false	"Bootstrap token, required when configured"
//	@Param			request				body		BootstrapRequest	true	"Admin credentials"
//	@Success		201					{object}	BootstrapResponse	"Created admin"
//	@Failure		400					{object}	httpx.APIError		"Missing or blank username/password"
//	@Failure		401					{object}	httpx.APIError		"Wrong bootstrap token"
//	@Failure		409					{object}	httpx.APIError		"Users already exist"
//	@Router			/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.Bootstrap.Bootstrap(ctx, r.Header.Get("X-Bootstrap-Token"), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrBootstrapToken):
			httpx.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrAlreadyBootstrapped):
			httpx.ErrConflict.WriteError(w)
		default:
			log.Error("bootstrap failed", "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, BootstrapResponse{ID: u.ID, Username: u.Username})
}
