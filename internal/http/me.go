package http

import (
	"net/http"

	"github.com/aussiebroadwan/userdeck/pkg/httpx"
)

// MeResponse echoes back the identity embedded in the presented token.
type MeResponse struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

type MeHandler struct{}

// ServeHTTP returns the identity carried by the bearer token. The response is
// built entirely from the token claims; it reflects the user as they were at
// issuance time, not the current database state.
//
//	@Summary		Who am I
//	@Description	Returns the identity embedded in the presented bearer token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	MeResponse		"Token identity"
//	@Failure		401	{object}	httpx.APIError	"Missing or invalid token"
//	@Router			/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeBearerError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, MeResponse{
		Sub:     identity.Username,
		Name:    identity.Username,
		IsAdmin: identity.IsAdmin,
	})
}
