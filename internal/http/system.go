package http

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/userdeck/internal/store"
	"github.com/aussiebroadwan/userdeck/pkg/httpx"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
)

// HealthResponse is the payload for the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// PingHandler godoc
//
//	@Summary	Ping
//	@Tags		Diagnostics
//	@Produce	json
//	@Success	200	{object}	map[string]string	"message: pong"
//	@Router		/ping [get].
func PingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "pong"})
	}
}

// TimeHandler godoc
//
//	@Summary	Current server time
//	@Tags		Diagnostics
//	@Produce	json
//	@Success	200	{object}	map[string]string	"utc: RFC3339 timestamp"
//	@Router		/time [get].
func TimeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"utc": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// GreetHandler godoc
//
//	@Summary	Greeting
//	@Tags		Diagnostics
//	@Produce	json
//	@Param		name	query		string				false	"Name to greet, defaults to world"
//	@Success	200		{object}	map[string]string	"message: Hello, name!"
//	@Router		/greet [get].
func GreetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			name = "world"
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Hello, " + name + "!",
		})
	}
}

// EchoHandler godoc
//
//	@Summary	Echo the request body
//	@Tags		Diagnostics
//	@Accept		plain
//	@Produce	json
//	@Success	200	{object}	map[string]string	"echo: the raw body"
//	@Router		/echo [post].
func EchoHandler() http.HandlerFunc {
	const maxEchoBytes = 1 << 20

	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxEchoBytes))
		if err != nil {
			httpx.ErrInvalidRequest.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"echo": string(body)})
	}
}

// SecureHandler godoc
//
//	@Summary		Token-gated diagnostic
//	@Description	Returns a fixed payload; only reachable with a valid bearer token.
//	@Tags			Diagnostics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	map[string]string	"secret: 42"
//	@Failure		401	{object}	httpx.APIError		"Missing or invalid token"
//	@Router			/secure [get].
func SecureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"secret": "42"})
	}
}

// DBPingHandler godoc
//
//	@Summary	Database connectivity check
//	@Tags		Diagnostics
//	@Produce	json
//	@Success	200	{object}	map[string]bool	"ok: true"
//	@Failure	500	{object}	httpx.APIError	"Database unreachable"
//	@Router		/db/ping [get].
func DBPingHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("db ping failed", "err", err)
			httpx.ErrServerError.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// LivezHandler godoc
//
//	@Summary	Liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	HealthResponse	"status, uptime, version"
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database connection in addition to basic liveness.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
