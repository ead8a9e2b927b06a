package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	api "github.com/aussiebroadwan/userdeck/internal/http"
	"github.com/aussiebroadwan/userdeck/internal/service"
	"github.com/aussiebroadwan/userdeck/internal/store"
	"github.com/aussiebroadwan/userdeck/internal/store/drivers/sqlite"
	"github.com/aussiebroadwan/userdeck/pkg/cryptox"
	"github.com/aussiebroadwan/userdeck/pkg/httpx"
	"github.com/aussiebroadwan/userdeck/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "router-test-secret"
	testIssuer = "userdeck"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "userdeck-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Most tests fire many requests from the same fake IP; keep the shared
	// profiles out of the way. The rate limit test builds its own router.
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.ModerateLimit = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.LenientLimit = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.PublicLimit = httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testEnv struct {
	router *api.Router
	store  store.Store
	tokens *service.TokenService
	users  *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := service.NewTokenService([]byte(testSecret), testIssuer, 8*time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := api.NewRouter("test", nil, st, logger)
	router.CredentialService = &service.CredentialService{Store: st}
	router.TokenService = tokens
	router.UserService = &service.UserService{Store: st}
	router.BootstrapService = &service.BootstrapService{Store: st}
	router.ApplyRoutes()

	return &testEnv{
		router: router,
		store:  st,
		tokens: tokens,
		users:  &service.UserService{Store: st},
	}
}

// do runs a request through the full middleware chain and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seed(t *testing.T, username, password string, isAdmin bool) string {
	t.Helper()

	u, err := e.users.Create(t.Context(), username, password, isAdmin)
	require.NoError(t, err)
	return u.ID
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestDiagnostics(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/ping", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/time", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tr struct {
		UTC string `json:"utc"`
	}
	decodeJSON(t, rec, &tr)
	parsed, err := time.Parse(time.RFC3339, tr.UTC)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)

	rec = env.do(t, http.MethodGet, "/greet?name=deck", "", "")
	require.JSONEq(t, `{"message":"Hello, deck!"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/greet", "", "")
	require.JSONEq(t, `{"message":"Hello, world!"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/echo", "hello there", "")
	require.JSONEq(t, `{"echo":"hello there"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/db/ping", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestHealthProbes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/livez", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/readyz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var hr struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
		} `json:"checks"`
	}
	decodeJSON(t, rec, &hr)
	require.Equal(t, "ok", hr.Status)
	require.Equal(t, "ok", hr.Checks.Database)
}

func TestStaticFrontend(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "UserDeck")

	rec = env.do(t, http.MethodGet, "/login.html", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Login")
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "alice", "hunter2", true)

	token := env.login(t, "alice", "hunter2")
	require.NotEmpty(t, token)
}

func TestLogin_BlankCredentials(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", `{"username":"","password":"x"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", `not json`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_FailuresIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "bob", "hunter2", false)

	wrongPass := env.do(t, http.MethodPost, "/auth/login", `{"username":"bob","password":"nope"}`, "")
	unknownUser := env.do(t, http.MethodPost, "/auth/login", `{"username":"nobody","password":"nope"}`, "")

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "alice", "hunter2", true)
	token := env.login(t, "alice", "hunter2")

	rec := env.do(t, http.MethodGet, "/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"sub":"alice","name":"alice","isAdmin":true}`, rec.Body.String())
}

func TestMe_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	// No token at all.
	rec := env.do(t, http.MethodGet, "/auth/me", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

	// Garbage token.
	rec = env.do(t, http.MethodGet, "/auth/me", "", "not.a.token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Well-formed but expired beyond the leeway.
	signer, err := jwtx.NewSigner([]byte(testSecret))
	require.NoError(t, err)
	expired, err := signer.Sign(jwtx.NewClaims("alice", "user", testIssuer, time.Hour, time.Now().Add(-10*time.Hour)))
	require.NoError(t, err)
	rec = env.do(t, http.MethodGet, "/auth/me", "", expired)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// All failures share the one collapsed body.
	noToken := env.do(t, http.MethodGet, "/auth/me", "", "")
	require.Equal(t, noToken.Body.String(), rec.Body.String())
}

func TestMe_FrozenSnapshot(t *testing.T) {
	env := newTestEnv(t)
	id := env.seed(t, "carol", "hunter2", true)
	token := env.login(t, "carol", "hunter2")

	// Demote carol after the token was issued.
	demoted := false
	require.NoError(t, env.users.Update(t.Context(), id, service.UserUpdate{IsAdmin: &demoted}))

	// The token still reflects the identity at issuance time.
	rec := env.do(t, http.MethodGet, "/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"sub":"carol","name":"carol","isAdmin":true}`, rec.Body.String())
}

func TestSecure(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "dave", "hunter2", false)
	token := env.login(t, "dave", "hunter2")

	rec := env.do(t, http.MethodGet, "/secure", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/secure", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"secret":"42"}`, rec.Body.String())
}

func TestUsers_ListAndGet(t *testing.T) {
	env := newTestEnv(t)
	id := env.seed(t, "erin", "hunter2", false)

	rec := env.do(t, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	decodeJSON(t, rec, &list)
	require.Len(t, list, 1)
	require.Equal(t, "erin", list[0]["username"])
	require.NotContains(t, rec.Body.String(), "password")

	rec = env.do(t, http.MethodGet, "/users/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/users/01MISSINGMISSINGMISSINGMISS", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers_CreateRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "admin", "hunter2", true)
	env.seed(t, "pleb", "hunter2", false)

	body := `{"username":"new","password":"pw","isAdmin":false}`

	// No token.
	rec := env.do(t, http.MethodPost, "/users", body, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not admin.
	plebToken := env.login(t, "pleb", "hunter2")
	rec = env.do(t, http.MethodPost, "/users", body, plebToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Admin.
	adminToken := env.login(t, "admin", "hunter2")
	rec = env.do(t, http.MethodPost, "/users", body, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/users/"))

	var created map[string]any
	decodeJSON(t, rec, &created)
	require.Equal(t, "new", created["username"])
	require.NotContains(t, rec.Body.String(), "password")
}

func TestUsers_CreateConflictAndValidation(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "admin", "hunter2", true)
	token := env.login(t, "admin", "hunter2")

	rec := env.do(t, http.MethodPost, "/users", `{"username":"dup","password":"pw"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/users", `{"username":"dup","password":"pw"}`, token)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/users", `{"username":"","password":"pw"}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsers_Update(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "admin", "hunter2", true)
	id := env.seed(t, "frank", "hunter2", false)
	token := env.login(t, "admin", "hunter2")

	rec := env.do(t, http.MethodPut, "/users/"+id, `{"username":"francis"}`, token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/users/"+id, "", "")
	var got map[string]any
	decodeJSON(t, rec, &got)
	require.Equal(t, "francis", got["username"])

	// Empty patch.
	rec = env.do(t, http.MethodPut, "/users/"+id, `{}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing user.
	rec = env.do(t, http.MethodPut, "/users/01MISSINGMISSINGMISSINGMISS", `{"username":"x"}`, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers_Delete(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "admin", "hunter2", true)
	id := env.seed(t, "gone", "hunter2", false)
	token := env.login(t, "admin", "hunter2")

	rec := env.do(t, http.MethodDelete, "/users/"+id, "", token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/users/"+id, "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBootstrap(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/bootstrap", `{"username":"root","password":"toor"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeJSON(t, rec, &created)
	require.Equal(t, "root", created["username"])

	// Bootstrap disables itself once a user exists.
	rec = env.do(t, http.MethodPost, "/bootstrap", `{"username":"root2","password":"toor"}`, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	// And the seeded admin can actually log in with full rights.
	token := env.login(t, "root", "toor")
	rec = env.do(t, http.MethodPost, "/users", `{"username":"worker","password":"pw"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	// Tight limit just for this router instance.
	old := httpx.StrictLimit
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	t.Cleanup(func() { httpx.StrictLimit = old })

	limited := newTestEnv(t)
	limited.seed(t, "bob", "hunter2", false)

	body := `{"username":"bob","password":"wrong"}`
	for range 2 {
		rec := limited.do(t, http.MethodPost, "/auth/login", body, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := limited.do(t, http.MethodPost, "/auth/login", body, "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}
