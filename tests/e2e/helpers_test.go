//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres"
	commentrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/comment"
	idearepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/idea"
	projectrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/project"
	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/token"
	userrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/user"
	authpkg "github.com/buildhub-dev/buildhub-backend/internal/auth"
	"github.com/buildhub-dev/buildhub-backend/internal/config"
	authsvc "github.com/buildhub-dev/buildhub-backend/internal/service/auth"
	"github.com/buildhub-dev/buildhub-backend/internal/service/catalog"
	"github.com/buildhub-dev/buildhub-backend/internal/service/counter"
	"github.com/buildhub-dev/buildhub-backend/internal/service/discussion"
	"github.com/buildhub-dev/buildhub-backend/internal/service/project"
	"github.com/buildhub-dev/buildhub-backend/internal/transport/middleware"
	"github.com/buildhub-dev/buildhub-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	ideas := idearepo.New(pool)
	comments := commentrepo.New(pool)
	projects := projectrepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)

	maintainer := counter.NewMaintainer(logger, ideas)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	authService := authsvc.NewService(logger, users, tokens, jwtMgr, authsvc.BcryptHasher{},
		config.AuthConfig{
			JWTSecret:       jwtSecret,
			JWTIssuer:       "test-issuer",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
		},
	)
	catalogService := catalog.NewService(logger, ideas, maintainer)
	discussionService := discussion.NewService(logger, comments, ideas, users, maintainer, txm, 1000)
	projectService := project.NewService(logger, projects, ideas, maintainer, 200)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, "test-version"),
		Auth:     rest.NewAuthHandler(authService, logger),
		Ideas:    rest.NewIdeaHandler(catalogService, logger),
		Comments: rest.NewCommentHandler(discussionService, logger),
		Projects: rest.NewProjectHandler(projectService, logger),
	}, chain)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// restRequest sends a JSON request and returns the raw response.
// Pass token="" for guest requests and body=nil for bodyless requests.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

// decodeRaw decodes and closes a JSON response body without unwrapping.
// Health probes respond outside the API envelope.
func decodeRaw(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

// decodeBody decodes an API success envelope and returns its data payload.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	body := decodeRaw(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", body["data"])
	}
	return data
}

// decodeError decodes an API error envelope and returns its error object.
func decodeError(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	body := decodeRaw(t, resp)
	if body["success"] != false {
		t.Fatalf("expected error envelope, got %v", body)
	}
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %T", body["error"])
	}
	return errObj
}

// seedUserAndToken inserts a user directly into the DB and returns a valid
// access token for them alongside their id.
func seedUserAndToken(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool)

	tok, err := ts.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok, user.ID
}

// ideaIDs extracts the id of every idea in a list response.
func ideaIDs(t *testing.T, body map[string]any) map[string]bool {
	t.Helper()

	ideas, ok := body["ideas"].([]any)
	if !ok {
		t.Fatalf("expected ideas array, got %T", body["ideas"])
	}
	ids := make(map[string]bool, len(ideas))
	for _, raw := range ideas {
		idea, ok := raw.(map[string]any)
		if !ok {
			t.Fatalf("expected idea object, got %T", raw)
		}
		ids[idea["id"].(string)] = true
	}
	return ids
}
