// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"skillforge/internal/cache"
	"skillforge/internal/database"
	"skillforge/internal/mail"
	"skillforge/internal/middleware"
	"skillforge/internal/models"
	"skillforge/internal/store"
	"skillforge/internal/token"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "skillforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "skillforge")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() {
		db.Exec("DELETE FROM leads")
		db.Exec("DELETE FROM users")
		db.Exec("DELETE FROM site_config")
		db.Close()
	})
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"site:*", "draft:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB         *sql.DB
	Valkey     *redis.Client
	Users      *store.UserStore
	Leads      *store.LeadStore
	States     *store.SiteStateStore
	StateCache *cache.StateCache
	Drafts     *cache.DraftStore
	Signer     *token.Signer
	Sender     *recordingSender
	Public     *Public
	Auth       *Auth
	Admin      *Admin
}

// recordingSender captures outbound mail instead of delivering it.
// Sends may come from background goroutines, so access is locked.
type recordingSender struct {
	mu   sync.Mutex
	sent []mail.SendRequest
	err  error
}

func (s *recordingSender) Send(_ context.Context, req mail.SendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, req)
	return nil
}

func (s *recordingSender) sentMail() []mail.SendRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mail.SendRequest(nil), s.sent...)
}

func (s *recordingSender) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// newTestEnv creates a complete test environment with all handler
// dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	users := store.NewUserStore(db)
	leads := store.NewLeadStore(db)
	states := store.NewSiteStateStore(store.NewSiteConfigStore(db))
	stateCache := cache.NewStateCache(vk, time.Minute)
	drafts := cache.NewDraftStore(vk, time.Minute)
	signer := token.NewSigner("handler-test-secret")
	sender := &recordingSender{}
	notifier := mail.NewNotifier(sender, states)

	return &testEnv{
		DB:         db,
		Valkey:     vk,
		Users:      users,
		Leads:      leads,
		States:     states,
		StateCache: stateCache,
		Drafts:     drafts,
		Signer:     signer,
		Sender:     sender,
		Public:     NewPublic(states, stateCache, leads, notifier),
		Auth:       NewAuth(users, signer, sender, "https://skillforge.test"),
		Admin:      NewAdmin(drafts, states, stateCache, leads, users, nil),
	}
}

// createUser inserts a user and returns it with a valid access token.
func (env *testEnv) createUser(t *testing.T, role models.Role) (*models.User, string) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	user, err := env.Users.Create(suffix+"@example.com", "user-"+suffix, "password123", "Test User", role)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	raw, err := env.Signer.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return user, raw
}

// serveAuthed runs a request through the real auth middleware before the
// handler, the same chain the router builds.
func (env *testEnv) serveAuthed(handler http.HandlerFunc, req *http.Request, accessToken string) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rr := httptest.NewRecorder()
	middleware.RequireAuth(env.Signer)(handler).ServeHTTP(rr, req)
	return rr
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeEnvelope unmarshals a response body into the envelope shape.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (bool, string, json.RawMessage) {
	t.Helper()

	var env struct {
		Success   bool            `json:"success"`
		Message   string          `json:"message"`
		Data      json.RawMessage `json:"data"`
		Timestamp string          `json:"timestamp"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, rr.Body.String())
	}
	if env.Timestamp == "" {
		t.Error("envelope missing timestamp")
	}
	return env.Success, env.Message, env.Data
}
