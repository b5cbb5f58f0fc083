// Package testutils provides HTTP test suites for the webapi packages: one
// over the in-memory store and one over Postgres in a container.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/repository/memory"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestPassword is the password of every user created by CreateTestUser.
const TestPassword = "password123"

// TestConfig returns a config suitable for handler tests.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3333},
		Log:    &config.Log{Format: "text", Prefix: "[ledger]"},
		DB:     &config.DB{Driver: config.DriverMemory},
		Auth: &config.Auth{Jwt: &config.Jwt{
			Secret: "test-secret",
			Expiry: time.Hour,
		}},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// NewTestApp builds the full fiber app on top of uow.
func NewTestApp(uow repository.UnitOfWork, cfg *config.App) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(&app.Deps{Uow: uow, Logger: logger}, cfg)
	return webapi.SetupApp(a)
}

// APISuite holds the request helpers shared by the memory and Postgres suites.
type APISuite struct {
	suite.Suite
	app *fiber.App
	cfg *config.App
}

// App returns the fiber app under test.
func (s *APISuite) App() *fiber.App { return s.app }

// Config returns the config the app was built with.
func (s *APISuite) Config() *config.App { return s.cfg }

// MakeRequest is a helper for making HTTP requests in tests.
func (s *APISuite) MakeRequest(method, path, body, token string) *http.Response {
	return MakeRequestWithApp(s.T(), s.app, method, path, body, token)
}

// MakeRequestWithApp sends a request to app and fails the test on transport errors.
func MakeRequestWithApp(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	return resp
}

// DecodeResponse decodes a success envelope and closes the body.
func (s *APISuite) DecodeResponse(resp *http.Response, data any) common.Response {
	defer resp.Body.Close() //nolint:errcheck
	raw := struct {
		common.Response
		Data json.RawMessage `json:"data"`
	}{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&raw))
	if data != nil && len(raw.Data) > 0 {
		s.Require().NoError(json.Unmarshal(raw.Data, data))
	}
	return raw.Response
}

// DecodeProblem decodes a problem response and closes the body.
func (s *APISuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	defer resp.Body.Close() //nolint:errcheck
	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

// CreateTestUser registers a unique user through POST /api/v1/users.
func (s *APISuite) CreateTestUser() *user.User {
	randomID := uuid.NewString()[:8]
	body := fmt.Sprintf(
		`{"name":"testuser_%s","email":"test_%s@example.com","password":"%s"}`,
		randomID, randomID, TestPassword,
	)
	resp := s.MakeRequest(fiber.MethodPost, "/api/v1/users", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode, "user creation")

	var created user.User
	s.DecodeResponse(resp, &created)
	s.Require().NotEqual(uuid.Nil, created.ID)
	return &created
}

// LoginUser opens a session for u and returns the bearer token.
func (s *APISuite) LoginUser(u *user.User) string {
	body := fmt.Sprintf(`{"email":"%s","password":"%s"}`, u.Email, TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/api/v1/sessions", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode, "login")

	var session struct {
		Token string `json:"token"`
	}
	s.DecodeResponse(resp, &session)
	s.Require().NotEmpty(session.Token)
	return session.Token
}

// MemoryTestSuite runs the API on the in-memory store; a fresh store per test.
type MemoryTestSuite struct {
	APISuite
}

func (s *MemoryTestSuite) SetupTest() {
	s.cfg = TestConfig()
	s.app = NewTestApp(memory.NewUoW(memory.NewStore()), s.cfg)
}

// E2ETestSuite runs the API on Postgres started with Testcontainers.
type E2ETestSuite struct {
	APISuite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
}

// DB exposes the database for assertions on persisted rows.
func (s *E2ETestSuite) DB() *gorm.DB { return s.db }

func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping container-backed test in -short mode")
	}
	ctx := context.Background()

	var pg *tcpostgres.PostgresContainer
	err := func() (err error) {
		// testcontainers panics when no Docker provider can be found.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("docker unavailable: %v", r)
			}
		}()
		pg, err = tcpostgres.Run(
			ctx,
			"postgres:15-alpine",
			tcpostgres.WithDatabase("ledger"),
			tcpostgres.WithUsername("test"),
			tcpostgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).WithStartupTimeout(60*time.Second),
			),
		)
		return err
	}()
	if err != nil {
		s.T().Skipf("postgres container unavailable: %v", err)
	}
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.cfg = TestConfig()
	s.cfg.DB = &config.DB{Url: dsn, Driver: config.DriverPostgres}

	s.db, err = infra.NewDBConnection(s.cfg.DB, s.cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.RunMigrations(s.db))

	s.app = NewTestApp(infra.NewUoW(s.db), s.cfg)
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}
