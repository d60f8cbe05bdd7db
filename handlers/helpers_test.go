package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wallasazevedo60-ux/canta-liga/database"
	"github.com/wallasazevedo60-ux/canta-liga/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

const testCookie = "canta_liga_session"

// newTestApp builds the full route table over a fresh in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        ":memory:",
		DriverName: "sqlite",
	}), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db))

	authService := services.NewAuthService(db)
	sessionService := services.NewSessionService(db, time.Hour)
	birdService := services.NewBirdService(db)
	tournamentService := services.NewTournamentService(db)
	t.Cleanup(sessionService.Stop)

	api := &API{
		Auth:        NewAuthHandler(authService, sessionService, testCookie, false, time.Hour),
		Birds:       NewBirdHandler(birdService),
		Tournaments: NewTournamentHandler(tournamentService, birdService),
		Sessions:    sessionService,
		CookieName:  testCookie,
	}

	app := fiber.New()
	api.Register(app)
	return app, db
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, session string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: session})
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == testCookie && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

// registerUser registers an account through the API and returns its session.
func registerUser(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/register", fiber.Map{
		"username": username,
		"password": "segredo123",
		"name":     "Usuário " + username,
		"role":     role,
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return sessionCookie(t, resp)
}

// createBird creates a bird for the session's user and returns its id.
func createBird(t *testing.T, app *fiber.App, session, name string) uint {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/birds", fiber.Map{
		"name":    name,
		"species": "Coleiro",
	}, session)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var bird struct {
		ID uint `json:"id"`
	}
	decode(t, resp, &bird)
	return bird.ID
}

// createTournament creates a tournament for the session's organizer.
func createTournament(t *testing.T, app *fiber.App, session, name string) uint {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/tournaments", fiber.Map{
		"name":      name,
		"location":  "Fortaleza",
		"date":      time.Now().AddDate(0, 0, 7).UTC().Format(time.RFC3339),
		"entry_fee": 5000,
	}, session)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var tournament struct {
		ID uint `json:"id"`
	}
	decode(t, resp, &tournament)
	return tournament.ID
}

func message(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	return body.Message
}
