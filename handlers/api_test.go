// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"greetme-server/accounts"
	"greetme-server/crypto"
	"greetme-server/db"
	"greetme-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	tokens map[string]string // email -> last verification token
}

func (n *recordingNotifier) SendVerification(email, token string) {
	n.tokens[email] = token
}

func (n *recordingNotifier) SendWelcome(email, name string) {}

func newTestServer(t *testing.T) (*echo.Echo, *recordingNotifier) {
	t.Helper()
	t.Setenv("BCRYPT_COST", "4")

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := conn.AutoMigrate(models.AllModels...); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	notifier := &recordingNotifier{tokens: map[string]string{}}
	api := NewAPI(accounts.NewService(db.NewAccountStore(conn), crypto.NewCrypto(), notifier))

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.GET("/health", api.HealthHandler)
	group := e.Group("/api")
	group.POST("/register", api.RegisterHandler)
	group.GET("/verify", api.VerifyHandler)
	group.POST("/login", api.LoginHandler)
	group.GET("/profile/:id", api.ProfileHandler)
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error":  "Route not found",
			"path":   c.Request().URL.Path,
			"method": c.Request().Method,
		})
	})

	return e, notifier
}

func perform(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

const registerBody = `{"name":"A","telephone":"1234567890","email":"a@x.com","nickname":"a","password":"secret1"}`

func TestRegistrationScenario(t *testing.T) {
	e, notifier := newTestServer(t)

	// Register.
	rec := perform(e, http.MethodPost, "/api/register", registerBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode(t, rec)
	if created["userId"] == nil {
		t.Fatal("Register response should carry a userId")
	}
	token, ok := notifier.tokens["a@x.com"]
	if !ok || token == "" {
		t.Fatal("A verification notice should have been dispatched")
	}

	// Verify with a wrong token.
	rec = perform(e, http.MethodGet, "/api/verify?email=a@x.com&token=wrong", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for wrong token, got %d", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "Invalid verification token or email, or account already verified." {
		t.Errorf("Unexpected error message: %v", msg)
	}

	// Verify with the issued token.
	rec = perform(e, http.MethodGet, "/api/verify?email=a@x.com&token="+token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	verified := decode(t, rec)
	if verified["message"] != "Thank you for confirming your registration" {
		t.Errorf("Unexpected message: %v", verified["message"])
	}
	user, _ := verified["user"].(map[string]any)
	if user == nil || user["email"] != "a@x.com" {
		t.Errorf("Unexpected user payload: %v", verified["user"])
	}

	// Re-verification with the same pair fails.
	rec = perform(e, http.MethodGet, "/api/verify?email=a@x.com&token="+token, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for repeat verification, got %d", rec.Code)
	}

	// Login.
	rec = perform(e, http.MethodPost, "/api/login", `{"email":"a@x.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	login := decode(t, rec)
	if login["message"] != "Login successful" {
		t.Errorf("Unexpected message: %v", login["message"])
	}
	user, _ = login["user"].(map[string]any)
	if user == nil || user["nickname"] != "a" {
		t.Errorf("Login response should carry the nickname: %v", login["user"])
	}
}

func TestRegisterValidationResponses(t *testing.T) {
	e, _ := newTestServer(t)

	rec := perform(e, http.MethodPost, "/api/register", `{"name":"A"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "All fields are required." {
		t.Errorf("Unexpected error message: %v", msg)
	}

	rec = perform(e, http.MethodPost, "/api/register",
		`{"name":"A","telephone":"1234567890","email":"bad","nickname":"a","password":"secret1"}`)
	if msg := decode(t, rec)["error"]; msg != "Invalid email format." {
		t.Errorf("Unexpected error message: %v", msg)
	}
}

func TestRegisterConflictResponses(t *testing.T) {
	e, _ := newTestServer(t)

	if rec := perform(e, http.MethodPost, "/api/register", registerBody); rec.Code != http.StatusCreated {
		t.Fatalf("First register failed with %d", rec.Code)
	}

	// Same email, different telephone.
	rec := perform(e, http.MethodPost, "/api/register",
		`{"name":"B","telephone":"0987654321","email":"a@x.com","nickname":"b","password":"secret1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "Email already exists." {
		t.Errorf("Unexpected error message: %v", msg)
	}

	// Same telephone, different email.
	rec = perform(e, http.MethodPost, "/api/register",
		`{"name":"B","telephone":"1234567890","email":"b@x.com","nickname":"b","password":"secret1"}`)
	if msg := decode(t, rec)["error"]; msg != "Telephone number already exists." {
		t.Errorf("Unexpected error message: %v", msg)
	}
}

func TestLoginResponses(t *testing.T) {
	e, notifier := newTestServer(t)

	if rec := perform(e, http.MethodPost, "/api/register", registerBody); rec.Code != http.StatusCreated {
		t.Fatalf("Register failed with %d", rec.Code)
	}

	// Unverified login, correct password.
	rec := perform(e, http.MethodPost, "/api/login", `{"email":"a@x.com","password":"secret1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 for unverified account, got %d", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "Please verify your email address before logging in." {
		t.Errorf("Unexpected error message: %v", msg)
	}

	if rec := perform(e, http.MethodGet, "/api/verify?email=a@x.com&token="+notifier.tokens["a@x.com"], ""); rec.Code != http.StatusOK {
		t.Fatalf("Verify failed with %d", rec.Code)
	}

	// Wrong password and unknown email must be indistinguishable.
	wrongPassword := perform(e, http.MethodPost, "/api/login", `{"email":"a@x.com","password":"nope"}`)
	unknownEmail := perform(e, http.MethodPost, "/api/login", `{"email":"b@x.com","password":"secret1"}`)
	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401/401, got %d/%d", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Error("Bad-password and unknown-email responses must match")
	}

	// Missing fields.
	rec = perform(e, http.MethodPost, "/api/login", `{"email":"a@x.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for missing password, got %d", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "Email and password are required." {
		t.Errorf("Unexpected error message: %v", msg)
	}
}

func TestVerifyMissingParams(t *testing.T) {
	e, _ := newTestServer(t)

	rec := perform(e, http.MethodGet, "/api/verify", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "Missing verification token or email." {
		t.Errorf("Unexpected error message: %v", msg)
	}
}

func TestProfileResponses(t *testing.T) {
	e, notifier := newTestServer(t)

	rec := perform(e, http.MethodPost, "/api/register", registerBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Register failed with %d", rec.Code)
	}
	userID := decode(t, rec)["userId"].(float64)

	// Unverified accounts are invisible.
	rec = perform(e, http.MethodGet, "/api/profile/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unverified profile, got %d", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "User not found." {
		t.Errorf("Unexpected error message: %v", msg)
	}

	if rec := perform(e, http.MethodGet, "/api/verify?email=a@x.com&token="+notifier.tokens["a@x.com"], ""); rec.Code != http.StatusOK {
		t.Fatalf("Verify failed with %d", rec.Code)
	}

	rec = perform(e, http.MethodGet, "/api/profile/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user, _ := decode(t, rec)["user"].(map[string]any)
	if user == nil {
		t.Fatal("Profile response should carry a user object")
	}
	if user["id"].(float64) != userID {
		t.Errorf("Expected id %v, got %v", userID, user["id"])
	}
	if user["nickname"] != "a" || user["created_at"] == nil {
		t.Errorf("Unexpected profile payload: %v", user)
	}

	// Non-numeric and absent ids both read as not found.
	if rec := perform(e, http.MethodGet, "/api/profile/abc", ""); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for non-numeric id, got %d", rec.Code)
	}
	if rec := perform(e, http.MethodGet, "/api/profile/999", ""); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for absent id, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := perform(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "OK" {
		t.Errorf("Unexpected status: %v", body["status"])
	}
	if body["message"] != "GreetMe API is running" {
		t.Errorf("Unexpected message: %v", body["message"])
	}
	if body["timestamp"] == nil {
		t.Error("Health response should carry a timestamp")
	}
}

func TestRouteNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	rec := perform(e, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "Route not found" {
		t.Errorf("Unexpected error message: %v", body["error"])
	}
	if body["path"] != "/nope" || body["method"] != http.MethodGet {
		t.Errorf("Unexpected body: %v", body)
	}
}
