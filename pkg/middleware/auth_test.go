package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harold2001/financer-manager-app/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp(jwtManager *auth.JWTManager) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(jwtManager, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userID"),
			"email":   c.Locals("email"),
		})
	})
	return app
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := newTestApp(auth.NewJWTManager("secret", time.Hour, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newTestApp(auth.NewJWTManager("secret", time.Hour, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour, time.Hour)
	app := newTestApp(jwtManager)

	token, err := jwtManager.GenerateToken("user-1", "Jane Doe", "jane@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var body struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.UserID != "user-1" {
		t.Errorf("user_id local: got %q, want %q", body.UserID, "user-1")
	}
	if body.Email != "jane@example.com" {
		t.Errorf("email local: got %q, want %q", body.Email, "jane@example.com")
	}
}
