package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

func TestRequireAuth_NoSession(t *testing.T) {
	app := fiber.New()

	sessionMiddleware, store := session.NewWithStore()
	app.Use(sessionMiddleware)

	auth := NewAuthMiddleware(store, nil)
	app.Get("/protected", auth.RequireAuth, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestOptionalAuth_NoSession(t *testing.T) {
	app := fiber.New()

	sessionMiddleware, store := session.NewWithStore()
	app.Use(sessionMiddleware)

	auth := NewAuthMiddleware(store, nil)
	app.Get("/", auth.OptionalAuth, func(c fiber.Ctx) error {
		if c.Locals("user") != nil {
			return c.SendString("authenticated")
		}
		return c.SendString("anonymous")
	})

	req, _ := http.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200 for anonymous request", resp.StatusCode)
	}
}
