package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("request_id").(string))
	})
	return app
}

func TestRequestLoggerGeneratesID(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	id := resp.Header.Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("X-Request-ID = %q is not a uuid", id)
	}
}

func TestRequestLoggerKeepsClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := newApp().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q", got)
	}
}

func TestRequestLoggerPassesErrors(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestRequestLoggerCoversPanics(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	app := fiber.New()
	app.Use(RequestLogger())
	app.Use(recover.New())
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(buf.String(), "[HTTP] GET /boom -> 500") {
		t.Fatalf("access log = %q", buf.String())
	}
}
