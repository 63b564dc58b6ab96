package flash

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSetAndTake(t *testing.T) {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		Set(c, "Employee added successfully.", "success")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/take", func(c *fiber.Ctx) error {
		msg, ok := Take(c)
		if !ok {
			return c.SendString("none")
		}
		return c.SendString(msg.Category + ":" + msg.Text)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil), -1)
	if err != nil {
		t.Fatalf("set request: %v", err)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a flash cookie to be set")
	}

	req := httptest.NewRequest(http.MethodGet, "/take", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("take request: %v", err)
	}
	payload, _ := io.ReadAll(resp.Body)
	if string(payload) != "success:Employee added successfully." {
		t.Fatalf("unexpected flash payload: %q", payload)
	}
}

func TestTakeWithoutFlash(t *testing.T) {
	app := fiber.New()
	app.Get("/take", func(c *fiber.Ctx) error {
		if _, ok := Take(c); ok {
			return c.SendString("unexpected")
		}
		return c.SendString("none")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/take", nil), -1)
	if err != nil {
		t.Fatalf("take request: %v", err)
	}
	payload, _ := io.ReadAll(resp.Body)
	if string(payload) != "none" {
		t.Fatalf("expected no flash, got %q", payload)
	}
}
