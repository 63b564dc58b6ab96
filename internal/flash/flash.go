package flash

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "emp_flash"

// Message is a one-shot notice shown on the next rendered page.
type Message struct {
	Text     string `json:"text"`
	Category string `json:"category"` // "success" or "danger"
}

// Set stores a flash message in a short-lived cookie. The value is
// base64-encoded JSON so it survives cookie value restrictions.
func Set(c *fiber.Ctx, text, category string) {
	payload, err := json.Marshal(Message{Text: text, Category: category})
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

// Take reads and clears the pending flash message, if any.
func Take(c *fiber.Ctx) (Message, bool) {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return Message{}, false
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Message{}, false
	}
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, false
	}
	return msg, true
}
