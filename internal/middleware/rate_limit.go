package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit creates a rate limiter middleware instance keyed by the
// authenticated subject, or by client IP on routes with no authenticated
// identity (such as login).
func RateLimit(identifier string, max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Second
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			subject := ""
			if v := c.Locals("user_id"); v != nil {
				subject = strings.TrimSpace(fmt.Sprintf("%v", v))
			}
			if subject == "" || subject == "0" {
				subject = c.IP()
			}
			return fmt.Sprintf("%s:%s", identifier, subject)
		},
	})
}
