package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CorrelationHeader carries the client-chosen id of a mutating request
const CorrelationHeader = "X-Correlation-ID"

type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// IdempotencyMiddleware provides idempotency for POST/PUT/PATCH requests using X-Correlation-ID.
// A successful response is stored per user, route and correlation id; a repeat within the TTL
// replays it without running the handler again.
func IdempotencyMiddleware(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Only apply to mutating methods
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPatch && c.Method() != fiber.MethodPut {
			return c.Next()
		}

		correlationID := c.Get(CorrelationHeader)
		if correlationID == "" {
			return c.Next()
		}

		key := fmt.Sprintf("idempotency:%s:%s:%s:%s", GetUserID(c), c.Method(), c.Path(), correlationID)
		if raw, err := redisClient.Get(c.UserContext(), key).Bytes(); err == nil {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				c.Set("X-Idempotent-Replay", "true")
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.Status(cached.Status).Send(cached.Body)
			}
		} else if err != redis.Nil {
			logrus.WithError(err).Warn("idempotency lookup failed")
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Cache successful responses (2xx status codes)
		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			return nil
		}

		raw, err := json.Marshal(cachedResponse{Status: status, Body: c.Response().Body()})
		if err != nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := redisClient.Set(ctx, key, raw, ttl).Err(); err != nil {
			logrus.WithError(err).Warn("idempotency store failed")
		}
		return nil
	}
}
