package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to LLM-backed endpoints
// and the default timeout everywhere else.
func SelectiveTimeoutConfig(defaultTimeout, llmTimeout time.Duration) echo.MiddlewareFunc {
	llmPrefixes := []string{
		"/api/v1/jobs",
		"/api/v1/evaluations",
		"/api/v1/resume",
	}

	defaultMW := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: defaultTimeout})
	llmMW := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: llmTimeout})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		defaultHandler := defaultMW(next)
		llmHandler := llmMW(next)

		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range llmPrefixes {
				if strings.HasPrefix(path, prefix) {
					return llmHandler(c)
				}
			}
			return defaultHandler(c)
		}
	}
}
