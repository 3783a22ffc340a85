// Package httpapi carries the uniform response envelope and the request
// language plumbing. Business outcomes travel in-band: every response,
// success or failure, is HTTP 200 with the envelope's success flag set.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/souqline/souq-admin-service/internal/apperror"
	"github.com/souqline/souq-admin-service/internal/localization"
)

const langKey = "lang"

type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Exception string `json:"exception,omitempty"`
}

// LanguageMiddleware resolves the request language from Accept-Language and
// stores it in the request locals.
func LanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(langKey, localization.FromHeader(c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

// Lang returns the language resolved by LanguageMiddleware, defaulting to
// English when the middleware did not run (tests).
func Lang(c *fiber.Ctx) localization.Language {
	if lang, ok := c.Locals(langKey).(localization.Language); ok {
		return lang
	}
	return localization.English
}

func OK(c *fiber.Ctx, msg localization.Message, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Message: msg.Resolve(Lang(c)),
		Data:    data,
	})
}

// Fail converts any usecase error into a failure envelope. Persistence causes
// are exposed only through the secondary exception field.
func Fail(c *fiber.Ctx, err error) error {
	appErr := apperror.As(err)

	env := Envelope{
		Success: false,
		Message: appErr.Message.Resolve(Lang(c)),
	}
	if appErr.Err != nil {
		env.Exception = appErr.Err.Error()
	}
	return c.Status(fiber.StatusOK).JSON(env)
}
