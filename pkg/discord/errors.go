package discord

import (
	"tscat/internal/domain"
	"tscat/internal/ports/output"
)

// TranslateDomainError maps a domain error code to a user-facing message.
func TranslateDomainError(t output.T, locale, code string) string {
	if code == "" {
		code = "unknown"
	}
	return t.T(locale, "errors."+code, nil)
}

// DomainErrorMessage extracts the domain error code and immediately resolves
// it to a user-facing message. Errors without a code get the generic message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(t, locale, domain.Code(err))
}
