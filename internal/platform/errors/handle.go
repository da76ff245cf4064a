package errors

import "github.com/louisbranch/i18n-overlay/internal/platform/errors/i18n"

// DefaultLocale is the default locale for error messages.
const DefaultLocale = i18n.BaseLocale

// UserMessage renders the user-facing message for err in locale.
// Non-domain errors fall back to their own text.
func UserMessage(err error, locale string) string {
	if err == nil {
		return ""
	}
	if locale == "" {
		locale = DefaultLocale
	}

	code := GetCode(err)
	if code == CodeUnknown {
		return err.Error()
	}
	return i18n.GetCatalog(locale).Format(string(code), GetMetadata(err))
}
