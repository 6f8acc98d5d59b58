package services

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	nonDigits   = regexp.MustCompile(`\D`)
)

// NormalizePhone validates a phone number into E.164 form. countryCode is the
// code (digits only) assumed for local numbers without one.
//
// A malformed number is never an error: it is logged and dropped, and the
// second return value is false. Known quirk kept from the deployed behavior:
// a 9-digit number that starts with neither "0" nor the country code falls
// into no branch and is dropped.
func NormalizePhone(raw, countryCode string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	if strings.HasPrefix(trimmed, "+") {
		if e164Pattern.MatchString(trimmed) {
			return trimmed, true
		}
		slog.Warn("invalid E.164 phone number format", "phone", trimmed)
		return "", false
	}

	digits := nonDigits.ReplaceAllString(trimmed, "")
	if len(digits) < 9 {
		slog.Warn("phone number too short", "phone", trimmed)
		return "", false
	}

	switch {
	case strings.HasPrefix(digits, "0"):
		return "+" + countryCode + digits[1:], true
	case strings.HasPrefix(digits, countryCode):
		return "+" + digits, true
	case len(digits) >= 10:
		return "+" + countryCode + digits, true
	default:
		slog.Warn("cannot format phone number", "phone", trimmed)
		return "", false
	}
}
