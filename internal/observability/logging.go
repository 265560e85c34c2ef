package observability

import (
	"strings"
	"unicode/utf8"

	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/models"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskName keeps the first letter of each word, e.g. "Jean-Luc Picard" -> "J*** P*****"
func MaskName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "***"
	}
	masked := make([]string, len(words))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		masked[i] = string(first) + strings.Repeat("*", utf8.RuneCountInString(w[size:]))
	}
	return strings.Join(masked, " ")
}

// MaskSensitiveData masks personal fields in submitted form data
func MaskSensitiveData(data map[string]string) map[string]string {
	sensitiveFields := []string{
		models.FieldFirstName,
		models.FieldLastName,
		models.FieldBirthday,
		models.FieldPlaceOfBirth,
		models.FieldAddress,
	}
	masked := make(map[string]string, len(data))

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
