package services

import (
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-attestation/internal/models"
)

// ReasonTable resolves reason codes to their legal text. It is immutable once built.
type ReasonTable struct {
	reasons []models.Reason
	byCode  map[string]string
}

// NewReasonTable validates and indexes a reason list
func NewReasonTable(reasons []models.Reason) (*ReasonTable, error) {
	if len(reasons) == 0 {
		return nil, fmt.Errorf("%w: no reasons", models.ErrInvalidReasons)
	}

	table := &ReasonTable{
		reasons: make([]models.Reason, 0, len(reasons)),
		byCode:  make(map[string]string, len(reasons)),
	}
	for i, r := range reasons {
		if strings.TrimSpace(r.Code) == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty code", models.ErrInvalidReasons, i)
		}
		if strings.TrimSpace(r.Text) == "" {
			return nil, fmt.Errorf("%w: reason %q has an empty text", models.ErrInvalidReasons, r.Code)
		}
		if _, dup := table.byCode[r.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate reason %q", models.ErrInvalidReasons, r.Code)
		}
		table.byCode[r.Code] = r.Text
		table.reasons = append(table.reasons, r)
	}

	return table, nil
}

// Resolve returns the legal text for a reason code
func (t *ReasonTable) Resolve(code string) (string, error) {
	text, ok := t.byCode[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownReason, code)
	}
	return text, nil
}

// Has reports whether the code is part of the table
func (t *ReasonTable) Has(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Codes returns the reason codes in table order
func (t *ReasonTable) Codes() []string {
	codes := make([]string, len(t.reasons))
	for i, r := range t.reasons {
		codes[i] = r.Code
	}
	return codes
}

// Reasons returns a copy of the table entries
func (t *ReasonTable) Reasons() []models.Reason {
	out := make([]models.Reason, len(t.reasons))
	copy(out, t.reasons)
	return out
}
