package record

import (
	"fmt"
	"strings"
)

// Violation is a single validation failure, located by a JSON-pointer-like
// path into the record (e.g. /credit_card/issuer_id_number).
type Violation struct {
	Pointer string `json:"pointer"`
	Reason  string `json:"reason"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Pointer, v.Reason)
}

// ValidationError aggregates every violation found in a record. Validation
// never stops at the first defect, so the caller sees the complete list in
// one round trip.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "invalid record: " + e.Violations[0].String()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("invalid record (%d violations): %s",
		len(e.Violations), strings.Join(parts, "; "))
}
