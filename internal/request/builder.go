// Package request turns validated records into outbound payloads. The caller
// keeps exclusive ownership of the record it passed in: preparation always
// returns a fresh copy and never writes through the original's pointers.
//
// Absent fields need no explicit scrubbing on the way out. Every optional
// leaf is a pointer with an omitempty tag, so a nil simply never appears in
// the serialized body, which is what the service requires: it distinguishes
// "unset" from "explicitly empty".
package request

import (
	"github.com/tjfontaine/minfraud-go/internal/email"
	"github.com/tjfontaine/minfraud-go/pkg/record"
)

// Transaction returns a submission-ready copy of t. With hashEmail set, a
// plain email address is replaced by the digest of its canonical form and
// the canonical domain is filled in when the caller did not provide one. An
// address with no "@" (including one that is already a digest) is left as
// provided.
func Transaction(t *record.Transaction, hashEmail bool) *record.Transaction {
	out := *t
	out.CustomInputs = cleanCustomInputs(t.CustomInputs)

	if !hashEmail || t.Email == nil || t.Email.Address == nil {
		return &out
	}

	normalized, ok := email.Normalize(*t.Email.Address)
	if !ok {
		return &out
	}

	cloned := *t.Email
	digest := normalized.Digest
	cloned.Address = &digest
	if cloned.Domain == nil && normalized.Domain != "" {
		domain := normalized.Domain
		cloned.Domain = &domain
	}
	out.Email = &cloned

	return &out
}

// Report returns a submission-ready copy of r.
func Report(r *record.Report) *record.Report {
	out := *r
	return &out
}

// cleanCustomInputs copies the custom input map with nil values dropped, so
// an explicit nil entry is treated as absent rather than serialized as null.
func cleanCustomInputs(inputs map[string]any) map[string]any {
	if len(inputs) == 0 {
		return nil
	}
	out := make(map[string]any, len(inputs))
	for k, v := range inputs {
		if v == nil {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
