package validate

import (
	"net/mail"
	"net/netip"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Per-field predicates. Each is side-effect-free and order-independent so the
// schema validator can apply them in any sequence and aggregate the results.

const (
	// Custom numeric inputs must stay strictly inside +-1e13.
	customInputNumericBound = 1e13

	// A transaction may carry at most this many custom input keys.
	maxCustomInputKeys = 200

	maxCustomInputValueLen = 255
)

var (
	reMD5            = regexp.MustCompile(`^[0-9A-Fa-f]{32}$`)
	reCountryCode    = regexp.MustCompile(`^[A-Z]{2}$`)
	reSubdivision    = regexp.MustCompile(`^[0-9A-Z]{1,4}$`)
	rePhoneCountry   = regexp.MustCompile(`^[0-9]{1,4}$`)
	reSingleChar     = regexp.MustCompile(`^[A-Za-z0-9]$`)
	reIIN            = regexp.MustCompile(`^(?:[0-9]{6}|[0-9]{8})$`)
	reLastDigits     = regexp.MustCompile(`^(?:[0-9]{2}|[0-9]{4})$`)
	reCurrencyCode   = regexp.MustCompile(`^[A-Z]{3}$`)
	reCustomInputKey = regexp.MustCompile(`^[a-z0-9_]{1,25}$`)
	reCardToken      = regexp.MustCompile(`^[\x21-\x7e]{1,255}$`)
	reCardTokenPAN   = regexp.MustCompile(`^[0-9]{1,19}$`)
	reRFC3339        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:[Zz]|[+-]\d{2}:\d{2})$`)
	reHostLabel      = regexp.MustCompile(`^[A-Za-z0-9-]{1,63}$`)
)

func validIP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

// validEmail accepts either a plain address or an MD5 hex digest of one.
func validEmail(s string) bool {
	if reMD5.MatchString(s) {
		return true
	}
	if !strings.Contains(s, "@") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validHostname(s string) bool {
	if len(s) == 0 || len(s) > 255 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if !reHostLabel.MatchString(label) ||
			strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

func validHTTPURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validCardToken accepts 1-255 printable ASCII characters, but rejects
// anything that is all digits up to PAN length: a raw card number must never
// be sent as a token.
func validCardToken(s string) bool {
	return reCardToken.MatchString(s) && !reCardTokenPAN.MatchString(s)
}

func validMaxMindID(s string) bool {
	return len(s) == 8
}

func validMinFraudID(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id != uuid.Nil
}

// customInputValue checks one custom input value: a bounded single-line
// string, a number strictly inside the documented range, or a bool. The
// returned reason is empty when the value is acceptable.
func customInputValue(v any) string {
	switch val := v.(type) {
	case bool:
		return ""
	case string:
		if len(val) == 0 || len(val) > maxCustomInputValueLen {
			return "string value must be 1-255 characters"
		}
		if strings.ContainsRune(val, '\n') {
			return "string value must not contain newlines"
		}
		return ""
	case int:
		return customInputNumber(float64(val))
	case int64:
		return customInputNumber(float64(val))
	case float64:
		return customInputNumber(val)
	default:
		return "value must be a string, number, or boolean"
	}
}

func customInputNumber(f float64) string {
	if f <= -customInputNumericBound || f >= customInputNumericBound {
		return "numeric value must be between -1e13 and 1e13, exclusive"
	}
	return ""
}
