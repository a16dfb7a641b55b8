// Package email canonicalizes email addresses for privacy-preserving
// hashing. The whole package is pure: the lookup tables in tables.go are the
// only external input and they are fixed at process start, so equal inputs
// always produce equal outputs and concurrent use needs no locking.
package email

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Normalized is the canonical form of an address. Digest is the hex MD5 of
// "local@domain" and is what gets transmitted in place of the plaintext
// address; Domain stays in plaintext regardless.
type Normalized struct {
	LocalPart string
	Domain    string
	Digest    string
}

// Normalize canonicalizes an address and computes its digest. The second
// return is false when the input has no "@" and cannot be treated as an
// address at all.
//
// The rule order is fixed: domain is lower-cased and cleaned (final-label
// typo fix, duplicate-suffix collapse, typo and equivalence tables), then
// provider-specific local-part rules apply keyed by the resulting domain,
// then the local part is NFC-normalized.
func Normalize(address string) (Normalized, bool) {
	addr := strings.ToLower(strings.TrimSpace(address))

	at := strings.LastIndex(addr, "@")
	if at == -1 {
		return Normalized{}, false
	}

	domain := cleanDomain(addr[at+1:])
	local := addr[:at]

	// Strip the alias suffix. Yahoo-class domains use "-" as the alias
	// divider, everyone else uses "+". A divider in first position is part
	// of the mailbox name, not an alias.
	divider := "+"
	if yahooDomains[domain] {
		divider = "-"
	}
	if idx := strings.Index(local, divider); idx > 0 {
		local = local[:idx]
	}

	if domain == "gmail.com" {
		local = strings.ReplaceAll(local, ".", "")
		local = stripNumericPrefix(local)
	}

	// alias@user.fastmail.com is really user@fastmail.com.
	if idx := strings.Index(domain, "."); idx > 0 {
		if root := domain[idx+1:]; strings.Contains(root, ".") && fastmailDomains[root] {
			local = domain[:idx]
			domain = root
		}
	}

	local = norm.NFC.String(local)

	sum := md5.Sum([]byte(local + "@" + domain))
	return Normalized{
		LocalPart: local,
		Domain:    domain,
		Digest:    hex.EncodeToString(sum[:]),
	}, true
}

func cleanDomain(domain string) string {
	domain = strings.TrimRight(strings.TrimSpace(domain), ".")
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil && ascii != "" {
		domain = ascii
	}

	if idx := strings.LastIndex(domain, "."); idx != -1 {
		if fixed, ok := typoTLDs[domain[idx+1:]]; ok {
			domain = domain[:idx+1] + fixed
		}
	}

	for _, s := range duplicateSuffixes {
		if strings.HasSuffix(domain, "."+s+"."+s) {
			domain = strings.TrimSuffix(domain, "."+s)
			break
		}
		if strings.HasSuffix(domain, s+s) &&
			strings.HasSuffix(strings.TrimSuffix(domain, s), "."+s) {
			domain = strings.TrimSuffix(domain, s)
			break
		}
	}

	if fixed, ok := typoDomains[domain]; ok {
		domain = fixed
	}
	if canonical, ok := equivalentDomains[domain]; ok {
		domain = canonical
	}
	return domain
}

// stripNumericPrefix removes the leading digit run that some list providers
// prepend to gmail local parts, unless the local part is nothing but digits.
func stripNumericPrefix(local string) string {
	trimmed := strings.TrimLeft(local, "0123456789")
	if trimmed == "" {
		return local
	}
	return trimmed
}
