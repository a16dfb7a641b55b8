package email

import (
	"crypto/md5"
	"encoding/hex"
	"testing"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		wantLocal string
		wantDomain string
	}{
		{
			name:      "plain address untouched",
			address:   "test@maxmind.com",
			wantLocal: "test",
			wantDomain: "maxmind.com",
		},
		{
			name:      "upper case folded",
			address:   "Test@MaxMind.com",
			wantLocal: "test",
			wantDomain: "maxmind.com",
		},
		{
			name:      "surrounding whitespace trimmed",
			address:   "  test@maxmind.com  ",
			wantLocal: "test",
			wantDomain: "maxmind.com",
		},
		{
			name:      "gmail periods stripped",
			address:   "f.o.o@gmail.com",
			wantLocal: "foo",
			wantDomain: "gmail.com",
		},
		{
			name:      "gmail leading digit run stripped",
			address:   "100foo@gmail.com",
			wantLocal: "foo",
			wantDomain: "gmail.com",
		},
		{
			name:      "gmail all-digit local kept",
			address:   "123456@gmail.com",
			wantLocal: "123456",
			wantDomain: "gmail.com",
		},
		{
			name:      "googlemail resolves to gmail",
			address:   "foo@googlemail.com",
			wantLocal: "foo",
			wantDomain: "gmail.com",
		},
		{
			name:      "plus alias stripped",
			address:   "foo+alias@maxmind.com",
			wantLocal: "foo",
			wantDomain: "maxmind.com",
		},
		{
			name:      "leading plus is not an alias",
			address:   "+foo@maxmind.com",
			wantLocal: "+foo",
			wantDomain: "maxmind.com",
		},
		{
			name:      "yahoo hyphen alias stripped",
			address:   "foo-bar@yahoo.com",
			wantLocal: "foo",
			wantDomain: "yahoo.com",
		},
		{
			name:      "yahoo plus kept",
			address:   "foo+bar@yahoo.com",
			wantLocal: "foo+bar",
			wantDomain: "yahoo.com",
		},
		{
			name:      "fastmail subdomain becomes the local part",
			address:   "alias@user.fastmail.com",
			wantLocal: "user",
			wantDomain: "fastmail.com",
		},
		{
			name:      "bare fastmail domain untouched",
			address:   "foo@fastmail.com",
			wantLocal: "foo",
			wantDomain: "fastmail.com",
		},
		{
			name:      "dotted duplicate suffix collapsed",
			address:   "foo@example.com.com",
			wantLocal: "foo",
			wantDomain: "example.com",
		},
		{
			name:      "run-together duplicate suffix collapsed",
			address:   "foo@example.comcom",
			wantLocal: "foo",
			wantDomain: "example.com",
		},
		{
			name:      "typo domain corrected",
			address:   "foo@gmali.com",
			wantLocal: "foo",
			wantDomain: "gmail.com",
		},
		{
			name:      "typo TLD corrected",
			address:   "foo@example.cmo",
			wantLocal: "foo",
			wantDomain: "example.com",
		},
		{
			name:      "stray leading characters on typo domain",
			address:   "foo@35gmai.com",
			wantLocal: "foo",
			wantDomain: "gmail.com",
		},
		{
			name:      "trailing dot stripped before cleaning",
			address:   "foo@example.com.",
			wantLocal: "foo",
			wantDomain: "example.com",
		},
		{
			name:      "idna domain encoded",
			address:   "foo@bücher.com",
			wantLocal: "foo",
			wantDomain: "xn--bcher-kva.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.address)
			if !ok {
				t.Fatalf("Normalize(%q) not ok", tt.address)
			}
			if got.LocalPart != tt.wantLocal {
				t.Errorf("local part = %q, want %q", got.LocalPart, tt.wantLocal)
			}
			if got.Domain != tt.wantDomain {
				t.Errorf("domain = %q, want %q", got.Domain, tt.wantDomain)
			}
			wantDigest := md5Hex(tt.wantLocal + "@" + tt.wantDomain)
			if got.Digest != wantDigest {
				t.Errorf("digest = %q, want %q", got.Digest, wantDigest)
			}
		})
	}
}

func TestNormalizeNoAtSign(t *testing.T) {
	if _, ok := Normalize("not-an-address"); ok {
		t.Error("expected ok=false for input without @")
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	first, ok := Normalize("F.o.o+tag@GoogleMail.com")
	if !ok {
		t.Fatal("Normalize not ok")
	}
	for i := 0; i < 10; i++ {
		again, ok := Normalize("F.o.o+tag@GoogleMail.com")
		if !ok || again != first {
			t.Fatalf("iteration %d: got %+v, want %+v", i, again, first)
		}
	}
}
