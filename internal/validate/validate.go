// Package validate checks Transaction and Report records against the web
// service's documented schema before anything is sent over the wire. Every
// violation found is aggregated into a single record.ValidationError rather
// than failing on the first defect.
package validate

import (
	"fmt"
	"sort"

	"github.com/tjfontaine/minfraud-go/pkg/record"
)

type collector struct {
	violations []record.Violation
}

func (c *collector) add(pointer, reason string) {
	c.violations = append(c.violations, record.Violation{Pointer: pointer, Reason: reason})
}

func (c *collector) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &record.ValidationError{Violations: c.violations}
}

// Transaction validates every present leaf field of t. A record with no
// fields at all is valid: nothing in a transaction is unconditionally
// required.
func Transaction(t *record.Transaction) error {
	c := &collector{}

	if a := t.Account; a != nil {
		checkMatch(c, "/account/username_md5", a.UsernameMD5, reMD5.MatchString,
			"must be an MD5 hash as a hexadecimal string")
	}
	if b := t.Billing; b != nil {
		checkAddress(c, "/billing", b.Country, b.Region, b.PhoneCountryCode)
	}
	if s := t.Shipping; s != nil {
		checkAddress(c, "/shipping", s.Country, s.Region, s.PhoneCountryCode)
		if s.DeliverySpeed != nil && !deliverySpeeds[*s.DeliverySpeed] {
			c.add("/shipping/delivery_speed", fmt.Sprintf("%q is not a known delivery speed", *s.DeliverySpeed))
		}
	}
	if cc := t.CreditCard; cc != nil {
		checkMatch(c, "/credit_card/avs_result", cc.AVSResult, reSingleChar.MatchString,
			"must be a single alphanumeric character")
		checkMatch(c, "/credit_card/cvv_result", cc.CVVResult, reSingleChar.MatchString,
			"must be a single alphanumeric character")
		checkMatch(c, "/credit_card/country", cc.Country, reCountryCode.MatchString,
			"must be a two-letter ISO 3166-1 country code")
		checkMatch(c, "/credit_card/issuer_id_number", cc.IssuerIDNumber, reIIN.MatchString,
			"must be 6 or 8 digits")
		checkMatch(c, "/credit_card/last_digits", cc.LastDigits, reLastDigits.MatchString,
			"must be 2 or 4 digits")
		checkMatch(c, "/credit_card/bank_phone_country_code", cc.BankPhoneCountryCode, rePhoneCountry.MatchString,
			"must be 1-4 digits")
		checkMatch(c, "/credit_card/token", cc.Token, validCardToken,
			"must be 1-255 printable ASCII characters and must not be a card number")
	}
	if d := t.Device; d != nil {
		checkMatch(c, "/device/ip_address", d.IPAddress, validIP,
			"must be a valid IPv4 or IPv6 address")
		if d.SessionAge != nil && *d.SessionAge < 0 {
			c.add("/device/session_age", "must not be negative")
		}
	}
	if e := t.Email; e != nil {
		checkMatch(c, "/email/address", e.Address, validEmail,
			"must be an email address or an MD5 hash of one")
		checkMatch(c, "/email/domain", e.Domain, validHostname,
			"must be a valid hostname")
	}
	if ev := t.Event; ev != nil {
		checkMatch(c, "/event/time", ev.Time, reRFC3339.MatchString,
			"must be an RFC 3339 date-time")
		if ev.Type != nil && !eventTypes[*ev.Type] {
			c.add("/event/type", fmt.Sprintf("%q is not a known event type", *ev.Type))
		}
	}
	if o := t.Order; o != nil {
		if o.Amount != nil && *o.Amount <= 0 {
			c.add("/order/amount", "must be greater than zero")
		}
		checkMatch(c, "/order/currency", o.Currency, reCurrencyCode.MatchString,
			"must be a three-letter ISO 4217 currency code")
		checkMatch(c, "/order/referrer_uri", o.ReferrerURI, validHTTPURI,
			"must be an absolute http or https URL")
	}
	if p := t.Payment; p != nil {
		if p.Processor != nil && !paymentProcessors[*p.Processor] {
			c.add("/payment/processor", fmt.Sprintf("%q is not a known payment processor", *p.Processor))
		}
	}
	for i, item := range t.ShoppingCart {
		if item.Price != nil && *item.Price <= 0 {
			c.add(fmt.Sprintf("/shopping_cart/%d/price", i), "must be greater than zero")
		}
		if item.Quantity != nil && *item.Quantity < 1 {
			c.add(fmt.Sprintf("/shopping_cart/%d/quantity", i), "must be at least 1")
		}
	}
	checkCustomInputs(c, t.CustomInputs)

	return c.err()
}

// Report validates a transaction report. Tag is mandatory and the report
// must carry at least one identifying field.
func Report(r *record.Report) error {
	c := &collector{}

	switch {
	case r.Tag == nil:
		c.add("/tag", "is required")
	case !reportTags[*r.Tag]:
		c.add("/tag", fmt.Sprintf("%q is not a known report tag", *r.Tag))
	}

	if r.IPAddress == nil && r.MaxMindID == nil && r.MinFraudID == nil && r.TransactionID == nil {
		c.add("", "at least one of ip_address, maxmind_id, minfraud_id, or transaction_id is required")
	}

	checkMatch(c, "/ip_address", r.IPAddress, validIP,
		"must be a valid IPv4 or IPv6 address")
	checkMatch(c, "/maxmind_id", r.MaxMindID, validMaxMindID,
		"must be exactly 8 characters")
	checkMatch(c, "/minfraud_id", r.MinFraudID, validMinFraudID,
		"must be a non-nil UUID")
	if r.TransactionID != nil && *r.TransactionID == "" {
		c.add("/transaction_id", "must not be empty")
	}

	return c.err()
}

func checkMatch(c *collector, pointer string, field *string, valid func(string) bool, reason string) {
	if field != nil && !valid(*field) {
		c.add(pointer, reason)
	}
}

func checkAddress(c *collector, prefix string, country, region, phoneCC *string) {
	checkMatch(c, prefix+"/country", country, reCountryCode.MatchString,
		"must be a two-letter ISO 3166-1 country code")
	checkMatch(c, prefix+"/region", region, reSubdivision.MatchString,
		"must be an ISO 3166-2 subdivision code")
	checkMatch(c, prefix+"/phone_country_code", phoneCC, rePhoneCountry.MatchString,
		"must be 1-4 digits")
}

func checkCustomInputs(c *collector, inputs map[string]any) {
	if len(inputs) == 0 {
		return
	}
	if len(inputs) > maxCustomInputKeys {
		c.add("/custom_inputs", fmt.Sprintf("at most %d custom input keys are allowed, got %d",
			maxCustomInputKeys, len(inputs)))
	}

	// Map iteration order is random; sort so repeated validation of the
	// same record reports violations in the same order.
	keys := make([]string, 0, len(inputs))
	for k := range inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !reCustomInputKey.MatchString(k) {
			c.add("/custom_inputs/"+k, "key must be 1-25 characters of [a-z0-9_]")
		}
		if reason := customInputValue(inputs[k]); reason != "" {
			c.add("/custom_inputs/"+k, reason)
		}
	}
}
