package validate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tjfontaine/minfraud-go/pkg/record"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func violations(t *testing.T, err error) []record.Violation {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var verr *record.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *record.ValidationError, got %T", err)
	}
	return verr.Violations
}

func hasPointer(vs []record.Violation, pointer string) bool {
	for _, v := range vs {
		if v.Pointer == pointer {
			return true
		}
	}
	return false
}

func TestTransactionEmptyRecordIsValid(t *testing.T) {
	if err := Transaction(&record.Transaction{}); err != nil {
		t.Errorf("empty transaction should be valid, got %v", err)
	}
}

func TestTransactionValidRecord(t *testing.T) {
	tx := &record.Transaction{
		Account: &record.Account{
			UserID:      strPtr("3132"),
			UsernameMD5: strPtr("4f9726678abcf3a4a914253fa8b3a4aa"),
		},
		Billing: &record.Billing{
			Country:          strPtr("US"),
			Region:           strPtr("CT"),
			PhoneCountryCode: strPtr("1"),
		},
		CreditCard: &record.CreditCard{
			AVSResult:      strPtr("Y"),
			CVVResult:      strPtr("N"),
			IssuerIDNumber: strPtr("411111"),
			LastDigits:     strPtr("7643"),
			Token:          strPtr("abc-123"),
		},
		Device: &record.Device{
			IPAddress:  strPtr("81.2.69.160"),
			SessionAge: floatPtr(3600),
		},
		Email: &record.Email{
			Address: strPtr("test@maxmind.com"),
			Domain:  strPtr("maxmind.com"),
		},
		Event: &record.Event{
			Time: strPtr("2024-04-12T23:20:50.52Z"),
			Type: strPtr("purchase"),
		},
		Order: &record.Order{
			Amount:      floatPtr(323.21),
			Currency:    strPtr("USD"),
			ReferrerURI: strPtr("https://store.example.com/cart"),
		},
		Payment: &record.Payment{
			Processor: strPtr("stripe"),
		},
		Shipping: &record.Shipping{
			Country:       strPtr("GB"),
			DeliverySpeed: strPtr("same_day"),
		},
		ShoppingCart: []record.CartItem{
			{Price: floatPtr(9.99), Quantity: intPtr(2)},
		},
		CustomInputs: map[string]any{
			"float_input":  float64(12.1),
			"string_input": "written in stone",
			"bool_input":   true,
		},
	}
	if err := Transaction(tx); err != nil {
		t.Errorf("transaction should be valid, got %v", err)
	}
}

func TestTransactionAggregatesViolations(t *testing.T) {
	tx := &record.Transaction{
		CreditCard: &record.CreditCard{
			IssuerIDNumber: strPtr("1234567"),
			LastDigits:     strPtr("123"),
		},
		Device: &record.Device{IPAddress: strPtr("not-an-ip")},
		Event:  &record.Event{Type: strPtr("chargeback")},
	}
	vs := violations(t, Transaction(tx))
	for _, want := range []string{
		"/credit_card/issuer_id_number",
		"/credit_card/last_digits",
		"/device/ip_address",
		"/event/type",
	} {
		if !hasPointer(vs, want) {
			t.Errorf("missing violation for %s in %v", want, vs)
		}
	}
	if len(vs) != 4 {
		t.Errorf("expected 4 violations, got %d: %v", len(vs), vs)
	}
}

func TestTransactionFieldFormats(t *testing.T) {
	tests := []struct {
		name    string
		tx      *record.Transaction
		pointer string
		valid   bool
	}{
		{
			name:    "iin 6 digits",
			tx:      &record.Transaction{CreditCard: &record.CreditCard{IssuerIDNumber: strPtr("411111")}},
			pointer: "/credit_card/issuer_id_number",
			valid:   true,
		},
		{
			name:    "iin 8 digits",
			tx:      &record.Transaction{CreditCard: &record.CreditCard{IssuerIDNumber: strPtr("41111111")}},
			pointer: "/credit_card/issuer_id_number",
			valid:   true,
		},
		{
			name:    "iin 7 digits rejected",
			tx:      &record.Transaction{CreditCard: &record.CreditCard{IssuerIDNumber: strPtr("4111111")}},
			pointer: "/credit_card/issuer_id_number",
		},
		{
			name:    "last digits 2",
			tx:      &record.Transaction{CreditCard: &record.CreditCard{LastDigits: strPtr("43")}},
			pointer: "/credit_card/last_digits",
			valid:   true,
		},
		{
			name:    "last digits 4",
			tx:      &record.Transaction{CreditCard: &record.CreditCard{LastDigits: strPtr("7643")}},
			pointer: "/credit_card/last_digits",
			valid:   true,
		},
		{
			name:    "last digits 3 rejected",
			tx:      &record.Transaction{CreditCard: &record.CreditCard{LastDigits: strPtr("764")}},
			pointer: "/credit_card/last_digits",
		},
		{
			name:    "token that looks like a card number rejected",
			tx:      &record.Transaction{CreditCard: &record.CreditCard{Token: strPtr("4111111111111111")}},
			pointer: "/credit_card/token",
		},
		{
			name:    "ipv6 accepted",
			tx:      &record.Transaction{Device: &record.Device{IPAddress: strPtr("2001:db8::1")}},
			pointer: "/device/ip_address",
			valid:   true,
		},
		{
			name:    "numeric ip rejected",
			tx:      &record.Transaction{Device: &record.Device{IPAddress: strPtr("1234567890")}},
			pointer: "/device/ip_address",
		},
		{
			name:    "timestamp without zone rejected",
			tx:      &record.Transaction{Event: &record.Event{Time: strPtr("2024-04-12T23:20:50")}},
			pointer: "/event/time",
		},
		{
			name:    "timestamp with offset accepted",
			tx:      &record.Transaction{Event: &record.Event{Time: strPtr("2024-04-12t23:20:50+01:00")}},
			pointer: "/event/time",
			valid:   true,
		},
		{
			name:    "lower case currency rejected",
			tx:      &record.Transaction{Order: &record.Order{Currency: strPtr("usd")}},
			pointer: "/order/currency",
		},
		{
			name:    "ftp referrer rejected",
			tx:      &record.Transaction{Order: &record.Order{ReferrerURI: strPtr("ftp://example.com/")}},
			pointer: "/order/referrer_uri",
		},
		{
			name:    "unknown processor rejected",
			tx:      &record.Transaction{Payment: &record.Payment{Processor: strPtr("definitely_not_real")}},
			pointer: "/payment/processor",
		},
		{
			name:    "unknown delivery speed rejected",
			tx:      &record.Transaction{Shipping: &record.Shipping{DeliverySpeed: strPtr("slow")}},
			pointer: "/shipping/delivery_speed",
		},
		{
			name:    "md5 email accepted",
			tx:      &record.Transaction{Email: &record.Email{Address: strPtr("977577b140bfb7c516e4746204fbdb01")}},
			pointer: "/email/address",
			valid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transaction(tt.tx)
			if tt.valid {
				if err != nil {
					t.Errorf("expected valid, got %v", err)
				}
				return
			}
			if !hasPointer(violations(t, err), tt.pointer) {
				t.Errorf("expected a violation at %s, got %v", tt.pointer, err)
			}
		})
	}
}

func TestCustomInputNumericBoundary(t *testing.T) {
	tests := []struct {
		value float64
		valid bool
	}{
		{9999999999999, true},
		{10000000000000, false},
		{-9999999999999, true},
		{-10000000000000, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.0f", tt.value), func(t *testing.T) {
			tx := &record.Transaction{CustomInputs: map[string]any{"amount": tt.value}}
			err := Transaction(tx)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !hasPointer(violations(t, err), "/custom_inputs/amount") {
				t.Errorf("expected a violation at /custom_inputs/amount, got %v", err)
			}
		})
	}
}

func TestCustomInputKeyCount(t *testing.T) {
	inputs := make(map[string]any, 201)
	for i := 0; i < 201; i++ {
		inputs[fmt.Sprintf("key_%d", i)] = true
	}
	err := Transaction(&record.Transaction{CustomInputs: inputs})
	if !hasPointer(violations(t, err), "/custom_inputs") {
		t.Errorf("expected a violation at /custom_inputs, got %v", err)
	}
}

func TestReport(t *testing.T) {
	t.Run("valid with ip address", func(t *testing.T) {
		r := &record.Report{
			IPAddress: strPtr("81.2.69.160"),
			Tag:       strPtr("chargeback"),
		}
		if err := Report(r); err != nil {
			t.Errorf("expected valid, got %v", err)
		}
	})

	t.Run("valid with transaction id only", func(t *testing.T) {
		r := &record.Report{
			TransactionID: strPtr("txn-12345"),
			Tag:           strPtr("not_fraud"),
		}
		if err := Report(r); err != nil {
			t.Errorf("expected valid, got %v", err)
		}
	})

	t.Run("missing tag", func(t *testing.T) {
		r := &record.Report{IPAddress: strPtr("81.2.69.160")}
		if !hasPointer(violations(t, Report(r)), "/tag") {
			t.Error("expected a violation at /tag")
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		r := &record.Report{IPAddress: strPtr("81.2.69.160"), Tag: strPtr("fraud")}
		if !hasPointer(violations(t, Report(r)), "/tag") {
			t.Error("expected a violation at /tag")
		}
	})

	t.Run("no identifier", func(t *testing.T) {
		r := &record.Report{Tag: strPtr("chargeback"), ChargebackCode: strPtr("C01")}
		vs := violations(t, Report(r))
		if !hasPointer(vs, "") {
			t.Errorf("expected the missing-identifier violation, got %v", vs)
		}
	})

	t.Run("nil minfraud id rejected", func(t *testing.T) {
		r := &record.Report{
			MinFraudID: strPtr("00000000-0000-0000-0000-000000000000"),
			Tag:        strPtr("chargeback"),
		}
		if !hasPointer(violations(t, Report(r)), "/minfraud_id") {
			t.Error("expected a violation at /minfraud_id")
		}
	})

	t.Run("maxmind id length", func(t *testing.T) {
		r := &record.Report{MaxMindID: strPtr("abc"), Tag: strPtr("chargeback")}
		if !hasPointer(violations(t, Report(r)), "/maxmind_id") {
			t.Error("expected a violation at /maxmind_id")
		}
	})
}
