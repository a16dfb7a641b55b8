// Package record defines the input structures submitted to the fraud-scoring
// web service: the nested Transaction record, the flatter transaction Report,
// and the validation outcome types shared by the validator and the client.
//
// Every leaf field is optional. Absent fields (nil pointers, empty slices and
// maps) are omitted from the serialized request entirely rather than sent as
// null, because the service distinguishes "unset" from "explicitly empty".
package record

// Transaction describes one e-commerce event to be scored. The client never
// mutates a Transaction it is given; preparation produces a new copy.
type Transaction struct {
	Account      *Account       `json:"account,omitempty"`
	Billing      *Billing       `json:"billing,omitempty"`
	CreditCard   *CreditCard    `json:"credit_card,omitempty"`
	CustomInputs map[string]any `json:"custom_inputs,omitempty"`
	Device       *Device        `json:"device,omitempty"`
	Email        *Email         `json:"email,omitempty"`
	Event        *Event         `json:"event,omitempty"`
	Order        *Order         `json:"order,omitempty"`
	Payment      *Payment       `json:"payment,omitempty"`
	Shipping     *Shipping      `json:"shipping,omitempty"`
	ShoppingCart []CartItem     `json:"shopping_cart,omitempty"`
}

// Account holds identifiers for the account placing the transaction.
type Account struct {
	UserID      *string `json:"user_id,omitempty"`
	UsernameMD5 *string `json:"username_md5,omitempty"`
}

// Billing is the billing address associated with the transaction.
type Billing struct {
	Address          *string `json:"address,omitempty"`
	Address2         *string `json:"address_2,omitempty"`
	City             *string `json:"city,omitempty"`
	Company          *string `json:"company,omitempty"`
	Country          *string `json:"country,omitempty"`
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	PhoneCountryCode *string `json:"phone_country_code,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Postal           *string `json:"postal,omitempty"`
	Region           *string `json:"region,omitempty"`
}

// Shipping is the shipping address, which additionally carries the delivery
// speed of the order.
type Shipping struct {
	Address          *string `json:"address,omitempty"`
	Address2         *string `json:"address_2,omitempty"`
	City             *string `json:"city,omitempty"`
	Company          *string `json:"company,omitempty"`
	Country          *string `json:"country,omitempty"`
	DeliverySpeed    *string `json:"delivery_speed,omitempty"`
	FirstName        *string `json:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"`
	PhoneCountryCode *string `json:"phone_country_code,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Postal           *string `json:"postal,omitempty"`
	Region           *string `json:"region,omitempty"`
}

// CreditCard describes the card used for payment. Only non-PAN data may be
// provided; Token must never be a value derivable from the card number.
type CreditCard struct {
	AVSResult            *string `json:"avs_result,omitempty"`
	BankName             *string `json:"bank_name,omitempty"`
	BankPhoneCountryCode *string `json:"bank_phone_country_code,omitempty"`
	BankPhoneNumber      *string `json:"bank_phone_number,omitempty"`
	Country              *string `json:"country,omitempty"`
	CVVResult            *string `json:"cvv_result,omitempty"`
	IssuerIDNumber       *string `json:"issuer_id_number,omitempty"`
	LastDigits           *string `json:"last_digits,omitempty"`
	Token                *string `json:"token,omitempty"`
	Was3DSecureSuccessful *bool  `json:"was_3d_secure_successful,omitempty"`
}

// Device describes the device reported for the transaction.
type Device struct {
	AcceptLanguage *string  `json:"accept_language,omitempty"`
	IPAddress      *string  `json:"ip_address,omitempty"`
	SessionAge     *float64 `json:"session_age,omitempty"`
	SessionID      *string  `json:"session_id,omitempty"`
	UserAgent      *string  `json:"user_agent,omitempty"`
}

// Email holds the email address used in the transaction. Address may be a
// plain address or an MD5 hex digest of one; when client-side hashing is
// enabled the client replaces a plain address with its canonical digest and
// fills Domain if it was not already set.
type Email struct {
	Address *string `json:"address,omitempty"`
	Domain  *string `json:"domain,omitempty"`
}

// Event identifies the transaction event itself.
type Event struct {
	ShopID        *string `json:"shop_id,omitempty"`
	Time          *string `json:"time,omitempty"`
	TransactionID *string `json:"transaction_id,omitempty"`
	Type          *string `json:"type,omitempty"`
}

// Order describes the order totals and referral information.
type Order struct {
	AffiliateID    *string  `json:"affiliate_id,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	Currency       *string  `json:"currency,omitempty"`
	DiscountCode   *string  `json:"discount_code,omitempty"`
	HasGiftMessage *bool    `json:"has_gift_message,omitempty"`
	IsGift         *bool    `json:"is_gift,omitempty"`
	ReferrerURI    *string  `json:"referrer_uri,omitempty"`
	SubaffiliateID *string  `json:"subaffiliate_id,omitempty"`
}

// Payment describes how the transaction was paid for.
type Payment struct {
	DeclineCode   *string `json:"decline_code,omitempty"`
	Processor     *string `json:"processor,omitempty"`
	WasAuthorized *bool   `json:"was_authorized,omitempty"`
}

// CartItem is one line item in the shopping cart.
type CartItem struct {
	Category *string  `json:"category,omitempty"`
	ItemID   *string  `json:"item_id,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
}
