package minfraud

// Response models for the score, insights, and factors endpoints. Optional
// scalars are pointers so callers can tell "absent" from a zero value.
// Unknown response fields are ignored during decoding, which keeps the
// client compatible with server-side additions.

// Warning is a data issue the service noticed in the submitted record. The
// input pointer locates the offending field in the request body.
type Warning struct {
	Code         string `json:"code"`
	Warning      string `json:"warning"`
	InputPointer string `json:"input_pointer"`
}

// Disposition is the verdict derived from the account's custom rules.
type Disposition struct {
	Action    string `json:"action"`
	Reason    string `json:"reason"`
	RuleLabel string `json:"rule_label"`
}

// ScoreIPAddress is the minimal IP information returned by the score
// endpoint.
type ScoreIPAddress struct {
	Risk *float64 `json:"risk"`
}

// Score is the response of the score endpoint.
type Score struct {
	ID               string          `json:"id"`
	RiskScore        *float64        `json:"risk_score"`
	FundsRemaining   float64         `json:"funds_remaining"`
	QueriesRemaining int             `json:"queries_remaining"`
	Disposition      *Disposition    `json:"disposition"`
	IPAddress        *ScoreIPAddress `json:"ip_address"`
	Warnings         []Warning       `json:"warnings"`
}

// IPRiskReason explains one contribution to the IP risk.
type IPRiskReason struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// Country describes the country the IP address geolocates to. Names holds
// localized country names keyed by locale code.
type Country struct {
	Confidence *int              `json:"confidence"`
	ISOCode    string            `json:"iso_code"`
	Names      map[string]string `json:"names"`
	IsHighRisk *bool             `json:"is_high_risk"`

	locales []string
}

// Name returns the country name in the first configured locale it is
// available in, falling back to English.
func (c *Country) Name() string {
	for _, locale := range c.locales {
		if name, ok := c.Names[locale]; ok {
			return name
		}
	}
	return c.Names["en"]
}

// Location is the estimated coordinates of the IP address.
type Location struct {
	AccuracyRadius *int     `json:"accuracy_radius"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	TimeZone       string   `json:"time_zone"`
	LocalTime      string   `json:"local_time"`
}

// Traits carries network-level facts about the IP address.
type Traits struct {
	ISP          string `json:"isp"`
	Organization string `json:"organization"`
	UserType     string `json:"user_type"`
	IsAnonymous  *bool  `json:"is_anonymous"`
}

// IPAddress is the full IP intelligence returned by the insights and
// factors endpoints.
type IPAddress struct {
	Risk        *float64       `json:"risk"`
	RiskReasons []IPRiskReason `json:"risk_reasons"`
	Country     *Country       `json:"country"`
	Location    *Location      `json:"location"`
	Traits      *Traits        `json:"traits"`
}

func (ip *IPAddress) setLocales(locales []string) {
	if ip != nil && ip.Country != nil {
		ip.Country.locales = locales
	}
}

// Issuer describes the bank that issued the credit card.
type Issuer struct {
	Name                       string `json:"name"`
	MatchesProvidedName        *bool  `json:"matches_provided_name"`
	PhoneNumber                string `json:"phone_number"`
	MatchesProvidedPhoneNumber *bool  `json:"matches_provided_phone_number"`
}

// CreditCardInsights is what the service knows about the card from its
// issuer ID number.
type CreditCardInsights struct {
	Issuer                          *Issuer `json:"issuer"`
	Brand                           string  `json:"brand"`
	Country                         string  `json:"country"`
	Type                            string  `json:"type"`
	IsBusiness                      *bool   `json:"is_business"`
	IsIssuedInBillingAddressCountry *bool   `json:"is_issued_in_billing_address_country"`
	IsPrepaid                       *bool   `json:"is_prepaid"`
	IsVirtual                       *bool   `json:"is_virtual"`
}

// DeviceInsights identifies the device across transactions.
type DeviceInsights struct {
	Confidence *float64 `json:"confidence"`
	ID         string   `json:"id"`
	LastSeen   string   `json:"last_seen"`
	LocalTime  string   `json:"local_time"`
}

// EmailDomainInsights describes the email's domain.
type EmailDomainInsights struct {
	FirstSeen string `json:"first_seen"`
}

// EmailInsights describes the email address's history with the service.
type EmailInsights struct {
	Domain       *EmailDomainInsights `json:"domain"`
	FirstSeen    string               `json:"first_seen"`
	IsDisposable *bool                `json:"is_disposable"`
	IsFree       *bool                `json:"is_free"`
	IsHighRisk   *bool                `json:"is_high_risk"`
}

// BillingAddress compares the billing address against the IP location.
type BillingAddress struct {
	IsPostalInCity       *bool    `json:"is_postal_in_city"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	DistanceToIPLocation *int     `json:"distance_to_ip_location"`
	IsInIPCountry        *bool    `json:"is_in_ip_country"`
}

// ShippingAddress compares the shipping address against the IP location and
// the billing address.
type ShippingAddress struct {
	IsPostalInCity           *bool    `json:"is_postal_in_city"`
	Latitude                 *float64 `json:"latitude"`
	Longitude                *float64 `json:"longitude"`
	DistanceToIPLocation     *int     `json:"distance_to_ip_location"`
	IsInIPCountry            *bool    `json:"is_in_ip_country"`
	IsHighRisk               *bool    `json:"is_high_risk"`
	DistanceToBillingAddress *int     `json:"distance_to_billing_address"`
}

// Phone describes a billing or shipping phone number.
type Phone struct {
	Country         string `json:"country"`
	IsVoIP          *bool  `json:"is_voip"`
	NetworkOperator string `json:"network_operator"`
	NumberType      string `json:"number_type"`
}

// Insights is the response of the insights endpoint.
type Insights struct {
	ID               string              `json:"id"`
	RiskScore        *float64            `json:"risk_score"`
	FundsRemaining   float64             `json:"funds_remaining"`
	QueriesRemaining int                 `json:"queries_remaining"`
	Disposition      *Disposition        `json:"disposition"`
	IPAddress        *IPAddress          `json:"ip_address"`
	CreditCard       *CreditCardInsights `json:"credit_card"`
	Device           *DeviceInsights     `json:"device"`
	Email            *EmailInsights      `json:"email"`
	BillingAddress   *BillingAddress     `json:"billing_address"`
	ShippingAddress  *ShippingAddress    `json:"shipping_address"`
	BillingPhone     *Phone              `json:"billing_phone"`
	ShippingPhone    *Phone              `json:"shipping_phone"`
	Warnings         []Warning           `json:"warnings"`
}

// Reason is one code/description pair within a risk score reason.
type Reason struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// RiskScoreReason explains one multiplier applied to the risk score.
type RiskScoreReason struct {
	Multiplier float64  `json:"multiplier"`
	Reasons    []Reason `json:"reasons"`
}

// Factors is the response of the factors endpoint: everything insights
// returns, plus the reasons behind the risk score.
type Factors struct {
	Insights
	RiskScoreReasons []RiskScoreReason `json:"risk_score_reasons"`
}
