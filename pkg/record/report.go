package record

// Report is a transaction report submitted after the fact, telling the
// service that a previously scored transaction turned out to be fraud, not
// fraud, and so on. Tag is mandatory and at least one of IPAddress,
// MaxMindID, MinFraudID or TransactionID must identify the transaction.
type Report struct {
	ChargebackCode *string `json:"chargeback_code,omitempty"`
	IPAddress      *string `json:"ip_address,omitempty"`
	MaxMindID      *string `json:"maxmind_id,omitempty"`
	MinFraudID     *string `json:"minfraud_id,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Tag            *string `json:"tag,omitempty"`
	TransactionID  *string `json:"transaction_id,omitempty"`
}
