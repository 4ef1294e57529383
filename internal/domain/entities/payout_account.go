package entities

import "time"

// PayoutAccount is where a provider receives payments. Invoices keep a copy
// taken at creation so later account changes do not rewrite history.
//
// Storage model (DynamoDB):
//   - PK: provider_id
type PayoutAccount struct {
	ProviderID    string    `json:"provider_id"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountHolder string    `json:"account_holder"`
	UpdatedAt     time.Time `json:"updated_at"`
}
