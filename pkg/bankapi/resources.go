package bankapi

import (
	"time"
)

// Account

// AccountStatus is the lifecycle state of an Account.
type AccountStatus string

const (
	AccountStatusOpen   AccountStatus = "open"
	AccountStatusClosed AccountStatus = "closed"
)

// Account is a bank account.
type Account struct {
	ID                    string        `json:"id"                                yaml:"id"`
	Name                  string        `json:"name"                              yaml:"name"`
	Status                AccountStatus `json:"status"                            yaml:"status"`
	Bank                  string        `json:"bank"                              yaml:"bank"`
	Currency              string        `json:"currency"                          yaml:"currency"`
	EntityID              *string       `json:"entity_id"                         yaml:"entity_id"`
	InformationalEntityID *string       `json:"informational_entity_id"           yaml:"informational_entity_id"`
	ProgramID             string        `json:"program_id"                        yaml:"program_id"`
	InterestRate          string        `json:"interest_rate"                     yaml:"interest_rate"`
	IdempotencyKey        *string       `json:"idempotency_key"                   yaml:"idempotency_key"`
	CreatedAt             time.Time     `json:"created_at"                        yaml:"created_at"`
	Type                  string        `json:"type"                              yaml:"type"`
}

// Transaction

// TransactionSourceCategory classifies what created a Transaction.
type TransactionSourceCategory string

const (
	TransactionSourceCategoryACHTransferIntention TransactionSourceCategory = "ach_transfer_intention"
	TransactionSourceCategoryACHTransferReturn    TransactionSourceCategory = "ach_transfer_return"
	TransactionSourceCategoryCardSettlement       TransactionSourceCategory = "card_settlement"
	TransactionSourceCategoryCardRefund           TransactionSourceCategory = "card_refund"
	TransactionSourceCategoryInboundACHTransfer   TransactionSourceCategory = "inbound_ach_transfer"
	TransactionSourceCategoryInterestPayment      TransactionSourceCategory = "interest_payment"
	TransactionSourceCategoryFeePayment           TransactionSourceCategory = "fee_payment"
	TransactionSourceCategoryOther                TransactionSourceCategory = "other"
)

// TransactionSource describes the object that created a Transaction.
type TransactionSource struct {
	Category TransactionSourceCategory `json:"category" yaml:"category"`
}

// Transaction is a posted movement of money on an Account.
type Transaction struct {
	ID          string            `json:"id"          yaml:"id"`
	AccountID   string            `json:"account_id"  yaml:"account_id"`
	Amount      int64             `json:"amount"      yaml:"amount"`
	Currency    string            `json:"currency"    yaml:"currency"`
	Description string            `json:"description" yaml:"description"`
	RouteID     *string           `json:"route_id"    yaml:"route_id"`
	RouteType   *string           `json:"route_type"  yaml:"route_type"`
	Source      TransactionSource `json:"source"      yaml:"source"`
	CreatedAt   time.Time         `json:"created_at"  yaml:"created_at"`
	Type        string            `json:"type"        yaml:"type"`
}

// Event

// EventCategory names the kind of change an Event records.
type EventCategory string

const (
	EventCategoryAccountCreated         EventCategory = "account.created"
	EventCategoryAccountUpdated         EventCategory = "account.updated"
	EventCategoryACHTransferCreated     EventCategory = "ach_transfer.created"
	EventCategoryACHTransferUpdated     EventCategory = "ach_transfer.updated"
	EventCategoryCardCreated            EventCategory = "card.created"
	EventCategoryCardUpdated            EventCategory = "card.updated"
	EventCategoryCardPaymentCreated     EventCategory = "card_payment.created"
	EventCategoryCardPaymentUpdated     EventCategory = "card_payment.updated"
	EventCategoryTransactionCreated     EventCategory = "transaction.created"
	EventCategoryOAuthConnectionCreated EventCategory = "oauth_connection.created"
)

// Event records a change to another object.
type Event struct {
	ID                   string        `json:"id"                     yaml:"id"`
	AssociatedObjectID   string        `json:"associated_object_id"   yaml:"associated_object_id"`
	AssociatedObjectType string        `json:"associated_object_type" yaml:"associated_object_type"`
	Category             EventCategory `json:"category"               yaml:"category"`
	CreatedAt            time.Time     `json:"created_at"             yaml:"created_at"`
	Type                 string        `json:"type"                   yaml:"type"`
}

// Card payment

// CardPaymentState holds running totals across a card payment's lifecycle.
type CardPaymentState struct {
	AuthorizedAmount    int64 `json:"authorized_amount"     yaml:"authorized_amount"`
	IncrementedAmount   int64 `json:"incremented_amount"    yaml:"incremented_amount"`
	ReversedAmount      int64 `json:"reversed_amount"       yaml:"reversed_amount"`
	SettledAmount       int64 `json:"settled_amount"        yaml:"settled_amount"`
	FuelConfirmedAmount int64 `json:"fuel_confirmed_amount" yaml:"fuel_confirmed_amount"`
}

// CardPaymentElement is one step of a card payment (authorization, settlement, ...).
type CardPaymentElement struct {
	Category  string    `json:"category"   yaml:"category"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// CardPayment groups the authorizations and settlements of one card purchase.
type CardPayment struct {
	ID                   string               `json:"id"                      yaml:"id"`
	AccountID            string               `json:"account_id"              yaml:"account_id"`
	CardID               string               `json:"card_id"                 yaml:"card_id"`
	PhysicalCardID       *string              `json:"physical_card_id"        yaml:"physical_card_id"`
	DigitalWalletTokenID *string              `json:"digital_wallet_token_id" yaml:"digital_wallet_token_id"`
	State                CardPaymentState     `json:"state"                   yaml:"state"`
	Elements             []CardPaymentElement `json:"elements"                yaml:"elements"`
	CreatedAt            time.Time            `json:"created_at"              yaml:"created_at"`
	Type                 string               `json:"type"                    yaml:"type"`
}

// Card

// CardStatus is the lifecycle state of a Card.
type CardStatus string

const (
	CardStatusActive   CardStatus = "active"
	CardStatusDisabled CardStatus = "disabled"
	CardStatusCanceled CardStatus = "canceled"
)

// Card is a payment card issued against an Account.
type Card struct {
	ID              string     `json:"id"               yaml:"id"`
	AccountID       string     `json:"account_id"       yaml:"account_id"`
	Description     *string    `json:"description"      yaml:"description"`
	Last4           string     `json:"last4"            yaml:"last4"`
	Status          CardStatus `json:"status"           yaml:"status"`
	ExpirationMonth int        `json:"expiration_month" yaml:"expiration_month"`
	ExpirationYear  int        `json:"expiration_year"  yaml:"expiration_year"`
	IdempotencyKey  *string    `json:"idempotency_key"  yaml:"idempotency_key"`
	CreatedAt       time.Time  `json:"created_at"       yaml:"created_at"`
	Type            string     `json:"type"             yaml:"type"`
}

// ACH transfer

// ACHTransferStatus is the lifecycle state of an ACHTransfer.
type ACHTransferStatus string

const (
	ACHTransferStatusPendingApproval ACHTransferStatus = "pending_approval"
	ACHTransferStatusCanceled        ACHTransferStatus = "canceled"
	ACHTransferStatusPendingSubmit   ACHTransferStatus = "pending_submission"
	ACHTransferStatusSubmitted       ACHTransferStatus = "submitted"
	ACHTransferStatusReturned        ACHTransferStatus = "returned"
	ACHTransferStatusRejected        ACHTransferStatus = "rejected"
)

// ACHFunding selects the kind of counterparty account.
type ACHFunding string

const (
	ACHFundingChecking ACHFunding = "checking"
	ACHFundingSavings  ACHFunding = "savings"
)

// ACHTransfer moves money to or from an external account over ACH.
type ACHTransfer struct {
	ID                  string            `json:"id"                    yaml:"id"`
	AccountID           string            `json:"account_id"            yaml:"account_id"`
	Amount              int64             `json:"amount"                yaml:"amount"`
	Currency            string            `json:"currency"              yaml:"currency"`
	AccountNumber       string            `json:"account_number"        yaml:"account_number"`
	RoutingNumber       string            `json:"routing_number"        yaml:"routing_number"`
	ExternalAccountID   *string           `json:"external_account_id"   yaml:"external_account_id"`
	StatementDescriptor string            `json:"statement_descriptor"  yaml:"statement_descriptor"`
	Status              ACHTransferStatus `json:"status"                yaml:"status"`
	IdempotencyKey      *string           `json:"idempotency_key"       yaml:"idempotency_key"`
	CreatedAt           time.Time         `json:"created_at"            yaml:"created_at"`
	Type                string            `json:"type"                  yaml:"type"`
}

// OAuth token

// OAuthGrantType selects how an OAuth token is obtained.
type OAuthGrantType string

const (
	OAuthGrantTypeAuthorizationCode OAuthGrantType = "authorization_code"
	OAuthGrantTypeProductionToken   OAuthGrantType = "production_token"
)

// OAuthToken is an access token issued to an OAuth application.
type OAuthToken struct {
	AccessToken string `json:"access_token" yaml:"access_token"`
	TokenType   string `json:"token_type"   yaml:"token_type"`
	GroupID     string `json:"group_id"     yaml:"group_id"`
	Type        string `json:"type"         yaml:"type"`
}
