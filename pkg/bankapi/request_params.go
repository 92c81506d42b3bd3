package bankapi

// Convenience parameter names. The wire names live in each endpoint's KeyMap.
const (
	ParamCursor                = "cursor"
	ParamLimit                 = "limit"
	ParamCreatedAt             = "createdAt"
	ParamIdempotencyKey        = "idempotencyKey"
	ParamAccountID             = "accountID"
	ParamEntityID              = "entityID"
	ParamInformationalEntityID = "informationalEntityID"
	ParamProgramID             = "programID"
	ParamStatus                = "status"
	ParamRouteID               = "routeID"
	ParamCategory              = "category"
	ParamAssociatedObjectID    = "associatedObjectID"
	ParamCardID                = "cardID"
	ParamExternalAccountID     = "externalAccountID"
	ParamName                  = "name"
	ParamDescription           = "description"
	ParamAmount                = "amount"
	ParamAccountNumber         = "accountNumber"
	ParamRoutingNumber         = "routingNumber"
	ParamStatementDescriptor   = "statementDescriptor"
	ParamIndividualName        = "individualName"
	ParamCompanyName           = "companyName"
	ParamRequireApproval       = "requireApproval"
	ParamFunding               = "funding"
	ParamGrantType             = "grantType"
	ParamClientID              = "clientID"
	ParamClientSecret          = "clientSecret"
	ParamCode                  = "code"
	ParamProductionToken       = "productionToken"
)

// ListOptions are accepted by every list endpoint. When Limit is absent the
// server applies its default page size.
type ListOptions struct {
	Cursor Opt[string]
	Limit  Opt[int]
}

func (o ListOptions) fields() []Field {
	return []Field{
		NewField(ParamCursor, o.Cursor),
		NewField(ParamLimit, o.Limit),
	}
}

// AccountListParams filters GET /accounts.
type AccountListParams struct {
	ListOptions

	EntityID              Opt[string]
	InformationalEntityID Opt[string]
	ProgramID             Opt[string]
	Status                EnumFilter[AccountStatus]
	CreatedAt             TimeRange
	IdempotencyKey        Opt[string]
}

// Fields implements Fielder.
func (p *AccountListParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return append(p.ListOptions.fields(),
		NewField(ParamEntityID, p.EntityID),
		NewField(ParamInformationalEntityID, p.InformationalEntityID),
		NewField(ParamProgramID, p.ProgramID),
		NewField(ParamStatus, p.Status),
		NewField(ParamCreatedAt, p.CreatedAt),
		NewField(ParamIdempotencyKey, p.IdempotencyKey),
	)
}

// AccountCreateParams is the body of POST /accounts.
type AccountCreateParams struct {
	Name                  string
	EntityID              Opt[string]
	InformationalEntityID Opt[string]
	ProgramID             Opt[string]
}

// Fields implements Fielder.
func (p *AccountCreateParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return []Field{
		NewField(ParamName, Some(p.Name)),
		NewField(ParamEntityID, p.EntityID),
		NewField(ParamInformationalEntityID, p.InformationalEntityID),
		NewField(ParamProgramID, p.ProgramID),
	}
}

// TransactionListParams filters GET /transactions.
type TransactionListParams struct {
	ListOptions

	AccountID Opt[string]
	RouteID   Opt[string]
	Category  EnumFilter[TransactionSourceCategory]
	CreatedAt TimeRange
}

// Fields implements Fielder.
func (p *TransactionListParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return append(p.ListOptions.fields(),
		NewField(ParamAccountID, p.AccountID),
		NewField(ParamRouteID, p.RouteID),
		NewField(ParamCategory, p.Category),
		NewField(ParamCreatedAt, p.CreatedAt),
	)
}

// EventListParams filters GET /events.
type EventListParams struct {
	ListOptions

	AssociatedObjectID Opt[string]
	Category           EnumFilter[EventCategory]
	CreatedAt          TimeRange
}

// Fields implements Fielder.
func (p *EventListParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return append(p.ListOptions.fields(),
		NewField(ParamAssociatedObjectID, p.AssociatedObjectID),
		NewField(ParamCategory, p.Category),
		NewField(ParamCreatedAt, p.CreatedAt),
	)
}

// CardPaymentListParams filters GET /card_payments.
type CardPaymentListParams struct {
	ListOptions

	AccountID Opt[string]
	CardID    Opt[string]
	CreatedAt TimeRange
}

// Fields implements Fielder.
func (p *CardPaymentListParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return append(p.ListOptions.fields(),
		NewField(ParamAccountID, p.AccountID),
		NewField(ParamCardID, p.CardID),
		NewField(ParamCreatedAt, p.CreatedAt),
	)
}

// CardListParams filters GET /cards.
type CardListParams struct {
	ListOptions

	AccountID      Opt[string]
	Status         EnumFilter[CardStatus]
	CreatedAt      TimeRange
	IdempotencyKey Opt[string]
}

// Fields implements Fielder.
func (p *CardListParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return append(p.ListOptions.fields(),
		NewField(ParamAccountID, p.AccountID),
		NewField(ParamStatus, p.Status),
		NewField(ParamCreatedAt, p.CreatedAt),
		NewField(ParamIdempotencyKey, p.IdempotencyKey),
	)
}

// CardCreateParams is the body of POST /cards.
type CardCreateParams struct {
	AccountID   string
	Description Opt[string]
	EntityID    Opt[string]
}

// Fields implements Fielder.
func (p *CardCreateParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return []Field{
		NewField(ParamAccountID, Some(p.AccountID)),
		NewField(ParamDescription, p.Description),
		NewField(ParamEntityID, p.EntityID),
	}
}

// ACHTransferListParams filters GET /ach_transfers.
type ACHTransferListParams struct {
	ListOptions

	AccountID         Opt[string]
	ExternalAccountID Opt[string]
	Status            EnumFilter[ACHTransferStatus]
	CreatedAt         TimeRange
	IdempotencyKey    Opt[string]
}

// Fields implements Fielder.
func (p *ACHTransferListParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return append(p.ListOptions.fields(),
		NewField(ParamAccountID, p.AccountID),
		NewField(ParamExternalAccountID, p.ExternalAccountID),
		NewField(ParamStatus, p.Status),
		NewField(ParamCreatedAt, p.CreatedAt),
		NewField(ParamIdempotencyKey, p.IdempotencyKey),
	)
}

// ACHTransferCreateParams is the body of POST /ach_transfers. Either
// ExternalAccountID or AccountNumber and RoutingNumber identify the counterparty.
type ACHTransferCreateParams struct {
	AccountID           string
	Amount              int64
	StatementDescriptor string
	AccountNumber       Opt[string]
	RoutingNumber       Opt[string]
	ExternalAccountID   Opt[string]
	IndividualName      Opt[string]
	CompanyName         Opt[string]
	RequireApproval     Opt[bool]
	Funding             Opt[ACHFunding]
}

// Fields implements Fielder.
func (p *ACHTransferCreateParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return []Field{
		NewField(ParamAccountID, Some(p.AccountID)),
		NewField(ParamAmount, Some(p.Amount)),
		NewField(ParamStatementDescriptor, Some(p.StatementDescriptor)),
		NewField(ParamAccountNumber, p.AccountNumber),
		NewField(ParamRoutingNumber, p.RoutingNumber),
		NewField(ParamExternalAccountID, p.ExternalAccountID),
		NewField(ParamIndividualName, p.IndividualName),
		NewField(ParamCompanyName, p.CompanyName),
		NewField(ParamRequireApproval, p.RequireApproval),
		NewField(ParamFunding, p.Funding),
	}
}

// OAuthTokenCreateParams is the body of POST /oauth/tokens.
type OAuthTokenCreateParams struct {
	GrantType       OAuthGrantType
	ClientID        Opt[string]
	ClientSecret    Opt[string]
	Code            Opt[string]
	ProductionToken Opt[string]
}

// Fields implements Fielder.
func (p *OAuthTokenCreateParams) Fields() []Field {
	if p == nil {
		return nil
	}

	return []Field{
		NewField(ParamGrantType, Some(p.GrantType)),
		NewField(ParamClientID, p.ClientID),
		NewField(ParamClientSecret, p.ClientSecret),
		NewField(ParamCode, p.Code),
		NewField(ParamProductionToken, p.ProductionToken),
	}
}
