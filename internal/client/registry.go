package client

import (
	"maps"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// Shared convenience-to-wire names. Keys absent from a table pass through
// verbatim (cursor, limit, status, category, name, amount, ...).
var (
	createdAtKeys = bankapi.KeyMap{
		bankapi.ParamCreatedAt: "created_at",
	}
	idempotencyKeys = bankapi.KeyMap{
		bankapi.ParamIdempotencyKey: "idempotency_key",
	}
)

func mergeKeys(tables ...bankapi.KeyMap) bankapi.KeyMap {
	out := bankapi.KeyMap{}

	for _, table := range tables {
		maps.Copy(out, table)
	}

	return out
}

// Endpoint registrations, one per resource.
var (
	accountsEndpoint = endpoint{
		name:       "accounts",
		collection: "/accounts",
		item:       "/accounts/{account_id}",
		ops:        opRetrieve | opList | opCreate,
		listKeys: mergeKeys(createdAtKeys, idempotencyKeys, bankapi.KeyMap{
			bankapi.ParamEntityID:              "entity_id",
			bankapi.ParamInformationalEntityID: "informational_entity_id",
			bankapi.ParamProgramID:             "program_id",
		}),
		createKeys: bankapi.KeyMap{
			bankapi.ParamEntityID:              "entity_id",
			bankapi.ParamInformationalEntityID: "informational_entity_id",
			bankapi.ParamProgramID:             "program_id",
		},
	}

	transactionsEndpoint = endpoint{
		name:       "transactions",
		collection: "/transactions",
		item:       "/transactions/{transaction_id}",
		ops:        opRetrieve | opList,
		listKeys: mergeKeys(createdAtKeys, bankapi.KeyMap{
			bankapi.ParamAccountID: "account_id",
			bankapi.ParamRouteID:   "route_id",
		}),
	}

	eventsEndpoint = endpoint{
		name:       "events",
		collection: "/events",
		item:       "/events/{event_id}",
		ops:        opRetrieve | opList,
		listKeys: mergeKeys(createdAtKeys, bankapi.KeyMap{
			bankapi.ParamAssociatedObjectID: "associated_object_id",
		}),
	}

	cardPaymentsEndpoint = endpoint{
		name:       "card_payments",
		collection: "/card_payments",
		item:       "/card_payments/{card_payment_id}",
		ops:        opRetrieve | opList,
		listKeys: mergeKeys(createdAtKeys, bankapi.KeyMap{
			bankapi.ParamAccountID: "account_id",
			bankapi.ParamCardID:    "card_id",
		}),
	}

	cardsEndpoint = endpoint{
		name:       "cards",
		collection: "/cards",
		item:       "/cards/{card_id}",
		ops:        opRetrieve | opList | opCreate,
		listKeys: mergeKeys(createdAtKeys, idempotencyKeys, bankapi.KeyMap{
			bankapi.ParamAccountID: "account_id",
		}),
		createKeys: bankapi.KeyMap{
			bankapi.ParamAccountID: "account_id",
			bankapi.ParamEntityID:  "entity_id",
		},
	}

	achTransfersEndpoint = endpoint{
		name:       "ach_transfers",
		collection: "/ach_transfers",
		item:       "/ach_transfers/{ach_transfer_id}",
		ops:        opRetrieve | opList | opCreate,
		listKeys: mergeKeys(createdAtKeys, idempotencyKeys, bankapi.KeyMap{
			bankapi.ParamAccountID:         "account_id",
			bankapi.ParamExternalAccountID: "external_account_id",
		}),
		createKeys: bankapi.KeyMap{
			bankapi.ParamAccountID:           "account_id",
			bankapi.ParamAccountNumber:       "account_number",
			bankapi.ParamRoutingNumber:       "routing_number",
			bankapi.ParamExternalAccountID:   "external_account_id",
			bankapi.ParamStatementDescriptor: "statement_descriptor",
			bankapi.ParamIndividualName:      "individual_name",
			bankapi.ParamCompanyName:         "company_name",
			bankapi.ParamRequireApproval:     "require_approval",
		},
	}

	oauthTokensEndpoint = endpoint{
		name:       "oauth_tokens",
		collection: "/oauth/tokens",
		ops:        opCreate,
		createKeys: bankapi.KeyMap{
			bankapi.ParamGrantType:       "grant_type",
			bankapi.ParamClientID:        "client_id",
			bankapi.ParamClientSecret:    "client_secret",
			bankapi.ParamProductionToken: "production_token",
		},
	}
)
