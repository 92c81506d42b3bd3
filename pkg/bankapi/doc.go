// Package bankapi provides types, interfaces, and helpers for working with the
// banking platform REST API.
//
// # Overview
//
// The bankapi package defines the resource records (Account, Transaction,
// Event, CardPayment, Card, ACHTransfer, OAuthToken), the typed parameter
// structs for each endpoint, and the interfaces for resource clients. A
// concrete implementation is provided by the bankclient package, which wires
// configuration, transport, and authentication.
//
// Getting a client
//
//	cli, err := bankclient.New(&bankapi.Config{APIKey: os.Getenv("BANKAPI_API_KEY")})
//	if err != nil { log.Fatal(err) }
//
//	page, err := cli.Transactions().List(ctx, &bankapi.TransactionListParams{
//	  AccountID: bankapi.Some("account_123"),
//	  CreatedAt: bankapi.TimeRange{After: bankapi.Some(since)},
//	})
//
// # Optional parameters
//
// Every optional field is an Opt[T]; the zero value is absent and is never
// sent. Range filters (TimeRange) and enum filters (In) are absent when empty.
// KeyMap.Normalize turns a parameter struct into a Params mapping keyed by
// wire names, and Params.ToValues serializes it for a query string.
//
// # Pagination
//
// List endpoints return a Page with an opaque next cursor. Pager walks pages
// forward, and PaginationIterator walks records:
//
//	it := cli.Events().ListAutoPaging(ctx, &bankapi.EventListParams{})
//	for it.HasNext() {
//	  event, err := it.Next()
//	  if err != nil { break }
//	  _ = event
//	}
//
// # Raw responses
//
// WithRawResponse returns a client that takes already-normalized Params and
// returns a Response whose body is decoded only when Parse is called.
//
// # Errors
//
// Failures are *ConnectionError, *NotFoundError, *ValidationError or
// *APIError; IsNotFound, IsValidation and IsConnection branch on them.
// Nothing is retried unless Config.RetryMax is set.
package bankapi
