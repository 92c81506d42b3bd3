package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	internalhttp "github.com/fivetwenty-io/bankapi-go/internal/http"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// operation is a bit set of the calls an endpoint accepts.
type operation uint8

const (
	opRetrieve operation = 1 << iota
	opList
	opCreate
)

func (o operation) String() string {
	switch o {
	case opRetrieve:
		return "retrieve"
	case opList:
		return "list"
	case opCreate:
		return "create"
	default:
		return "unknown"
	}
}

// endpoint declares one resource: its paths, the calls it supports and the
// convenience-to-wire key tables of its list and create parameters.
type endpoint struct {
	name       string
	collection string
	// item holds a single {placeholder} replaced by the escaped id.
	item       string
	ops        operation
	listKeys   bankapi.KeyMap
	createKeys bankapi.KeyMap
}

func (e endpoint) supports(op operation) bool {
	return e.ops&op != 0
}

func (e endpoint) itemPath(id string) string {
	start := strings.Index(e.item, "{")
	end := strings.Index(e.item, "}")

	if start < 0 || end < start {
		return e.item + "/" + url.PathEscape(id)
	}

	return e.item[:start] + url.PathEscape(id) + e.item[end+1:]
}

func (e endpoint) operationName(op operation) string {
	return e.name + "." + op.String()
}

// rawService issues requests with normalized parameters and hands back the
// undecoded response.
type rawService[T any] struct {
	httpClient *internalhttp.Client
	endpoint   endpoint
}

func newRawService[T any](httpClient *internalhttp.Client, ep endpoint) *rawService[T] {
	return &rawService[T]{
		httpClient: httpClient,
		endpoint:   ep,
	}
}

// Retrieve implements bankapi.RawClient.Retrieve.
func (s *rawService[T]) Retrieve(ctx context.Context, id string, opts ...bankapi.RequestOption) (*bankapi.Response[T], error) {
	if id == "" {
		return nil, fmt.Errorf("retrieving %s: %w", s.endpoint.name, bankapi.ErrIDRequired)
	}

	resp, err := s.call(ctx, opRetrieve, http.MethodGet, s.endpoint.itemPath(id), nil, nil, opts)

	return wrapResponse[T](resp), err
}

// List implements bankapi.RawClient.List.
func (s *rawService[T]) List(ctx context.Context, params bankapi.Params, opts ...bankapi.RequestOption) (*bankapi.Response[bankapi.Page[T]], error) {
	resp, err := s.call(ctx, opList, http.MethodGet, s.endpoint.collection, params.ToValues(), nil, opts)

	return wrapResponse[bankapi.Page[T]](resp), err
}

// Create implements bankapi.RawClient.Create.
func (s *rawService[T]) Create(ctx context.Context, params bankapi.Params, opts ...bankapi.RequestOption) (*bankapi.Response[T], error) {
	if params == nil {
		params = bankapi.NewParams()
	}

	resp, err := s.call(ctx, opCreate, http.MethodPost, s.endpoint.collection, nil, params, opts)

	return wrapResponse[T](resp), err
}

func (s *rawService[T]) call(
	ctx context.Context,
	op operation,
	method, path string,
	query url.Values,
	body any,
	opts []bankapi.RequestOption,
) (*internalhttp.Response, error) {
	if !s.endpoint.supports(op) {
		return nil, fmt.Errorf("%s %s: %w", op, s.endpoint.name, bankapi.ErrOperationNotSupported)
	}

	options := bankapi.NewRequestOptions(opts...)

	req := &internalhttp.Request{
		Method:    method,
		Path:      path,
		Operation: s.endpoint.operationName(op),
		Query:     query,
		Body:      body,
		Headers:   options.Headers,
		Timeout:   options.Timeout,
	}

	resp, err := s.httpClient.Do(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("%s %s: %w", op, s.endpoint.name, err)
	}

	return resp, nil
}

func wrapResponse[T any](resp *internalhttp.Response) *bankapi.Response[T] {
	if resp == nil {
		return nil
	}

	return bankapi.NewResponse[T](resp.StatusCode, resp.Headers, resp.Body)
}

// service binds typed parameter structs over rawService and decodes eagerly.
// L and C are the list and create parameter types.
type service[T any, L, C bankapi.Fielder] struct {
	raw *rawService[T]
}

func newService[T any, L, C bankapi.Fielder](httpClient *internalhttp.Client, ep endpoint) *service[T, L, C] {
	return &service[T, L, C]{raw: newRawService[T](httpClient, ep)}
}

// WithRawResponse returns the undecoded variant of this service.
func (s *service[T, L, C]) WithRawResponse() bankapi.RawClient[T] {
	return s.raw
}

// Retrieve fetches one record by id.
func (s *service[T, L, C]) Retrieve(ctx context.Context, id string, opts ...bankapi.RequestOption) (*T, error) {
	resp, err := s.raw.Retrieve(ctx, id, opts...)
	if err != nil {
		return nil, err
	}

	return resp.Parse()
}

// List fetches one page of records.
func (s *service[T, L, C]) List(ctx context.Context, params L, opts ...bankapi.RequestOption) (*bankapi.Page[T], error) {
	return s.listPage(ctx, s.raw.endpoint.listKeys.Normalize(params), opts)
}

// ListPager fetches the first page and returns a Pager that re-issues the
// same list call for each following cursor.
func (s *service[T, L, C]) ListPager(ctx context.Context, params L, opts ...bankapi.RequestOption) (*bankapi.Pager[T], error) {
	normalized := s.raw.endpoint.listKeys.Normalize(params)

	first, err := s.listPage(ctx, normalized, opts)
	if err != nil {
		return nil, err
	}

	return bankapi.NewPager(ctx, first, s.fetcher(normalized, opts)), nil
}

// ListAutoPaging returns an iterator over every record matching params.
// Nothing is fetched until the iterator is first advanced.
func (s *service[T, L, C]) ListAutoPaging(ctx context.Context, params L, opts ...bankapi.RequestOption) *bankapi.PaginationIterator[T] {
	normalized := s.raw.endpoint.listKeys.Normalize(params)

	return bankapi.NewPaginationIterator(ctx, s.fetcher(normalized, opts))
}

// Create creates a record.
func (s *service[T, L, C]) Create(ctx context.Context, params C, opts ...bankapi.RequestOption) (*T, error) {
	resp, err := s.raw.Create(ctx, s.raw.endpoint.createKeys.Normalize(params), opts...)
	if err != nil {
		return nil, err
	}

	return resp.Parse()
}

func (s *service[T, L, C]) listPage(ctx context.Context, params bankapi.Params, opts []bankapi.RequestOption) (*bankapi.Page[T], error) {
	resp, err := s.raw.List(ctx, params, opts...)
	if err != nil {
		return nil, err
	}

	return resp.Parse()
}

// fetcher keeps the original filters and options and only swaps the cursor.
// An empty cursor replays the original call unchanged.
func (s *service[T, L, C]) fetcher(normalized bankapi.Params, opts []bankapi.RequestOption) bankapi.PageFetcher[T] {
	cursorKey := s.raw.endpoint.listKeys.WireName(bankapi.ParamCursor)

	return func(ctx context.Context, cursor string) (*bankapi.Page[T], error) {
		params := normalized.Clone()
		if cursor != "" {
			params = params.With(cursorKey, cursor)
		}

		return s.listPage(ctx, params, opts)
	}
}
