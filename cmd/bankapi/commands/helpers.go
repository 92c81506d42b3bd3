package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	defaultJSONIndent = 2

	// autoIdempotencyKey asks the CLI to generate a random key.
	autoIdempotencyKey = "auto"
)

// newVerboseLogger builds the logger used under --verbose.
var newVerboseLogger = zap.NewDevelopment

// createClient builds an API client from flags, environment and config file.
// The returned func flushes the verbose logger and must be called once the
// command is done with the client.
func createClient() (bankapi.Client, func(), error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, nil, constants.ErrNoAPIKeyConfigured
	}

	config := &bankapi.Config{
		APIKey:      apiKey,
		Environment: bankapi.Environment(viper.GetString("environment")),
		BaseURL:     viper.GetString("base_url"),
		RetryMax:    viper.GetInt("retries"),
	}

	closeClient := func() {}

	if viper.GetBool("verbose") {
		logger, err := newVerboseLogger()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create logger: %w", err)
		}

		closeClient = func() { _ = logger.Sync() }
		config.Logger = bankapi.NewZapLogger(logger)
		config.Debug = true
	}

	client, err := bankclient.New(config)
	if err != nil {
		closeClient()

		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, closeClient, nil
}

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	format := viper.GetString("output")

	switch format {
	case "", OutputFormatTable:
		return OutputFormatTable, nil
	case OutputFormatJSON, OutputFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

// printOutput writes data as json or yaml, or hands a table to render.
func printOutput(w io.Writer, data any, render func(table *tablewriter.Table)) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(data)
	default:
		table := tablewriter.NewWriter(w)
		render(table)

		err = table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// printDetails renders a single record as a property/value table.
func printDetails(w io.Writer, data any, rows [][2]string) error {
	return printOutput(w, data, func(table *tablewriter.Table) {
		table.Header("Property", "Value")

		for _, row := range rows {
			_ = table.Append(row[0], row[1])
		}
	})
}

// listFlags are shared by every list command.
type listFlags struct {
	limit  int
	cursor string
	all    bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.limit, "limit", "l", constants.DefaultCLIPageLimit, "records per page")
	cmd.Flags().StringVar(&f.cursor, "cursor", "", "cursor returned by a previous page")
	cmd.Flags().BoolVarP(&f.all, "all", "A", false, "fetch every page")
}

func (f *listFlags) options() bankapi.ListOptions {
	opts := bankapi.ListOptions{}

	if f.limit > 0 {
		opts.Limit = bankapi.Some(min(f.limit, constants.MaxPageLimit))
	}

	if f.cursor != "" {
		opts.Cursor = bankapi.Some(f.cursor)
	}

	return opts
}

// listResult is what list commands print in json and yaml output.
type listResult[T any] struct {
	Data       []T     `json:"data"        yaml:"data"`
	NextCursor *string `json:"next_cursor" yaml:"next_cursor"`
}

// fetchList returns one page, or every record when --all is set.
func fetchList[T any](
	ctx context.Context,
	flags *listFlags,
	page func(ctx context.Context) (*bankapi.Page[T], error),
	auto func(ctx context.Context) *bankapi.PaginationIterator[T],
) (*listResult[T], error) {
	if flags.all {
		records, err := auto(ctx).All()
		if err != nil {
			return nil, err
		}

		return &listResult[T]{Data: records}, nil
	}

	result, err := page(ctx)
	if err != nil {
		return nil, err
	}

	return &listResult[T]{Data: result.Data, NextCursor: result.NextCursor}, nil
}

// printList renders a list result. In table output the next cursor, if any,
// follows the table.
func printList[T any](cmd *cobra.Command, result *listResult[T], empty string, header []string, row func(T) []string) error {
	w := cmd.OutOrStdout()

	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format == OutputFormatTable && len(result.Data) == 0 {
		_, _ = fmt.Fprintln(w, empty)

		return nil
	}

	err = printOutput(w, result, func(table *tablewriter.Table) {
		headers := make([]any, len(header))
		for i, h := range header {
			headers[i] = h
		}

		table.Header(headers...)

		for _, record := range result.Data {
			_ = table.Append(row(record))
		}
	})
	if err != nil {
		return err
	}

	if format == OutputFormatTable && result.NextCursor != nil && *result.NextCursor != "" {
		_, _ = fmt.Fprintf(w, "Next cursor: %s\n", *result.NextCursor)
	}

	return nil
}

// createdAtFlags add --created-after and --created-before.
type createdAtFlags struct {
	after  string
	before string
}

func (f *createdAtFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.after, "created-after", "", "only records created after this RFC 3339 time")
	cmd.Flags().StringVar(&f.before, "created-before", "", "only records created before this RFC 3339 time")
}

func (f *createdAtFlags) timeRange() (bankapi.TimeRange, error) {
	var r bankapi.TimeRange

	if f.after != "" {
		after, err := parseTimestamp(f.after)
		if err != nil {
			return r, err
		}

		r.After = bankapi.Some(after)
	}

	if f.before != "" {
		before, err := parseTimestamp(f.before)
		if err != nil {
			return r, err
		}

		r.Before = bankapi.Some(before)
	}

	return r, nil
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidTimestamp, value)
	}

	return t, nil
}

// enumFilter converts flag values into an enum filter. No values means no filter.
func enumFilter[E ~string](values []string) bankapi.EnumFilter[E] {
	if len(values) == 0 {
		return bankapi.EnumFilter[E]{}
	}

	typed := make([]E, len(values))
	for i, v := range values {
		typed[i] = E(v)
	}

	return bankapi.In(typed...)
}

// optString is absent for an empty flag value.
func optString(value string) bankapi.Opt[string] {
	if value == "" {
		return bankapi.None[string]()
	}

	return bankapi.Some(value)
}

// resolveIdempotencyKey resolves the --idempotency-key flag. "auto" generates a key.
func resolveIdempotencyKey(value string) string {
	if value == autoIdempotencyKey {
		return uuid.NewString()
	}

	return value
}

// requestOptions sends the idempotency key, if any, as a header.
func requestOptions(key string) []bankapi.RequestOption {
	if key == "" {
		return nil
	}

	return []bankapi.RequestOption{bankapi.WithIdempotencyKey(key)}
}

func formatOptional(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(constants.TimestampFormat)
}

// formatAmount renders minor units, e.g. 1250 USD as "12.50 USD".
func formatAmount(amount int64, currency string) string {
	sign := ""
	magnitude := uint64(amount)

	if amount < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	return strings.TrimSpace(fmt.Sprintf("%s%d.%02d %s", sign, magnitude/100, magnitude%100, currency))
}

func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}
