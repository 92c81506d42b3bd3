package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "View events",
		Long:    "List and inspect events recorded for changes to other objects",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		list               listFlags
		createdAt          createdAtFlags
		associatedObjectID string
		categories         []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			created, err := createdAt.timeRange()
			if err != nil {
				return err
			}

			params := &bankapi.EventListParams{
				ListOptions:        list.options(),
				AssociatedObjectID: optString(associatedObjectID),
				Category:           enumFilter[bankapi.EventCategory](categories),
				CreatedAt:          created,
			}

			result, err := fetchList(cmd.Context(), &list,
				func(ctx context.Context) (*bankapi.Page[bankapi.Event], error) {
					return client.Events().List(ctx, params)
				},
				func(ctx context.Context) *bankapi.PaginationIterator[bankapi.Event] {
					return client.Events().ListAutoPaging(ctx, params)
				},
			)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			return printList(cmd, result, "No events found",
				[]string{"ID", "Category", "Object", "Object Type", "Created"},
				func(e bankapi.Event) []string {
					return []string{
						e.ID, string(e.Category), e.AssociatedObjectID,
						e.AssociatedObjectType, formatTime(e.CreatedAt),
					}
				})
		},
	}

	list.register(cmd)
	createdAt.register(cmd)
	cmd.Flags().StringVar(&associatedObjectID, "object-id", "", "filter by associated object")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "filter by category, e.g. account.created")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <event-id>",
		Short: "Get event details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			e, err := client.Events().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			return printDetails(cmd.OutOrStdout(), e, [][2]string{
				{"ID", e.ID},
				{"Category", string(e.Category)},
				{"Object ID", e.AssociatedObjectID},
				{"Object Type", e.AssociatedObjectType},
				{"Created", formatTime(e.CreatedAt)},
			})
		},
	}
}
