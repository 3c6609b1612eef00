package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

var (
	listUserFilter   string
	listEmailFilter  string
	listOwnerFilter  string
	listMetaFilter   []string
	listSessionsUser string
	listSessionsLast int
	listCreatedAfter string
)

var listUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connectDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		users, err := services.NewUserService(db.Client).List(cmd.Context(), models.UserFilters{
			Email:    listEmailFilter,
			FullName: listUserFilter,
		})
		if err != nil {
			return err
		}

		table := newTable("USERNAME", "EMAIL", "FULL NAME")
		for _, u := range users {
			table.row(u.ID, u.Email, u.FullName)
		}
		return table.flush()
	},
}

var listCollectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List document collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		metadata, err := parseKeyValues(listMetaFilter)
		if err != nil {
			return err
		}
		db, err := connectDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		collections, err := services.NewCollectionService(db.Client).List(cmd.Context(), models.CollectionFilters{
			Owner:    listOwnerFilter,
			Metadata: metadata,
		})
		if err != nil {
			return err
		}

		table := newTable("NAME", "OWNER", "CATEGORY", "DESCRIPTION")
		for _, col := range collections {
			owner := ""
			if col.OwnerName != nil {
				owner = *col.OwnerName
			}
			table.row(col.ID, owner, col.DbCategory, col.Description)
		}
		return table.flush()
	},
}

var listSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List chat sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := models.SessionFilters{
			Username: listSessionsUser,
			Last:     listSessionsLast,
		}
		if listCreatedAfter != "" {
			after, err := time.Parse(time.RFC3339, listCreatedAfter)
			if err != nil {
				return fmt.Errorf("invalid created filter: %w", err)
			}
			filters.CreatedAfter = &after
		}

		db, err := connectDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		sessions, err := services.NewSessionService(db.Client).List(cmd.Context(), filters)
		if err != nil {
			return err
		}

		table := newTable("SESSION", "USER", "TURNS", "UPDATED")
		for _, sess := range sessions {
			table.row(sess.ID, sess.Username,
				fmt.Sprintf("%d", len(sess.History)),
				sess.UpdatedAt.Format(time.RFC3339))
		}
		return table.flush()
	},
}

func init() {
	listUsersCmd.Flags().StringVarP(&listUserFilter, "user", "u", "", "full name filter")
	listUsersCmd.Flags().StringVarP(&listEmailFilter, "email", "e", "", "email filter")

	listCollectionsCmd.Flags().StringVarP(&listOwnerFilter, "owner", "o", "", "owner filter")
	listCollectionsCmd.Flags().StringArrayVarP(&listMetaFilter, "metadata", "m", nil, "metadata key=value filter (repeatable)")

	listSessionsCmd.Flags().StringVarP(&listSessionsUser, "user", "u", "", "user name filter")
	listSessionsCmd.Flags().IntVarP(&listSessionsLast, "last", "l", 0, "last n sessions")
	listSessionsCmd.Flags().StringVarP(&listCreatedAfter, "created", "c", "", "created after date (RFC 3339)")
}

// table renders aligned columns with a colored header line.
type table struct {
	w *tabwriter.Writer
}

func newTable(headers ...string) *table {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, color.New(color.Bold).Sprint(strings.Join(headers, "\t")))
	return &table{w: w}
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	return t.w.Flush()
}
