// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "annotations", Type: field.TypeJSON, Nullable: true},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_sessions_users_sessions",
				Columns:    []*schema.Column{ChatSessionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_username",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[9]},
			},
			{
				Name:    "chatsession_username_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[9], ChatSessionsColumns[8]},
			},
			{
				Name:    "chatsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[7]},
			},
		},
	}
	// DocCollectionsColumns holds the columns for the "doc_collections" table.
	DocCollectionsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "db_args", Type: field.TypeJSON, Nullable: true},
		{Name: "db_category", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_name", Type: field.TypeString, Nullable: true},
	}
	// DocCollectionsTable holds the schema information for the "doc_collections" table.
	DocCollectionsTable = &schema.Table{
		Name:       "doc_collections",
		Columns:    DocCollectionsColumns,
		PrimaryKey: []*schema.Column{DocCollectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doc_collections_users_collections",
				Columns:    []*schema.Column{DocCollectionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doccollection_owner_name",
				Unique:  false,
				Columns: []*schema.Column{DocCollectionsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "policy", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatSessionsTable,
		DocCollectionsTable,
		UsersTable,
	}
)

func init() {
	ChatSessionsTable.ForeignKeys[0].RefTable = UsersTable
	DocCollectionsTable.ForeignKeys[0].RefTable = UsersTable
}
