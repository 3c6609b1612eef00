package models

import "time"

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Question   string            `json:"question" binding:"required"`
	SessionID  string            `json:"session_id,omitempty"`
	Filter     map[string]string `json:"filter,omitempty"`
	Collection string            `json:"collection,omitempty"`
}

// QueryResult is the data payload answered by POST /query.
type QueryResult struct {
	Answer        string         `json:"answer"`
	Sources       string         `json:"sources"`
	ReturnedState map[string]any `json:"returned_state,omitempty"`
}

// IngestRequest is the body of POST /collection/:name/ingest.
type IngestRequest struct {
	Path     string            `json:"path" binding:"required"`
	Loader   string            `json:"loader,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Version  string            `json:"version,omitempty"`
}

// UserSpec carries user fields for create/update. Nil-able fields are left
// untouched on update.
type UserSpec struct {
	Username string         `json:"username"`
	Email    string         `json:"email"`
	FullName string         `json:"full_name"`
	Features map[string]any `json:"features,omitempty"`
	Policy   map[string]any `json:"policy,omitempty"`
}

// CollectionSpec carries document collection fields for create/update.
type CollectionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	OwnerName   string         `json:"owner_name,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	DBArgs      map[string]any `json:"db_args,omitempty"`
	DBCategory  string         `json:"db_category,omitempty"`
}

// UserFilters narrows user listing.
type UserFilters struct {
	Email     string
	FullName  string
	NamesOnly bool
}

// CollectionFilters narrows collection listing.
type CollectionFilters struct {
	Owner     string
	Metadata  map[string]string
	NamesOnly bool
}

// SessionFilters narrows chat session listing. Sessions are ordered by last
// update, newest first.
type SessionFilters struct {
	Username     string
	CreatedAfter *time.Time
	Last         int
}
