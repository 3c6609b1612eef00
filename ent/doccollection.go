// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yaronha/demo-llm-agent/ent/doccollection"
	"github.com/yaronha/demo-llm-agent/ent/user"
)

// DocCollection is the model entity for the DocCollection schema.
type DocCollection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// OwnerName holds the value of the "owner_name" field.
	OwnerName *string `json:"owner_name,omitempty"`
	// Free-form collection metadata (key/value)
	Meta map[string]interface{} `json:"meta,omitempty"`
	// Backend-specific connection arguments
	DbArgs map[string]interface{} `json:"db_args,omitempty"`
	// Backend category, e.g. vector, sql, graph
	DbCategory string `json:"db_category,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocCollectionQuery when eager-loading is set.
	Edges        DocCollectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocCollectionEdges holds the relations/edges for other nodes in the graph.
type DocCollectionEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocCollectionEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocCollection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doccollection.FieldMeta, doccollection.FieldDbArgs:
			values[i] = new([]byte)
		case doccollection.FieldID, doccollection.FieldDescription, doccollection.FieldOwnerName, doccollection.FieldDbCategory:
			values[i] = new(sql.NullString)
		case doccollection.FieldCreatedAt, doccollection.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocCollection fields.
func (_m *DocCollection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doccollection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case doccollection.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case doccollection.FieldOwnerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_name", values[i])
			} else if value.Valid {
				_m.OwnerName = new(string)
				*_m.OwnerName = value.String
			}
		case doccollection.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		case doccollection.FieldDbArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field db_args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DbArgs); err != nil {
					return fmt.Errorf("unmarshal field db_args: %w", err)
				}
			}
		case doccollection.FieldDbCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field db_category", values[i])
			} else if value.Valid {
				_m.DbCategory = value.String
			}
		case doccollection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doccollection.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocCollection.
// This includes values selected through modifiers, order, etc.
func (_m *DocCollection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the DocCollection entity.
func (_m *DocCollection) QueryOwner() *UserQuery {
	return NewDocCollectionClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this DocCollection.
// Note that you need to call DocCollection.Unwrap() before calling this method if this DocCollection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocCollection) Update() *DocCollectionUpdateOne {
	return NewDocCollectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocCollection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocCollection) Unwrap() *DocCollection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocCollection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocCollection) String() string {
	var builder strings.Builder
	builder.WriteString("DocCollection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.OwnerName; v != nil {
		builder.WriteString("owner_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteString(", ")
	builder.WriteString("db_args=")
	builder.WriteString(fmt.Sprintf("%v", _m.DbArgs))
	builder.WriteString(", ")
	builder.WriteString("db_category=")
	builder.WriteString(_m.DbCategory)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocCollections is a parsable slice of DocCollection.
type DocCollections []*DocCollection
