// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yaronha/demo-llm-agent/ent/doccollection"
	"github.com/yaronha/demo-llm-agent/ent/predicate"
	"github.com/yaronha/demo-llm-agent/ent/user"
)

// DocCollectionUpdate is the builder for updating DocCollection entities.
type DocCollectionUpdate struct {
	config
	hooks    []Hook
	mutation *DocCollectionMutation
}

// Where appends a list predicates to the DocCollectionUpdate builder.
func (_u *DocCollectionUpdate) Where(ps ...predicate.DocCollection) *DocCollectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *DocCollectionUpdate) SetDescription(v string) *DocCollectionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocCollectionUpdate) SetNillableDescription(v *string) *DocCollectionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocCollectionUpdate) ClearDescription() *DocCollectionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *DocCollectionUpdate) SetOwnerName(v string) *DocCollectionUpdate {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *DocCollectionUpdate) SetNillableOwnerName(v *string) *DocCollectionUpdate {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *DocCollectionUpdate) ClearOwnerName() *DocCollectionUpdate {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *DocCollectionUpdate) SetMeta(v map[string]interface{}) *DocCollectionUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *DocCollectionUpdate) ClearMeta() *DocCollectionUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// SetDbArgs sets the "db_args" field.
func (_u *DocCollectionUpdate) SetDbArgs(v map[string]interface{}) *DocCollectionUpdate {
	_u.mutation.SetDbArgs(v)
	return _u
}

// ClearDbArgs clears the value of the "db_args" field.
func (_u *DocCollectionUpdate) ClearDbArgs() *DocCollectionUpdate {
	_u.mutation.ClearDbArgs()
	return _u
}

// SetDbCategory sets the "db_category" field.
func (_u *DocCollectionUpdate) SetDbCategory(v string) *DocCollectionUpdate {
	_u.mutation.SetDbCategory(v)
	return _u
}

// SetNillableDbCategory sets the "db_category" field if the given value is not nil.
func (_u *DocCollectionUpdate) SetNillableDbCategory(v *string) *DocCollectionUpdate {
	if v != nil {
		_u.SetDbCategory(*v)
	}
	return _u
}

// ClearDbCategory clears the value of the "db_category" field.
func (_u *DocCollectionUpdate) ClearDbCategory() *DocCollectionUpdate {
	_u.mutation.ClearDbCategory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocCollectionUpdate) SetUpdatedAt(v time.Time) *DocCollectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *DocCollectionUpdate) SetOwnerID(id string) *DocCollectionUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *DocCollectionUpdate) SetNillableOwnerID(id *string) *DocCollectionUpdate {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *DocCollectionUpdate) SetOwner(v *User) *DocCollectionUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the DocCollectionMutation object of the builder.
func (_u *DocCollectionUpdate) Mutation() *DocCollectionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *DocCollectionUpdate) ClearOwner() *DocCollectionUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocCollectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocCollectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocCollectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocCollectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocCollectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doccollection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DocCollectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(doccollection.Table, doccollection.Columns, sqlgraph.NewFieldSpec(doccollection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(doccollection.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(doccollection.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(doccollection.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(doccollection.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.DbArgs(); ok {
		_spec.SetField(doccollection.FieldDbArgs, field.TypeJSON, value)
	}
	if _u.mutation.DbArgsCleared() {
		_spec.ClearField(doccollection.FieldDbArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.DbCategory(); ok {
		_spec.SetField(doccollection.FieldDbCategory, field.TypeString, value)
	}
	if _u.mutation.DbCategoryCleared() {
		_spec.ClearField(doccollection.FieldDbCategory, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doccollection.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doccollection.OwnerTable,
			Columns: []string{doccollection.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doccollection.OwnerTable,
			Columns: []string{doccollection.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doccollection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocCollectionUpdateOne is the builder for updating a single DocCollection entity.
type DocCollectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocCollectionMutation
}

// SetDescription sets the "description" field.
func (_u *DocCollectionUpdateOne) SetDescription(v string) *DocCollectionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocCollectionUpdateOne) SetNillableDescription(v *string) *DocCollectionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocCollectionUpdateOne) ClearDescription() *DocCollectionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetOwnerName sets the "owner_name" field.
func (_u *DocCollectionUpdateOne) SetOwnerName(v string) *DocCollectionUpdateOne {
	_u.mutation.SetOwnerName(v)
	return _u
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_u *DocCollectionUpdateOne) SetNillableOwnerName(v *string) *DocCollectionUpdateOne {
	if v != nil {
		_u.SetOwnerName(*v)
	}
	return _u
}

// ClearOwnerName clears the value of the "owner_name" field.
func (_u *DocCollectionUpdateOne) ClearOwnerName() *DocCollectionUpdateOne {
	_u.mutation.ClearOwnerName()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *DocCollectionUpdateOne) SetMeta(v map[string]interface{}) *DocCollectionUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *DocCollectionUpdateOne) ClearMeta() *DocCollectionUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// SetDbArgs sets the "db_args" field.
func (_u *DocCollectionUpdateOne) SetDbArgs(v map[string]interface{}) *DocCollectionUpdateOne {
	_u.mutation.SetDbArgs(v)
	return _u
}

// ClearDbArgs clears the value of the "db_args" field.
func (_u *DocCollectionUpdateOne) ClearDbArgs() *DocCollectionUpdateOne {
	_u.mutation.ClearDbArgs()
	return _u
}

// SetDbCategory sets the "db_category" field.
func (_u *DocCollectionUpdateOne) SetDbCategory(v string) *DocCollectionUpdateOne {
	_u.mutation.SetDbCategory(v)
	return _u
}

// SetNillableDbCategory sets the "db_category" field if the given value is not nil.
func (_u *DocCollectionUpdateOne) SetNillableDbCategory(v *string) *DocCollectionUpdateOne {
	if v != nil {
		_u.SetDbCategory(*v)
	}
	return _u
}

// ClearDbCategory clears the value of the "db_category" field.
func (_u *DocCollectionUpdateOne) ClearDbCategory() *DocCollectionUpdateOne {
	_u.mutation.ClearDbCategory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocCollectionUpdateOne) SetUpdatedAt(v time.Time) *DocCollectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *DocCollectionUpdateOne) SetOwnerID(id string) *DocCollectionUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *DocCollectionUpdateOne) SetNillableOwnerID(id *string) *DocCollectionUpdateOne {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *DocCollectionUpdateOne) SetOwner(v *User) *DocCollectionUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the DocCollectionMutation object of the builder.
func (_u *DocCollectionUpdateOne) Mutation() *DocCollectionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *DocCollectionUpdateOne) ClearOwner() *DocCollectionUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the DocCollectionUpdate builder.
func (_u *DocCollectionUpdateOne) Where(ps ...predicate.DocCollection) *DocCollectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocCollectionUpdateOne) Select(field string, fields ...string) *DocCollectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocCollection entity.
func (_u *DocCollectionUpdateOne) Save(ctx context.Context) (*DocCollection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocCollectionUpdateOne) SaveX(ctx context.Context) *DocCollection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocCollectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocCollectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocCollectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doccollection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DocCollectionUpdateOne) sqlSave(ctx context.Context) (_node *DocCollection, err error) {
	_spec := sqlgraph.NewUpdateSpec(doccollection.Table, doccollection.Columns, sqlgraph.NewFieldSpec(doccollection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocCollection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doccollection.FieldID)
		for _, f := range fields {
			if !doccollection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != doccollection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(doccollection.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(doccollection.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(doccollection.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(doccollection.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.DbArgs(); ok {
		_spec.SetField(doccollection.FieldDbArgs, field.TypeJSON, value)
	}
	if _u.mutation.DbArgsCleared() {
		_spec.ClearField(doccollection.FieldDbArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.DbCategory(); ok {
		_spec.SetField(doccollection.FieldDbCategory, field.TypeString, value)
	}
	if _u.mutation.DbCategoryCleared() {
		_spec.ClearField(doccollection.FieldDbCategory, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doccollection.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doccollection.OwnerTable,
			Columns: []string{doccollection.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doccollection.OwnerTable,
			Columns: []string{doccollection.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocCollection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doccollection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
