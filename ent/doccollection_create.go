// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yaronha/demo-llm-agent/ent/doccollection"
	"github.com/yaronha/demo-llm-agent/ent/user"
)

// DocCollectionCreate is the builder for creating a DocCollection entity.
type DocCollectionCreate struct {
	config
	mutation *DocCollectionMutation
	hooks    []Hook
}

// SetDescription sets the "description" field.
func (_c *DocCollectionCreate) SetDescription(v string) *DocCollectionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DocCollectionCreate) SetNillableDescription(v *string) *DocCollectionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOwnerName sets the "owner_name" field.
func (_c *DocCollectionCreate) SetOwnerName(v string) *DocCollectionCreate {
	_c.mutation.SetOwnerName(v)
	return _c
}

// SetNillableOwnerName sets the "owner_name" field if the given value is not nil.
func (_c *DocCollectionCreate) SetNillableOwnerName(v *string) *DocCollectionCreate {
	if v != nil {
		_c.SetOwnerName(*v)
	}
	return _c
}

// SetMeta sets the "meta" field.
func (_c *DocCollectionCreate) SetMeta(v map[string]interface{}) *DocCollectionCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetDbArgs sets the "db_args" field.
func (_c *DocCollectionCreate) SetDbArgs(v map[string]interface{}) *DocCollectionCreate {
	_c.mutation.SetDbArgs(v)
	return _c
}

// SetDbCategory sets the "db_category" field.
func (_c *DocCollectionCreate) SetDbCategory(v string) *DocCollectionCreate {
	_c.mutation.SetDbCategory(v)
	return _c
}

// SetNillableDbCategory sets the "db_category" field if the given value is not nil.
func (_c *DocCollectionCreate) SetNillableDbCategory(v *string) *DocCollectionCreate {
	if v != nil {
		_c.SetDbCategory(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocCollectionCreate) SetCreatedAt(v time.Time) *DocCollectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocCollectionCreate) SetNillableCreatedAt(v *time.Time) *DocCollectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocCollectionCreate) SetUpdatedAt(v time.Time) *DocCollectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocCollectionCreate) SetNillableUpdatedAt(v *time.Time) *DocCollectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocCollectionCreate) SetID(v string) *DocCollectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *DocCollectionCreate) SetOwnerID(id string) *DocCollectionCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_c *DocCollectionCreate) SetNillableOwnerID(id *string) *DocCollectionCreate {
	if id != nil {
		_c = _c.SetOwnerID(*id)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *DocCollectionCreate) SetOwner(v *User) *DocCollectionCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the DocCollectionMutation object of the builder.
func (_c *DocCollectionCreate) Mutation() *DocCollectionMutation {
	return _c.mutation
}

// Save creates the DocCollection in the database.
func (_c *DocCollectionCreate) Save(ctx context.Context) (*DocCollection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocCollectionCreate) SaveX(ctx context.Context) *DocCollection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocCollectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocCollectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocCollectionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doccollection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doccollection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocCollectionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocCollection.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocCollection.updated_at"`)}
	}
	return nil
}

func (_c *DocCollectionCreate) sqlSave(ctx context.Context) (*DocCollection, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DocCollection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocCollectionCreate) createSpec() (*DocCollection, *sqlgraph.CreateSpec) {
	var (
		_node = &DocCollection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doccollection.Table, sqlgraph.NewFieldSpec(doccollection.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(doccollection.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(doccollection.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.DbArgs(); ok {
		_spec.SetField(doccollection.FieldDbArgs, field.TypeJSON, value)
		_node.DbArgs = value
	}
	if value, ok := _c.mutation.DbCategory(); ok {
		_spec.SetField(doccollection.FieldDbCategory, field.TypeString, value)
		_node.DbCategory = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doccollection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doccollection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.OwnerName = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocCollectionCreateBulk is the builder for creating many DocCollection entities in bulk.
type DocCollectionCreateBulk struct {
	config
	err      error
	builders []*DocCollectionCreate
}

// Save creates the DocCollection entities in the database.
func (_c *DocCollectionCreateBulk) Save(ctx context.Context) ([]*DocCollection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocCollection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocCollectionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocCollectionCreateBulk) SaveX(ctx context.Context) []*DocCollection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocCollectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocCollectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
