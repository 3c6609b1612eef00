// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/yaronha/demo-llm-agent/ent/chatsession"
	"github.com/yaronha/demo-llm-agent/ent/predicate"
	"github.com/yaronha/demo-llm-agent/ent/user"
	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *ChatSessionUpdate) SetUsername(v string) *ChatSessionUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableUsername(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *ChatSessionUpdate) SetAgentName(v string) *ChatSessionUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableAgentName(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *ChatSessionUpdate) ClearAgentName() *ChatSessionUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ChatSessionUpdate) SetTopic(v string) *ChatSessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTopic(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *ChatSessionUpdate) ClearTopic() *ChatSessionUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetHistory sets the "history" field.
func (_u *ChatSessionUpdate) SetHistory(v []models.Message) *ChatSessionUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ChatSessionUpdate) AppendHistory(v []models.Message) *ChatSessionUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ChatSessionUpdate) ClearHistory() *ChatSessionUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetState sets the "state" field.
func (_u *ChatSessionUpdate) SetState(v map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ChatSessionUpdate) ClearState() *ChatSessionUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetAnnotations sets the "annotations" field.
func (_u *ChatSessionUpdate) SetAnnotations(v map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetAnnotations(v)
	return _u
}

// ClearAnnotations clears the value of the "annotations" field.
func (_u *ChatSessionUpdate) ClearAnnotations() *ChatSessionUpdate {
	_u.mutation.ClearAnnotations()
	return _u
}

// SetFeatures sets the "features" field.
func (_u *ChatSessionUpdate) SetFeatures(v map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *ChatSessionUpdate) ClearFeatures() *ChatSessionUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdate) SetUpdatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ChatSessionUpdate) SetOwnerID(id string) *ChatSessionUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ChatSessionUpdate) SetOwner(v *User) *ChatSessionUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ChatSessionUpdate) ClearOwner() *ChatSessionUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdate) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatSession.owner"`)
	}
	return nil
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(chatsession.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(chatsession.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(chatsession.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(chatsession.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(chatsession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(chatsession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(chatsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(chatsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Annotations(); ok {
		_spec.SetField(chatsession.FieldAnnotations, field.TypeJSON, value)
	}
	if _u.mutation.AnnotationsCleared() {
		_spec.ClearField(chatsession.FieldAnnotations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(chatsession.FieldFeatures, field.TypeJSON, value)
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(chatsession.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatsession.OwnerTable,
			Columns: []string{chatsession.OwnerColumn},
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
			Table:   chatsession.OwnerTable,
			Columns: []string{chatsession.OwnerColumn},
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
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetUsername sets the "username" field.
func (_u *ChatSessionUpdateOne) SetUsername(v string) *ChatSessionUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableUsername(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *ChatSessionUpdateOne) SetAgentName(v string) *ChatSessionUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableAgentName(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *ChatSessionUpdateOne) ClearAgentName() *ChatSessionUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ChatSessionUpdateOne) SetTopic(v string) *ChatSessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTopic(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *ChatSessionUpdateOne) ClearTopic() *ChatSessionUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetHistory sets the "history" field.
func (_u *ChatSessionUpdateOne) SetHistory(v []models.Message) *ChatSessionUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ChatSessionUpdateOne) AppendHistory(v []models.Message) *ChatSessionUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ChatSessionUpdateOne) ClearHistory() *ChatSessionUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetState sets the "state" field.
func (_u *ChatSessionUpdateOne) SetState(v map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ChatSessionUpdateOne) ClearState() *ChatSessionUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetAnnotations sets the "annotations" field.
func (_u *ChatSessionUpdateOne) SetAnnotations(v map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetAnnotations(v)
	return _u
}

// ClearAnnotations clears the value of the "annotations" field.
func (_u *ChatSessionUpdateOne) ClearAnnotations() *ChatSessionUpdateOne {
	_u.mutation.ClearAnnotations()
	return _u
}

// SetFeatures sets the "features" field.
func (_u *ChatSessionUpdateOne) SetFeatures(v map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *ChatSessionUpdateOne) ClearFeatures() *ChatSessionUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdateOne) SetUpdatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *ChatSessionUpdateOne) SetOwnerID(id string) *ChatSessionUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *ChatSessionUpdateOne) SetOwner(v *User) *ChatSessionUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *ChatSessionUpdateOne) ClearOwner() *ChatSessionUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdateOne) check() error {
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatSession.owner"`)
	}
	return nil
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(chatsession.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(chatsession.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(chatsession.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(chatsession.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(chatsession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(chatsession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(chatsession.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(chatsession.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Annotations(); ok {
		_spec.SetField(chatsession.FieldAnnotations, field.TypeJSON, value)
	}
	if _u.mutation.AnnotationsCleared() {
		_spec.ClearField(chatsession.FieldAnnotations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(chatsession.FieldFeatures, field.TypeJSON, value)
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(chatsession.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatsession.OwnerTable,
			Columns: []string{chatsession.OwnerColumn},
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
			Table:   chatsession.OwnerTable,
			Columns: []string{chatsession.OwnerColumn},
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
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
