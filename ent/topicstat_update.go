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
	"github.com/ascendquiz/ascendquiz/ent/predicate"
	"github.com/ascendquiz/ascendquiz/ent/topicstat"
)

// TopicStatUpdate is the builder for updating TopicStat entities.
type TopicStatUpdate struct {
	config
	hooks    []Hook
	mutation *TopicStatMutation
}

// Where appends a list predicates to the TopicStatUpdate builder.
func (_u *TopicStatUpdate) Where(ps ...predicate.TopicStat) *TopicStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TopicStatUpdate) SetUserID(v int) *TopicStatUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicStatUpdate) SetNillableUserID(v *int) *TopicStatUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *TopicStatUpdate) AddUserID(v int) *TopicStatUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicStatUpdate) SetTopic(v string) *TopicStatUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicStatUpdate) SetNillableTopic(v *string) *TopicStatUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicStatUpdate) SetAttempts(v int) *TopicStatUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicStatUpdate) SetNillableAttempts(v *int) *TopicStatUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicStatUpdate) AddAttempts(v int) *TopicStatUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TopicStatUpdate) SetCorrect(v int) *TopicStatUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TopicStatUpdate) SetNillableCorrect(v *int) *TopicStatUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TopicStatUpdate) AddCorrect(v int) *TopicStatUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicStatUpdate) SetUpdatedAt(v time.Time) *TopicStatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicStatMutation object of the builder.
func (_u *TopicStatUpdate) Mutation() *TopicStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicStatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicstat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicStatUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicstat.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicStat.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicstat.Table, topicstat.Columns, sqlgraph.NewFieldSpec(topicstat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(topicstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicstat.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(topicstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(topicstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicstat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicStatUpdateOne is the builder for updating a single TopicStat entity.
type TopicStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicStatMutation
}

// SetUserID sets the "user_id" field.
func (_u *TopicStatUpdateOne) SetUserID(v int) *TopicStatUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicStatUpdateOne) SetNillableUserID(v *int) *TopicStatUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *TopicStatUpdateOne) AddUserID(v int) *TopicStatUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TopicStatUpdateOne) SetTopic(v string) *TopicStatUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TopicStatUpdateOne) SetNillableTopic(v *string) *TopicStatUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicStatUpdateOne) SetAttempts(v int) *TopicStatUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicStatUpdateOne) SetNillableAttempts(v *int) *TopicStatUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicStatUpdateOne) AddAttempts(v int) *TopicStatUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TopicStatUpdateOne) SetCorrect(v int) *TopicStatUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TopicStatUpdateOne) SetNillableCorrect(v *int) *TopicStatUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TopicStatUpdateOne) AddCorrect(v int) *TopicStatUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicStatUpdateOne) SetUpdatedAt(v time.Time) *TopicStatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicStatMutation object of the builder.
func (_u *TopicStatUpdateOne) Mutation() *TopicStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicStatUpdate builder.
func (_u *TopicStatUpdateOne) Where(ps ...predicate.TopicStat) *TopicStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicStatUpdateOne) Select(field string, fields ...string) *TopicStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicStat entity.
func (_u *TopicStatUpdateOne) Save(ctx context.Context) (*TopicStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicStatUpdateOne) SaveX(ctx context.Context) *TopicStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicStatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicstat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicStatUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := topicstat.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicStat.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicStatUpdateOne) sqlSave(ctx context.Context) (_node *TopicStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicstat.Table, topicstat.Columns, sqlgraph.NewFieldSpec(topicstat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicstat.FieldID)
		for _, f := range fields {
			if !topicstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicstat.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(topicstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(topicstat.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(topicstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(topicstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicstat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TopicStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
