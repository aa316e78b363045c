// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascendquiz/ascendquiz/ent/responseevent"
)

// ResponseEventCreate is the builder for creating a ResponseEvent entity.
type ResponseEventCreate struct {
	config
	mutation *ResponseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResponseEventCreate) SetSequence(v int64) *ResponseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResponseEventCreate) SetTimestamp(v time.Time) *ResponseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTimestamp(v *time.Time) *ResponseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResponseEventCreate) SetSessionID(v string) *ResponseEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ResponseEventCreate) SetUserID(v int) *ResponseEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ResponseEventCreate) SetQuestionID(v string) *ResponseEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *ResponseEventCreate) SetQuestionText(v string) *ResponseEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableQuestionText(v *string) *ResponseEventCreate {
	if v != nil {
		_c.SetQuestionText(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ResponseEventCreate) SetTopic(v string) *ResponseEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTopic(v *string) *ResponseEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *ResponseEventCreate) SetTier(v int) *ResponseEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ResponseEventCreate) SetCorrect(v bool) *ResponseEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetSeqInSession sets the "seq_in_session" field.
func (_c *ResponseEventCreate) SetSeqInSession(v int) *ResponseEventCreate {
	_c.mutation.SetSeqInSession(v)
	return _c
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_c *ResponseEventCreate) Mutation() *ResponseEventMutation {
	return _c.mutation
}

// Save creates the ResponseEvent in the database.
func (_c *ResponseEventCreate) Save(ctx context.Context) (*ResponseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseEventCreate) SaveX(ctx context.Context) *ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := responseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		v := responseevent.DefaultQuestionText
		_c.mutation.SetQuestionText(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := responseevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResponseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResponseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResponseEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ResponseEvent.user_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ResponseEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "ResponseEvent.question_text"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ResponseEvent.topic"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "ResponseEvent.tier"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ResponseEvent.correct"`)}
	}
	if _, ok := _c.mutation.SeqInSession(); !ok {
		return &ValidationError{Name: "seq_in_session", err: errors.New(`ent: missing required field "ResponseEvent.seq_in_session"`)}
	}
	return nil
}

func (_c *ResponseEventCreate) sqlSave(ctx context.Context) (*ResponseEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResponseEventCreate) createSpec() (*ResponseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResponseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(responseevent.Table, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(responseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(responseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(responseevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(responseevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(responseevent.FieldTier, field.TypeInt, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.SeqInSession(); ok {
		_spec.SetField(responseevent.FieldSeqInSession, field.TypeInt, value)
		_node.SeqInSession = value
	}
	return _node, _spec
}

// ResponseEventCreateBulk is the builder for creating many ResponseEvent entities in bulk.
type ResponseEventCreateBulk struct {
	config
	err      error
	builders []*ResponseEventCreate
}

// Save creates the ResponseEvent entities in the database.
func (_c *ResponseEventCreateBulk) Save(ctx context.Context) ([]*ResponseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResponseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ResponseEventCreateBulk) SaveX(ctx context.Context) []*ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
