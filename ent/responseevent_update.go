// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascendquiz/ascendquiz/ent/predicate"
	"github.com/ascendquiz/ascendquiz/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdate) SetUserID(v int) *ResponseEventUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableUserID(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ResponseEventUpdate) AddUserID(v int) *ResponseEventUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdate) SetQuestionID(v string) *ResponseEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuestionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ResponseEventUpdate) SetQuestionText(v string) *ResponseEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuestionText(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ResponseEventUpdate) SetTopic(v string) *ResponseEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTopic(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ResponseEventUpdate) SetTier(v int) *ResponseEventUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTier(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *ResponseEventUpdate) AddTier(v int) *ResponseEventUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdate) SetCorrect(v bool) *ResponseEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCorrect(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSeqInSession sets the "seq_in_session" field.
func (_u *ResponseEventUpdate) SetSeqInSession(v int) *ResponseEventUpdate {
	_u.mutation.ResetSeqInSession()
	_u.mutation.SetSeqInSession(v)
	return _u
}

// SetNillableSeqInSession sets the "seq_in_session" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSeqInSession(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetSeqInSession(*v)
	}
	return _u
}

// AddSeqInSession adds value to the "seq_in_session" field.
func (_u *ResponseEventUpdate) AddSeqInSession(v int) *ResponseEventUpdate {
	_u.mutation.AddSeqInSession(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(responseevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(responseevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(responseevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(responseevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(responseevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SeqInSession(); ok {
		_spec.SetField(responseevent.FieldSeqInSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeqInSession(); ok {
		_spec.AddField(responseevent.FieldSeqInSession, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdateOne) SetUserID(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableUserID(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ResponseEventUpdateOne) AddUserID(v int) *ResponseEventUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdateOne) SetQuestionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuestionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ResponseEventUpdateOne) SetQuestionText(v string) *ResponseEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuestionText(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ResponseEventUpdateOne) SetTopic(v string) *ResponseEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTopic(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ResponseEventUpdateOne) SetTier(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTier(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *ResponseEventUpdateOne) AddTier(v int) *ResponseEventUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdateOne) SetCorrect(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCorrect(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSeqInSession sets the "seq_in_session" field.
func (_u *ResponseEventUpdateOne) SetSeqInSession(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetSeqInSession()
	_u.mutation.SetSeqInSession(v)
	return _u
}

// SetNillableSeqInSession sets the "seq_in_session" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSeqInSession(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSeqInSession(*v)
	}
	return _u
}

// AddSeqInSession adds value to the "seq_in_session" field.
func (_u *ResponseEventUpdateOne) AddSeqInSession(v int) *ResponseEventUpdateOne {
	_u.mutation.AddSeqInSession(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(responseevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(responseevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(responseevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(responseevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(responseevent.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SeqInSession(); ok {
		_spec.SetField(responseevent.FieldSeqInSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeqInSession(); ok {
		_spec.AddField(responseevent.FieldSeqInSession, field.TypeInt, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
