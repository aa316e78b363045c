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
	"github.com/ascendquiz/ascendquiz/ent/quizsession"
)

// QuizSessionUpdate is the builder for updating QuizSession entities.
type QuizSessionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSessionMutation
}

// Where appends a list predicates to the QuizSessionUpdate builder.
func (_u *QuizSessionUpdate) Where(ps ...predicate.QuizSession) *QuizSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSessionUpdate) SetSessionID(v string) *QuizSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableSessionID(v *string) *QuizSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizSessionUpdate) SetUserID(v int) *QuizSessionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableUserID(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuizSessionUpdate) AddUserID(v int) *QuizSessionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetDocumentName sets the "document_name" field.
func (_u *QuizSessionUpdate) SetDocumentName(v string) *QuizSessionUpdate {
	_u.mutation.SetDocumentName(v)
	return _u
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableDocumentName(v *string) *QuizSessionUpdate {
	if v != nil {
		_u.SetDocumentName(*v)
	}
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *QuizSessionUpdate) SetFinalScore(v float64) *QuizSessionUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableFinalScore(v *float64) *QuizSessionUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *QuizSessionUpdate) AddFinalScore(v float64) *QuizSessionUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetMasteryAchieved sets the "mastery_achieved" field.
func (_u *QuizSessionUpdate) SetMasteryAchieved(v bool) *QuizSessionUpdate {
	_u.mutation.SetMasteryAchieved(v)
	return _u
}

// SetNillableMasteryAchieved sets the "mastery_achieved" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableMasteryAchieved(v *bool) *QuizSessionUpdate {
	if v != nil {
		_u.SetMasteryAchieved(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *QuizSessionUpdate) SetQuestionsAnswered(v int) *QuizSessionUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableQuestionsAnswered(v *int) *QuizSessionUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *QuizSessionUpdate) AddQuestionsAnswered(v int) *QuizSessionUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetFinishReason sets the "finish_reason" field.
func (_u *QuizSessionUpdate) SetFinishReason(v string) *QuizSessionUpdate {
	_u.mutation.SetFinishReason(v)
	return _u
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_u *QuizSessionUpdate) SetNillableFinishReason(v *string) *QuizSessionUpdate {
	if v != nil {
		_u.SetFinishReason(*v)
	}
	return _u
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_u *QuizSessionUpdate) Mutation() *QuizSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsession.Table, quizsession.Columns, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quizsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentName(); ok {
		_spec.SetField(quizsession.FieldDocumentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(quizsession.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(quizsession.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAchieved(); ok {
		_spec.SetField(quizsession.FieldMasteryAchieved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(quizsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(quizsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishReason(); ok {
		_spec.SetField(quizsession.FieldFinishReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSessionUpdateOne is the builder for updating a single QuizSession entity.
type QuizSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizSessionUpdateOne) SetSessionID(v string) *QuizSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableSessionID(v *string) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizSessionUpdateOne) SetUserID(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableUserID(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuizSessionUpdateOne) AddUserID(v int) *QuizSessionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetDocumentName sets the "document_name" field.
func (_u *QuizSessionUpdateOne) SetDocumentName(v string) *QuizSessionUpdateOne {
	_u.mutation.SetDocumentName(v)
	return _u
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableDocumentName(v *string) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetDocumentName(*v)
	}
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *QuizSessionUpdateOne) SetFinalScore(v float64) *QuizSessionUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableFinalScore(v *float64) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *QuizSessionUpdateOne) AddFinalScore(v float64) *QuizSessionUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetMasteryAchieved sets the "mastery_achieved" field.
func (_u *QuizSessionUpdateOne) SetMasteryAchieved(v bool) *QuizSessionUpdateOne {
	_u.mutation.SetMasteryAchieved(v)
	return _u
}

// SetNillableMasteryAchieved sets the "mastery_achieved" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableMasteryAchieved(v *bool) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetMasteryAchieved(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *QuizSessionUpdateOne) SetQuestionsAnswered(v int) *QuizSessionUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableQuestionsAnswered(v *int) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *QuizSessionUpdateOne) AddQuestionsAnswered(v int) *QuizSessionUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetFinishReason sets the "finish_reason" field.
func (_u *QuizSessionUpdateOne) SetFinishReason(v string) *QuizSessionUpdateOne {
	_u.mutation.SetFinishReason(v)
	return _u
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_u *QuizSessionUpdateOne) SetNillableFinishReason(v *string) *QuizSessionUpdateOne {
	if v != nil {
		_u.SetFinishReason(*v)
	}
	return _u
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_u *QuizSessionUpdateOne) Mutation() *QuizSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizSessionUpdate builder.
func (_u *QuizSessionUpdateOne) Where(ps ...predicate.QuizSession) *QuizSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSessionUpdateOne) Select(field string, fields ...string) *QuizSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSession entity.
func (_u *QuizSessionUpdateOne) Save(ctx context.Context) (*QuizSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSessionUpdateOne) SaveX(ctx context.Context) *QuizSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSessionUpdateOne) sqlSave(ctx context.Context) (_node *QuizSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsession.Table, quizsession.Columns, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsession.FieldID)
		for _, f := range fields {
			if !quizsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsession.FieldID {
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
		_spec.SetField(quizsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quizsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentName(); ok {
		_spec.SetField(quizsession.FieldDocumentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(quizsession.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(quizsession.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAchieved(); ok {
		_spec.SetField(quizsession.FieldMasteryAchieved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(quizsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(quizsession.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishReason(); ok {
		_spec.SetField(quizsession.FieldFinishReason, field.TypeString, value)
	}
	_node = &QuizSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
