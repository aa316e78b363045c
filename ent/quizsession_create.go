// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascendquiz/ascendquiz/ent/quizsession"
)

// QuizSessionCreate is the builder for creating a QuizSession entity.
type QuizSessionCreate struct {
	config
	mutation *QuizSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QuizSessionCreate) SetSessionID(v string) *QuizSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuizSessionCreate) SetUserID(v int) *QuizSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDocumentName sets the "document_name" field.
func (_c *QuizSessionCreate) SetDocumentName(v string) *QuizSessionCreate {
	_c.mutation.SetDocumentName(v)
	return _c
}

// SetNillableDocumentName sets the "document_name" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableDocumentName(v *string) *QuizSessionCreate {
	if v != nil {
		_c.SetDocumentName(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *QuizSessionCreate) SetFinalScore(v float64) *QuizSessionCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetMasteryAchieved sets the "mastery_achieved" field.
func (_c *QuizSessionCreate) SetMasteryAchieved(v bool) *QuizSessionCreate {
	_c.mutation.SetMasteryAchieved(v)
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *QuizSessionCreate) SetQuestionsAnswered(v int) *QuizSessionCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableQuestionsAnswered(v *int) *QuizSessionCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetFinishReason sets the "finish_reason" field.
func (_c *QuizSessionCreate) SetFinishReason(v string) *QuizSessionCreate {
	_c.mutation.SetFinishReason(v)
	return _c
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableFinishReason(v *string) *QuizSessionCreate {
	if v != nil {
		_c.SetFinishReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizSessionCreate) SetCreatedAt(v time.Time) *QuizSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizSessionCreate) SetNillableCreatedAt(v *time.Time) *QuizSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuizSessionMutation object of the builder.
func (_c *QuizSessionCreate) Mutation() *QuizSessionMutation {
	return _c.mutation
}

// Save creates the QuizSession in the database.
func (_c *QuizSessionCreate) Save(ctx context.Context) (*QuizSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSessionCreate) SaveX(ctx context.Context) *QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSessionCreate) defaults() {
	if _, ok := _c.mutation.DocumentName(); !ok {
		v := quizsession.DefaultDocumentName
		_c.mutation.SetDocumentName(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := quizsession.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.FinishReason(); !ok {
		v := quizsession.DefaultFinishReason
		_c.mutation.SetFinishReason(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quizsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizSession.user_id"`)}
	}
	if _, ok := _c.mutation.DocumentName(); !ok {
		return &ValidationError{Name: "document_name", err: errors.New(`ent: missing required field "QuizSession.document_name"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "QuizSession.final_score"`)}
	}
	if _, ok := _c.mutation.MasteryAchieved(); !ok {
		return &ValidationError{Name: "mastery_achieved", err: errors.New(`ent: missing required field "QuizSession.mastery_achieved"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "QuizSession.questions_answered"`)}
	}
	if _, ok := _c.mutation.FinishReason(); !ok {
		return &ValidationError{Name: "finish_reason", err: errors.New(`ent: missing required field "QuizSession.finish_reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuizSession.created_at"`)}
	}
	return nil
}

func (_c *QuizSessionCreate) sqlSave(ctx context.Context) (*QuizSession, error) {
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

func (_c *QuizSessionCreate) createSpec() (*QuizSession, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsession.Table, sqlgraph.NewFieldSpec(quizsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizsession.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DocumentName(); ok {
		_spec.SetField(quizsession.FieldDocumentName, field.TypeString, value)
		_node.DocumentName = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(quizsession.FieldFinalScore, field.TypeFloat64, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.MasteryAchieved(); ok {
		_spec.SetField(quizsession.FieldMasteryAchieved, field.TypeBool, value)
		_node.MasteryAchieved = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(quizsession.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.FinishReason(); ok {
		_spec.SetField(quizsession.FieldFinishReason, field.TypeString, value)
		_node.FinishReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quizsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuizSessionCreateBulk is the builder for creating many QuizSession entities in bulk.
type QuizSessionCreateBulk struct {
	config
	err      error
	builders []*QuizSessionCreate
}

// Save creates the QuizSession entities in the database.
func (_c *QuizSessionCreateBulk) Save(ctx context.Context) ([]*QuizSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSessionMutation)
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
func (_c *QuizSessionCreateBulk) SaveX(ctx context.Context) []*QuizSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
