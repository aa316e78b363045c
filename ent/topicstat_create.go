// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascendquiz/ascendquiz/ent/topicstat"
)

// TopicStatCreate is the builder for creating a TopicStat entity.
type TopicStatCreate struct {
	config
	mutation *TopicStatMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TopicStatCreate) SetUserID(v int) *TopicStatCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TopicStatCreate) SetTopic(v string) *TopicStatCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TopicStatCreate) SetAttempts(v int) *TopicStatCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TopicStatCreate) SetNillableAttempts(v *int) *TopicStatCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TopicStatCreate) SetCorrect(v int) *TopicStatCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *TopicStatCreate) SetNillableCorrect(v *int) *TopicStatCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicStatCreate) SetUpdatedAt(v time.Time) *TopicStatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TopicStatCreate) SetNillableUpdatedAt(v *time.Time) *TopicStatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the TopicStatMutation object of the builder.
func (_c *TopicStatCreate) Mutation() *TopicStatMutation {
	return _c.mutation
}

// Save creates the TopicStat in the database.
func (_c *TopicStatCreate) Save(ctx context.Context) (*TopicStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicStatCreate) SaveX(ctx context.Context) *TopicStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicStatCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := topicstat.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := topicstat.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := topicstat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicStatCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicStat.user_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TopicStat.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := topicstat.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicStat.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TopicStat.attempts"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "TopicStat.correct"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TopicStat.updated_at"`)}
	}
	return nil
}

func (_c *TopicStatCreate) sqlSave(ctx context.Context) (*TopicStat, error) {
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

func (_c *TopicStatCreate) createSpec() (*TopicStat, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicstat.Table, sqlgraph.NewFieldSpec(topicstat.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicstat.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(topicstat.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(topicstat.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(topicstat.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topicstat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TopicStatCreateBulk is the builder for creating many TopicStat entities in bulk.
type TopicStatCreateBulk struct {
	config
	err      error
	builders []*TopicStatCreate
}

// Save creates the TopicStat entities in the database.
func (_c *TopicStatCreateBulk) Save(ctx context.Context) ([]*TopicStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicStatMutation)
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
func (_c *TopicStatCreateBulk) SaveX(ctx context.Context) []*TopicStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
