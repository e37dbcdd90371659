// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seonho/tutorkit/ent/conversationturn"
)

// ConversationTurnCreate is the builder for creating a ConversationTurn entity.
type ConversationTurnCreate struct {
	config
	mutation *ConversationTurnMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ConversationTurnCreate) SetSequence(v int64) *ConversationTurnCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ConversationTurnCreate) SetTimestamp(v time.Time) *ConversationTurnCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableTimestamp(v *time.Time) *ConversationTurnCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ConversationTurnCreate) SetSessionID(v string) *ConversationTurnCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ConversationTurnCreate) SetRole(v string) *ConversationTurnCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ConversationTurnCreate) SetText(v string) *ConversationTurnCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetResponseType sets the "response_type" field.
func (_c *ConversationTurnCreate) SetResponseType(v string) *ConversationTurnCreate {
	_c.mutation.SetResponseType(v)
	return _c
}

// SetNillableResponseType sets the "response_type" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableResponseType(v *string) *ConversationTurnCreate {
	if v != nil {
		_c.SetResponseType(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ConversationTurnCreate) SetConfidence(v float64) *ConversationTurnCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableConfidence(v *float64) *ConversationTurnCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// Mutation returns the ConversationTurnMutation object of the builder.
func (_c *ConversationTurnCreate) Mutation() *ConversationTurnMutation {
	return _c.mutation
}

// Save creates the ConversationTurn in the database.
func (_c *ConversationTurnCreate) Save(ctx context.Context) (*ConversationTurn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationTurnCreate) SaveX(ctx context.Context) *ConversationTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationTurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationTurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationTurnCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := conversationturn.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ResponseType(); !ok {
		v := conversationturn.DefaultResponseType
		_c.mutation.SetResponseType(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := conversationturn.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationTurnCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ConversationTurn.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ConversationTurn.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ConversationTurn.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := conversationturn.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ConversationTurn.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := conversationturn.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConversationTurn.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ConversationTurn.text"`)}
	}
	if _, ok := _c.mutation.ResponseType(); !ok {
		return &ValidationError{Name: "response_type", err: errors.New(`ent: missing required field "ConversationTurn.response_type"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ConversationTurn.confidence"`)}
	}
	return nil
}

func (_c *ConversationTurnCreate) sqlSave(ctx context.Context) (*ConversationTurn, error) {
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

func (_c *ConversationTurnCreate) createSpec() (*ConversationTurn, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationTurn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationturn.Table, sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(conversationturn.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(conversationturn.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(conversationturn.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(conversationturn.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(conversationturn.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.ResponseType(); ok {
		_spec.SetField(conversationturn.FieldResponseType, field.TypeString, value)
		_node.ResponseType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(conversationturn.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// ConversationTurnCreateBulk is the builder for creating many ConversationTurn entities in bulk.
type ConversationTurnCreateBulk struct {
	config
	err      error
	builders []*ConversationTurnCreate
}

// Save creates the ConversationTurn entities in the database.
func (_c *ConversationTurnCreateBulk) Save(ctx context.Context) ([]*ConversationTurn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationTurn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationTurnMutation)
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
func (_c *ConversationTurnCreateBulk) SaveX(ctx context.Context) []*ConversationTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationTurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationTurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
