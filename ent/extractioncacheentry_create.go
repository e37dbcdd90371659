// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seonho/tutorkit/ent/extractioncacheentry"
)

// ExtractionCacheEntryCreate is the builder for creating a ExtractionCacheEntry entity.
type ExtractionCacheEntryCreate struct {
	config
	mutation *ExtractionCacheEntryMutation
	hooks    []Hook
}

// SetContentHash sets the "content_hash" field.
func (_c *ExtractionCacheEntryCreate) SetContentHash(v string) *ExtractionCacheEntryCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ExtractionCacheEntryCreate) SetPayload(v []byte) *ExtractionCacheEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCacheEntryCreate) SetCreatedAt(v time.Time) *ExtractionCacheEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCacheEntryCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCacheEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExtractionCacheEntryMutation object of the builder.
func (_c *ExtractionCacheEntryCreate) Mutation() *ExtractionCacheEntryMutation {
	return _c.mutation
}

// Save creates the ExtractionCacheEntry in the database.
func (_c *ExtractionCacheEntryCreate) Save(ctx context.Context) (*ExtractionCacheEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCacheEntryCreate) SaveX(ctx context.Context) *ExtractionCacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCacheEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCacheEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCacheEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractioncacheentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCacheEntryCreate) check() error {
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ExtractionCacheEntry.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := extractioncacheentry.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ExtractionCacheEntry.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ExtractionCacheEntry.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionCacheEntry.created_at"`)}
	}
	return nil
}

func (_c *ExtractionCacheEntryCreate) sqlSave(ctx context.Context) (*ExtractionCacheEntry, error) {
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

func (_c *ExtractionCacheEntryCreate) createSpec() (*ExtractionCacheEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionCacheEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractioncacheentry.Table, sqlgraph.NewFieldSpec(extractioncacheentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(extractioncacheentry.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(extractioncacheentry.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractioncacheentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractionCacheEntryCreateBulk is the builder for creating many ExtractionCacheEntry entities in bulk.
type ExtractionCacheEntryCreateBulk struct {
	config
	err      error
	builders []*ExtractionCacheEntryCreate
}

// Save creates the ExtractionCacheEntry entities in the database.
func (_c *ExtractionCacheEntryCreateBulk) Save(ctx context.Context) ([]*ExtractionCacheEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionCacheEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionCacheEntryMutation)
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
func (_c *ExtractionCacheEntryCreateBulk) SaveX(ctx context.Context) []*ExtractionCacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCacheEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCacheEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
