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
	"github.com/seonho/tutorkit/ent/extractioncacheentry"
	"github.com/seonho/tutorkit/ent/predicate"
)

// ExtractionCacheEntryUpdate is the builder for updating ExtractionCacheEntry entities.
type ExtractionCacheEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionCacheEntryMutation
}

// Where appends a list predicates to the ExtractionCacheEntryUpdate builder.
func (_u *ExtractionCacheEntryUpdate) Where(ps ...predicate.ExtractionCacheEntry) *ExtractionCacheEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ExtractionCacheEntryUpdate) SetPayload(v []byte) *ExtractionCacheEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionCacheEntryUpdate) SetCreatedAt(v time.Time) *ExtractionCacheEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionCacheEntryUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionCacheEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ExtractionCacheEntryMutation object of the builder.
func (_u *ExtractionCacheEntryUpdate) Mutation() *ExtractionCacheEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionCacheEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionCacheEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionCacheEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionCacheEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractionCacheEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractioncacheentry.Table, extractioncacheentry.Columns, sqlgraph.NewFieldSpec(extractioncacheentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(extractioncacheentry.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractioncacheentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractioncacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionCacheEntryUpdateOne is the builder for updating a single ExtractionCacheEntry entity.
type ExtractionCacheEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionCacheEntryMutation
}

// SetPayload sets the "payload" field.
func (_u *ExtractionCacheEntryUpdateOne) SetPayload(v []byte) *ExtractionCacheEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionCacheEntryUpdateOne) SetCreatedAt(v time.Time) *ExtractionCacheEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionCacheEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionCacheEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ExtractionCacheEntryMutation object of the builder.
func (_u *ExtractionCacheEntryUpdateOne) Mutation() *ExtractionCacheEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionCacheEntryUpdate builder.
func (_u *ExtractionCacheEntryUpdateOne) Where(ps ...predicate.ExtractionCacheEntry) *ExtractionCacheEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionCacheEntryUpdateOne) Select(field string, fields ...string) *ExtractionCacheEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionCacheEntry entity.
func (_u *ExtractionCacheEntryUpdateOne) Save(ctx context.Context) (*ExtractionCacheEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionCacheEntryUpdateOne) SaveX(ctx context.Context) *ExtractionCacheEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionCacheEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionCacheEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractionCacheEntryUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionCacheEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractioncacheentry.Table, extractioncacheentry.Columns, sqlgraph.NewFieldSpec(extractioncacheentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionCacheEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractioncacheentry.FieldID)
		for _, f := range fields {
			if !extractioncacheentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractioncacheentry.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(extractioncacheentry.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractioncacheentry.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ExtractionCacheEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractioncacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
