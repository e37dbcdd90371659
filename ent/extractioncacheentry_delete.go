// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seonho/tutorkit/ent/extractioncacheentry"
	"github.com/seonho/tutorkit/ent/predicate"
)

// ExtractionCacheEntryDelete is the builder for deleting a ExtractionCacheEntry entity.
type ExtractionCacheEntryDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionCacheEntryMutation
}

// Where appends a list predicates to the ExtractionCacheEntryDelete builder.
func (_d *ExtractionCacheEntryDelete) Where(ps ...predicate.ExtractionCacheEntry) *ExtractionCacheEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionCacheEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionCacheEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionCacheEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractioncacheentry.Table, sqlgraph.NewFieldSpec(extractioncacheentry.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractionCacheEntryDeleteOne is the builder for deleting a single ExtractionCacheEntry entity.
type ExtractionCacheEntryDeleteOne struct {
	_d *ExtractionCacheEntryDelete
}

// Where appends a list predicates to the ExtractionCacheEntryDelete builder.
func (_d *ExtractionCacheEntryDeleteOne) Where(ps ...predicate.ExtractionCacheEntry) *ExtractionCacheEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionCacheEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractioncacheentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionCacheEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
