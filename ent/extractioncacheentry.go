// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/seonho/tutorkit/ent/extractioncacheentry"
)

// ExtractionCacheEntry is the model entity for the ExtractionCacheEntry schema.
type ExtractionCacheEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SHA-256 of the material locator
	ContentHash string `json:"content_hash,omitempty"`
	// Extractor result, JSON-serialized
	Payload []byte `json:"payload,omitempty"`
	// Reset on every put; entries age out from here
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionCacheEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractioncacheentry.FieldPayload:
			values[i] = new([]byte)
		case extractioncacheentry.FieldID:
			values[i] = new(sql.NullInt64)
		case extractioncacheentry.FieldContentHash:
			values[i] = new(sql.NullString)
		case extractioncacheentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionCacheEntry fields.
func (_m *ExtractionCacheEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractioncacheentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extractioncacheentry.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case extractioncacheentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case extractioncacheentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionCacheEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionCacheEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractionCacheEntry.
// Note that you need to call ExtractionCacheEntry.Unwrap() before calling this method if this ExtractionCacheEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionCacheEntry) Update() *ExtractionCacheEntryUpdateOne {
	return NewExtractionCacheEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionCacheEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionCacheEntry) Unwrap() *ExtractionCacheEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionCacheEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionCacheEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionCacheEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionCacheEntries is a parsable slice of ExtractionCacheEntry.
type ExtractionCacheEntries []*ExtractionCacheEntry
