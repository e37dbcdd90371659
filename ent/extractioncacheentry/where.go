// Code generated by ent, DO NOT EDIT.

package extractioncacheentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/seonho/tutorkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLTE(FieldID, id))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldContentHash, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldPayload, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldContainsFold(FieldContentHash, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLTE(FieldPayload, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionCacheEntry) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionCacheEntry) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionCacheEntry) predicate.ExtractionCacheEntry {
	return predicate.ExtractionCacheEntry(sql.NotPredicates(p))
}
