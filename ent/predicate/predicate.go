// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConversationTurn is the predicate function for conversationturn builders.
type ConversationTurn func(*sql.Selector)

// ExtractionCacheEntry is the predicate function for extractioncacheentry builders.
type ExtractionCacheEntry func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
