// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationTurnsColumns holds the columns for the "conversation_turns" table.
	ConversationTurnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "response_type", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
	}
	// ConversationTurnsTable holds the schema information for the "conversation_turns" table.
	ConversationTurnsTable = &schema.Table{
		Name:       "conversation_turns",
		Columns:    ConversationTurnsColumns,
		PrimaryKey: []*schema.Column{ConversationTurnsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationturn_sequence",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[1]},
			},
			{
				Name:    "conversationturn_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[2]},
			},
			{
				Name:    "conversationturn_session_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[3], ConversationTurnsColumns[1]},
			},
		},
	}
	// ExtractionCacheEntriesColumns holds the columns for the "extraction_cache_entries" table.
	ExtractionCacheEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractionCacheEntriesTable holds the schema information for the "extraction_cache_entries" table.
	ExtractionCacheEntriesTable = &schema.Table{
		Name:       "extraction_cache_entries",
		Columns:    ExtractionCacheEntriesColumns,
		PrimaryKey: []*schema.Column{ExtractionCacheEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractioncacheentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionCacheEntriesColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "student_name", Type: field.TypeString, Default: ""},
		{Name: "grade", Type: field.TypeString, Default: ""},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationTurnsTable,
		ExtractionCacheEntriesTable,
		LlmRequestEventsTable,
		SessionsTable,
	}
)

func init() {
}
