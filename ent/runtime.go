// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/seonho/tutorkit/ent/conversationturn"
	"github.com/seonho/tutorkit/ent/extractioncacheentry"
	"github.com/seonho/tutorkit/ent/llmrequestevent"
	"github.com/seonho/tutorkit/ent/schema"
	"github.com/seonho/tutorkit/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationturnMixin := schema.ConversationTurn{}.Mixin()
	conversationturnMixinFields0 := conversationturnMixin[0].Fields()
	_ = conversationturnMixinFields0
	conversationturnFields := schema.ConversationTurn{}.Fields()
	_ = conversationturnFields
	// conversationturnDescTimestamp is the schema descriptor for timestamp field.
	conversationturnDescTimestamp := conversationturnMixinFields0[1].Descriptor()
	// conversationturn.DefaultTimestamp holds the default value on creation for the timestamp field.
	conversationturn.DefaultTimestamp = conversationturnDescTimestamp.Default.(func() time.Time)
	// conversationturnDescSessionID is the schema descriptor for session_id field.
	conversationturnDescSessionID := conversationturnFields[0].Descriptor()
	// conversationturn.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	conversationturn.SessionIDValidator = conversationturnDescSessionID.Validators[0].(func(string) error)
	// conversationturnDescRole is the schema descriptor for role field.
	conversationturnDescRole := conversationturnFields[1].Descriptor()
	// conversationturn.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	conversationturn.RoleValidator = conversationturnDescRole.Validators[0].(func(string) error)
	// conversationturnDescResponseType is the schema descriptor for response_type field.
	conversationturnDescResponseType := conversationturnFields[3].Descriptor()
	// conversationturn.DefaultResponseType holds the default value on creation for the response_type field.
	conversationturn.DefaultResponseType = conversationturnDescResponseType.Default.(string)
	// conversationturnDescConfidence is the schema descriptor for confidence field.
	conversationturnDescConfidence := conversationturnFields[4].Descriptor()
	// conversationturn.DefaultConfidence holds the default value on creation for the confidence field.
	conversationturn.DefaultConfidence = conversationturnDescConfidence.Default.(float64)
	extractioncacheentryFields := schema.ExtractionCacheEntry{}.Fields()
	_ = extractioncacheentryFields
	// extractioncacheentryDescContentHash is the schema descriptor for content_hash field.
	extractioncacheentryDescContentHash := extractioncacheentryFields[0].Descriptor()
	// extractioncacheentry.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	extractioncacheentry.ContentHashValidator = extractioncacheentryDescContentHash.Validators[0].(func(string) error)
	// extractioncacheentryDescCreatedAt is the schema descriptor for created_at field.
	extractioncacheentryDescCreatedAt := extractioncacheentryFields[2].Descriptor()
	// extractioncacheentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractioncacheentry.DefaultCreatedAt = extractioncacheentryDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescSubject is the schema descriptor for subject field.
	sessionDescSubject := sessionFields[1].Descriptor()
	// session.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	session.SubjectValidator = sessionDescSubject.Validators[0].(func(string) error)
	// sessionDescStudentName is the schema descriptor for student_name field.
	sessionDescStudentName := sessionFields[2].Descriptor()
	// session.DefaultStudentName holds the default value on creation for the student_name field.
	session.DefaultStudentName = sessionDescStudentName.Default.(string)
	// sessionDescGrade is the schema descriptor for grade field.
	sessionDescGrade := sessionFields[3].Descriptor()
	// session.DefaultGrade holds the default value on creation for the grade field.
	session.DefaultGrade = sessionDescGrade.Default.(string)
	// sessionDescMessageCount is the schema descriptor for message_count field.
	sessionDescMessageCount := sessionFields[4].Descriptor()
	// session.DefaultMessageCount holds the default value on creation for the message_count field.
	session.DefaultMessageCount = sessionDescMessageCount.Default.(int)
	// session.MessageCountValidator is a validator for the "message_count" field. It is called by the builders before save.
	session.MessageCountValidator = sessionDescMessageCount.Validators[0].(func(int) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[5].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[6].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
}
