// Package conversation defines the turn types shared by the analyzer,
// composer, and persistence layers. The core treats incoming history as an
// ordered, read-only sequence; it never mutates turns it did not create.
package conversation

// Role identifies the speaker of a turn.
type Role string

const (
	// RoleStudent is the student side of the exchange ("user" on the wire).
	RoleStudent Role = "user"
	// RoleTutor is the AI tutor side ("model" on the wire).
	RoleTutor Role = "model"
)

// Turn is a single utterance in a tutoring conversation.
type Turn struct {
	Role Role
	Text string

	// ResponseType is the classification label attached to student turns
	// when they were originally analyzed. Empty for tutor turns and for
	// turns that predate classification.
	ResponseType string
}

// LastN returns the most recent n turns, or all of them if fewer exist.
func LastN(history []Turn, n int) []Turn {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// PreviousTypes extracts the response-type labels of prior student turns,
// keeping at most the five most recent.
func PreviousTypes(history []Turn) []string {
	var types []string
	for _, t := range history {
		if t.ResponseType != "" {
			types = append(types, t.ResponseType)
		}
	}
	if len(types) > 5 {
		types = types[len(types)-5:]
	}
	return types
}
