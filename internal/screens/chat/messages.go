package chat

import (
	"time"

	"github.com/seonho/tutorkit/internal/tutor"
)

// replyMsg is sent when the tutor's response for a turn arrives.
type replyMsg struct {
	Reply *tutor.Reply
	Err   error
}

// thinkingTickMsg animates the waiting indicator.
type thinkingTickMsg time.Time
