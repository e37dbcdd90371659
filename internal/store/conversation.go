package store

import (
	"context"
	"fmt"
	"time"

	"github.com/seonho/tutorkit/ent"
	"github.com/seonho/tutorkit/ent/conversationturn"
)

// TurnRecord is one persisted conversation turn. Student turns carry the
// classification label and confidence assigned when the turn was handled.
type TurnRecord struct {
	Sequence     int64
	SessionID    string
	Role         string
	Text         string
	ResponseType string
	Confidence   float64
	CreatedAt    time.Time
}

// ConversationRepo is the append-only conversation log.
type ConversationRepo interface {
	// Append writes a turn, assigning its global sequence number.
	Append(ctx context.Context, turn *TurnRecord) error

	// History returns a session's turns in append order.
	History(ctx context.Context, sessionID string) ([]TurnRecord, error)
}

// conversationRepo implements ConversationRepo backed by ent and the
// global sequence counter.
type conversationRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *conversationRepo) Append(ctx context.Context, turn *TurnRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	turn.Sequence = seqNum
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	_, err = r.client.ConversationTurn.Create().
		SetSequence(turn.Sequence).
		SetTimestamp(turn.CreatedAt).
		SetSessionID(turn.SessionID).
		SetRole(turn.Role).
		SetText(turn.Text).
		SetResponseType(turn.ResponseType).
		SetConfidence(turn.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

func (r *conversationRepo) History(ctx context.Context, sessionID string) ([]TurnRecord, error) {
	rows, err := r.client.ConversationTurn.Query().
		Where(conversationturn.SessionID(sessionID)).
		Order(ent.Asc(conversationturn.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	out := make([]TurnRecord, 0, len(rows))
	for _, t := range rows {
		out = append(out, TurnRecord{
			Sequence:     t.Sequence,
			SessionID:    t.SessionID,
			Role:         t.Role,
			Text:         t.Text,
			ResponseType: t.ResponseType,
			Confidence:   t.Confidence,
			CreatedAt:    t.Timestamp,
		})
	}
	return out, nil
}
