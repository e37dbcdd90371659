package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seonho/tutorkit/ent"
	entsession "github.com/seonho/tutorkit/ent/session"
)

// ErrSessionNotFound is returned when a session id has no row.
var ErrSessionNotFound = errors.New("session not found")

// Session is a tutoring session aggregate. MessageCount is maintained with
// atomic in-database increments so concurrent turns for the same session
// never lose updates.
type Session struct {
	ID           string
	Subject      string
	StudentName  string
	Grade        string
	MessageCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionRepo manages session aggregates.
type SessionRepo interface {
	// Create inserts a new session row.
	Create(ctx context.Context, sess *Session) error

	// Get loads a session by id. Returns ErrSessionNotFound if absent.
	Get(ctx context.Context, id string) (*Session, error)

	// BumpMessageCount atomically increments the session's message count
	// and refreshes its updated_at timestamp.
	BumpMessageCount(ctx context.Context, id string) error

	// List returns sessions ordered by most recently updated.
	List(ctx context.Context, limit int) ([]Session, error)
}

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, sess *Session) error {
	now := time.Now().UTC()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = sess.CreatedAt

	_, err := r.client.Session.Create().
		SetSessionID(sess.ID).
		SetSubject(sess.Subject).
		SetStudentName(sess.StudentName).
		SetGrade(sess.Grade).
		SetCreatedAt(sess.CreatedAt).
		SetUpdatedAt(sess.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	s, err := r.client.Session.Query().
		Where(entsession.SessionID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return entSessionToSession(s), nil
}

func (r *sessionRepo) BumpMessageCount(ctx context.Context, id string) error {
	n, err := r.client.Session.Update().
		Where(entsession.SessionID(id)).
		AddMessageCount(1).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("bump message count: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, limit int) ([]Session, error) {
	q := r.client.Session.Query().
		Order(ent.Desc(entsession.FieldUpdatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]Session, 0, len(rows))
	for _, s := range rows {
		out = append(out, *entSessionToSession(s))
	}
	return out, nil
}

// entSessionToSession converts an ent Session to a store Session.
func entSessionToSession(s *ent.Session) *Session {
	return &Session{
		ID:           s.SessionID,
		Subject:      s.Subject,
		StudentName:  s.StudentName,
		Grade:        s.Grade,
		MessageCount: s.MessageCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
