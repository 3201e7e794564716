package checklist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
	"github.com/kailas-cloud/earlyhelp/internal/metrics"
)

// Evaluation is a session together with its current score.
type Evaluation struct {
	Session domchecklist.Session
	Result  domchecklist.Result
}

// Service runs the self-assessment checklist and its anonymous sessions.
type Service struct {
	sessions SessionRepository
	now      func() time.Time
	newID    func() string
}

// New creates a checklist service.
func New(sessions SessionRepository) *Service {
	return &Service{sessions: sessions, now: time.Now, newID: uuid.NewString}
}

// Catalog returns the checklist items in display order.
func (s *Service) Catalog() []domchecklist.Item {
	return domchecklist.Catalog()
}

// Score interprets progress without persisting anything.
func (s *Service) Score(progress domchecklist.Progress) domchecklist.Result {
	res := domchecklist.Score(progress)
	metrics.ChecklistEvaluationsTotal.WithLabelValues(string(res.Level)).Inc()
	return res
}

// Start opens a new session with no items checked.
func (s *Service) Start(ctx context.Context) (Evaluation, error) {
	sess := domchecklist.Session{ID: s.newID(), Progress: domchecklist.Progress{}, UpdatedAt: s.now().UTC()}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return Evaluation{}, fmt.Errorf("start session: %w", err)
	}
	return Evaluation{Session: sess, Result: s.Score(sess.Progress)}, nil
}

// Load returns a stored session and its score.
func (s *Service) Load(ctx context.Context, sessionID string) (Evaluation, error) {
	if err := validateID(sessionID); err != nil {
		return Evaluation{}, err
	}
	sess, found, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return Evaluation{}, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return Evaluation{}, domain.ErrSessionNotFound
	}
	return Evaluation{Session: sess, Result: s.Score(sess.Progress)}, nil
}

// Save replaces the session progress. Ids outside the catalog are dropped.
func (s *Service) Save(ctx context.Context, sessionID string, progress domchecklist.Progress) (Evaluation, error) {
	if err := validateID(sessionID); err != nil {
		return Evaluation{}, err
	}
	sess := domchecklist.Session{ID: sessionID, Progress: progress.Clean(), UpdatedAt: s.now().UTC()}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return Evaluation{}, fmt.Errorf("save session: %w", err)
	}
	return Evaluation{Session: sess, Result: s.Score(sess.Progress)}, nil
}

// Reset discards a session.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	if err := validateID(sessionID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: session id must be a UUID", domain.ErrInvalidRequest)
	}
	return nil
}
