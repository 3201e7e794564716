package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/db"
	"github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
)

type progressBlob struct {
	Progress  map[string]bool `json:"progress"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProgressStore implements usecase/checklist.SessionRepository.
type ProgressStore struct {
	store  store
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewProgressStore creates a checklist progress store. ttl <= 0 keeps sessions forever.
func NewProgressStore(s store, prefix string, ttl time.Duration, logger *zap.Logger) *ProgressStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressStore{store: s, prefix: prefix, ttl: ttl, logger: logger}
}

func (p *ProgressStore) key(sessionID string) string {
	return p.prefix + "checklist:" + hashKey(sessionID)
}

// Load returns the session state. found is false when nothing is stored.
// An undecodable blob loads as empty progress.
func (p *ProgressStore) Load(ctx context.Context, sessionID string) (checklist.Session, bool, error) {
	empty := checklist.Session{ID: sessionID, Progress: checklist.Progress{}}

	data, err := p.store.Get(ctx, p.key(sessionID))
	if errors.Is(err, db.ErrKeyNotFound) {
		return empty, false, nil
	}
	if err != nil {
		return checklist.Session{}, false, fmt.Errorf("load checklist progress: %w", err)
	}

	var blob progressBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		p.logger.Warn("discarding undecodable checklist progress", zap.Error(err))
		return empty, true, nil
	}
	if blob.Progress == nil {
		blob.Progress = map[string]bool{}
	}
	return checklist.Session{ID: sessionID, Progress: blob.Progress, UpdatedAt: blob.UpdatedAt}, true, nil
}

// Save writes the session state and refreshes its TTL.
func (p *ProgressStore) Save(ctx context.Context, s checklist.Session) error {
	progress := s.Progress
	if progress == nil {
		progress = checklist.Progress{}
	}
	data, err := json.Marshal(progressBlob{Progress: progress, UpdatedAt: s.UpdatedAt.UTC()})
	if err != nil {
		return fmt.Errorf("marshal checklist progress: %w", err)
	}
	if err := p.store.SetWithTTL(ctx, p.key(s.ID), data, p.ttl); err != nil {
		return fmt.Errorf("save checklist progress: %w", err)
	}
	return nil
}

// Delete removes the session state.
func (p *ProgressStore) Delete(ctx context.Context, sessionID string) error {
	if err := p.store.Del(ctx, p.key(sessionID)); err != nil {
		return fmt.Errorf("delete checklist progress: %w", err)
	}
	return nil
}
