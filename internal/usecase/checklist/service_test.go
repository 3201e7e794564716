package checklist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
)

const testSessionID = "0b6f7a3e-3c55-4a8f-9d1c-2f4e5a6b7c8d"

// --- Mocks ---

type mockSessions struct {
	data    map[string]domchecklist.Session
	loadErr error
	saveErr error
	deleted []string
}

func newMockSessions() *mockSessions {
	return &mockSessions{data: map[string]domchecklist.Session{}}
}

func (m *mockSessions) Load(_ context.Context, id string) (domchecklist.Session, bool, error) {
	if m.loadErr != nil {
		return domchecklist.Session{}, false, m.loadErr
	}
	s, ok := m.data[id]
	if !ok {
		return domchecklist.Session{ID: id, Progress: domchecklist.Progress{}}, false, nil
	}
	return s, true, nil
}

func (m *mockSessions) Save(_ context.Context, s domchecklist.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[s.ID] = s
	return nil
}

func (m *mockSessions) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.data, id)
	return nil
}

func newTestService(repo *mockSessions) *Service {
	svc := New(repo)
	svc.now = func() time.Time { return time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return testSessionID }
	return svc
}

// --- Tests ---

func TestCatalog(t *testing.T) {
	if n := len(New(newMockSessions()).Catalog()); n != 8 {
		t.Errorf("catalog size = %d", n)
	}
}

func TestScore(t *testing.T) {
	svc := New(newMockSessions())
	res := svc.Score(domchecklist.Progress{"c1": true, "c2": true, "c8": true})
	if res.CheckedCount != 3 || res.Level != domchecklist.LevelSeveral {
		t.Errorf("Score = %+v", res)
	}
}

func TestStart(t *testing.T) {
	repo := newMockSessions()
	svc := newTestService(repo)

	ev, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Session.ID != testSessionID || ev.Result.CheckedCount != 0 || ev.Result.Level != domchecklist.LevelNone {
		t.Errorf("Start = %+v", ev)
	}
	if _, ok := repo.data[testSessionID]; !ok {
		t.Error("session not persisted")
	}
}

func TestStart_SaveError(t *testing.T) {
	repo := newMockSessions()
	repo.saveErr = errors.New("down")
	if _, err := newTestService(repo).Start(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	repo := newMockSessions()
	svc := newTestService(repo)
	ctx := context.Background()

	ev, err := svc.Save(ctx, testSessionID, domchecklist.Progress{"c1": true, "c3": true, "c4": true, "c6": true, "c7": true, "zz": true})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ev.Result.CheckedCount != 5 || ev.Result.Level != domchecklist.LevelMultiple {
		t.Errorf("Save result = %+v", ev.Result)
	}
	if _, ok := ev.Session.Progress["zz"]; ok {
		t.Error("unknown id persisted")
	}

	loaded, err := svc.Load(ctx, testSessionID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Result.CheckedCount != 5 || len(loaded.Result.NextSteps) != 6 {
		t.Errorf("Load result = %+v", loaded.Result)
	}
}

func TestLoad_NotFound(t *testing.T) {
	svc := newTestService(newMockSessions())
	if _, err := svc.Load(context.Background(), testSessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestLoad_InvalidID(t *testing.T) {
	svc := newTestService(newMockSessions())
	for _, id := range []string{"", "not-a-uuid", "../../etc"} {
		if _, err := svc.Load(context.Background(), id); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("Load(%q): expected ErrInvalidRequest, got %v", id, err)
		}
	}
}

func TestLoad_RepoError(t *testing.T) {
	repo := newMockSessions()
	repo.loadErr = errors.New("down")
	if _, err := newTestService(repo).Load(context.Background(), testSessionID); err == nil {
		t.Fatal("expected error")
	}
}

func TestReset(t *testing.T) {
	repo := newMockSessions()
	svc := newTestService(repo)
	_, _ = svc.Start(context.Background())

	if err := svc.Reset(context.Background(), testSessionID); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Errorf("deleted = %v", repo.deleted)
	}
	if err := svc.Reset(context.Background(), "bad"); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}
