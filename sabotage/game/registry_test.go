package game

import (
	"errors"
	"testing"
)

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry()
	id, session := r.Create(&Player{ID: 1, NickName: "alice"})
	if id == "" {
		t.Fatal("expected non-empty game ID")
	}
	if session.Phase != PhaseWaitingForOpponent {
		t.Fatalf("expected waiting_for_opponent, got %s", session.Phase)
	}
	if c, err := session.PlayerColor(1); err != nil || c != Red {
		t.Fatalf("expected creator assigned red, got %s (%v)", c, err)
	}
	if got, ok := r.Get(id); !ok || got != session {
		t.Fatal("expected to find created session by ID")
	}
}

func TestRegistryJoin(t *testing.T) {
	r := NewRegistry()
	id, _ := r.Create(&Player{ID: 1})

	if _, err := r.Join("no-such-game", &Player{ID: 2}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := r.Join(id, &Player{ID: 1}); !errors.Is(err, ErrSelfJoin) {
		t.Fatalf("expected ErrSelfJoin, got %v", err)
	}

	session, err := r.Join(id, &Player{ID: 2})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if session.Phase != PhaseInitSelectRed || session.CurrentPlayer != Red {
		t.Fatalf("expected init_select_red/red, got %s/%s", session.Phase, session.CurrentPlayer)
	}

	if _, err := r.Join(id, &Player{ID: 3}); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
}

func TestRegistryRemoveIdempotent(t *testing.T) {
	r := NewRegistry()
	id, _ := r.Create(&Player{ID: 1})
	r.Remove(id)
	if _, ok := r.Get(id); ok {
		t.Fatal("expected session to be removed")
	}
	r.Remove(id) // 2回目は何も起きない
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistryFindByParticipant(t *testing.T) {
	r := NewRegistry()
	id, _ := r.Create(&Player{ID: 1})
	if _, err := r.Join(id, &Player{ID: 2}); err != nil {
		t.Fatalf("join: %v", err)
	}

	foundID, session, ok := r.FindByParticipant(2)
	if !ok || foundID != id || session == nil {
		t.Fatalf("expected to find session for participant 2, got %q ok=%v", foundID, ok)
	}
	if _, _, ok := r.FindByParticipant(99); ok {
		t.Fatal("expected no session for unknown participant")
	}
}
