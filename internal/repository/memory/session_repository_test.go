package memory

import (
	"testing"
	"time"

	"construction-deepwiki-be/pkg/store"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	repo.Save(&store.Session{Id: "session_abc", CurrentPage: "overview"})

	session, found := repo.Get("session_abc")
	if !found {
		t.Fatal("saved session not found")
	}
	if session.CurrentPage != "overview" {
		t.Errorf("page = %q, want overview", session.CurrentPage)
	}

	// Sessions are stored by reference: mutate and re-save is the
	// update path.
	session.CurrentPage = "site_detail"
	repo.Save(session)
	again, _ := repo.Get("session_abc")
	if again.CurrentPage != "site_detail" {
		t.Errorf("page after update = %q, want site_detail", again.CurrentPage)
	}
}

func TestSessionRepositoryMiss(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	if _, found := repo.Get("session_missing"); found {
		t.Error("unknown session id resolved")
	}
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	repo.Save(&store.Session{Id: "session_gone"})
	repo.Delete("session_gone")

	if _, found := repo.Get("session_gone"); found {
		t.Error("deleted session still resolves")
	}
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)

	repo.Save(&store.Session{Id: "session_brief"})
	if _, found := repo.Get("session_brief"); !found {
		t.Fatal("session missing before its TTL")
	}

	time.Sleep(40 * time.Millisecond)
	if _, found := repo.Get("session_brief"); found {
		t.Error("session survived its TTL")
	}
}
