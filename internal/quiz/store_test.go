package quiz

import "testing"

func TestSessionStore_GetCreatesOnce(t *testing.T) {
	store := NewSessionStore()

	first := store.Get(100)
	second := store.Get(100)

	if first != second {
		t.Error("Get() returned different sessions for the same chat")
	}
	if first.State() != StateIdle {
		t.Errorf("fresh session state = %q, want %q", first.State(), StateIdle)
	}
}

func TestSessionStore_ChatsAreIsolated(t *testing.T) {
	store := NewSessionStore()

	a := store.Get(1)
	b := store.Get(2)
	if a == b {
		t.Fatal("Get() shared one session across chats")
	}

	if err := a.BeginSelection(); err != nil {
		t.Fatalf("BeginSelection() error = %v", err)
	}
	if b.State() != StateIdle {
		t.Errorf("chat 2 state = %q after chat 1 started selecting, want %q", b.State(), StateIdle)
	}
}

func TestSessionStore_ReplaceInstallsFreshSession(t *testing.T) {
	store := NewSessionStore()

	old := store.Get(5)
	if err := old.BeginSelection(); err != nil {
		t.Fatalf("BeginSelection() error = %v", err)
	}

	fresh := store.Replace(5)
	if fresh == old {
		t.Fatal("Replace() returned the old session")
	}
	if fresh.State() != StateIdle {
		t.Errorf("replaced session state = %q, want %q", fresh.State(), StateIdle)
	}
	if store.Get(5) != fresh {
		t.Error("Get() after Replace() did not return the new session")
	}
}
