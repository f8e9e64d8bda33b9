package store

import (
	"errors"
	"testing"

	"github.com/notevault/notevault/internal/db"
	"github.com/notevault/notevault/internal/models"
)

func newSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()
	conn, err := db.InitSQLite(":memory:")
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewSQLStore(conn)
}

func TestSQLStoreUserRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)

	u := &models.User{Name: "Ann", Email: "a@x.com", Password: "hash"}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned user id")
	}

	got, err := s.UserByEmail("a@x.com")
	if err != nil {
		t.Fatalf("user by email: %v", err)
	}
	if got.ID != u.ID || got.Name != "Ann" || got.Password != "hash" {
		t.Fatalf("got %+v, want stored user", got)
	}

	if _, err := s.UserByEmail("nobody@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLStoreDuplicateEmail(t *testing.T) {
	s := newSQLiteStore(t)

	if err := s.CreateUser(&models.User{Name: "Ann", Email: "a@x.com", Password: "h"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	err := s.CreateUser(&models.User{Name: "Other", Email: "a@x.com", Password: "h"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestSQLStoreNoteTagsRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)

	u := &models.User{Name: "Ann", Email: "a@x.com", Password: "h"}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	note := &models.Note{UserID: u.ID, Title: "T", Content: "C", Tags: []string{"work", "urgent"}}
	if err := s.CreateNote(note); err != nil {
		t.Fatalf("create note: %v", err)
	}

	got, err := s.NoteByID(note.ID, u.ID)
	if err != nil {
		t.Fatalf("note by id: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "work" || got.Tags[1] != "urgent" {
		t.Fatalf("tags = %v, want [work urgent]", got.Tags)
	}
}

func TestSQLStoreOwnerScoping(t *testing.T) {
	s := newSQLiteStore(t)

	ann := &models.User{Name: "Ann", Email: "a@x.com", Password: "h"}
	bob := &models.User{Name: "Bob", Email: "b@x.com", Password: "h"}
	for _, u := range []*models.User{ann, bob} {
		if err := s.CreateUser(u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	note := &models.Note{UserID: ann.ID, Title: "T", Content: "C"}
	if err := s.CreateNote(note); err != nil {
		t.Fatalf("create note: %v", err)
	}

	if _, err := s.NoteByID(note.ID, bob.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user read: err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteNote(note.ID, bob.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete: err = %v, want ErrNotFound", err)
	}

	notes, err := s.NotesByUser(bob.ID)
	if err != nil {
		t.Fatalf("notes by user: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("bob sees %d notes, want 0", len(notes))
	}
}

func TestSQLStoreUpdateNote(t *testing.T) {
	s := newSQLiteStore(t)

	u := &models.User{Name: "Ann", Email: "a@x.com", Password: "h"}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	note := &models.Note{UserID: u.ID, Title: "T", Content: "C"}
	if err := s.CreateNote(note); err != nil {
		t.Fatalf("create note: %v", err)
	}

	note.Tags = []string{"a"}
	note.IsPinned = true
	if err := s.UpdateNote(note); err != nil {
		t.Fatalf("update note: %v", err)
	}

	got, err := s.NoteByID(note.ID, u.ID)
	if err != nil {
		t.Fatalf("note by id: %v", err)
	}
	if got.Title != "T" || got.Content != "C" {
		t.Fatalf("got %+v, want title/content unchanged", got)
	}
	if !got.IsPinned || len(got.Tags) != 1 {
		t.Fatalf("got %+v, want pinned with one tag", got)
	}
}
