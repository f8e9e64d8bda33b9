package store

import (
	"sort"
	"sync"

	"github.com/notevault/notevault/internal/models"
)

// Memory is an in-memory Store. It backs the handler tests and keeps
// the same owner-scoping semantics as SQLStore.
type Memory struct {
	mu     sync.Mutex
	users  map[int]models.User
	notes  map[int]models.Note
	nextID int
}

func NewMemory() *Memory {
	return &Memory{
		users: make(map[int]models.User),
		notes: make(map[int]models.Note),
	}
}

func (m *Memory) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) UserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UserByID(id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) CreateNote(note *models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if note.Tags == nil {
		note.Tags = []string{}
	}
	m.nextID++
	note.ID = m.nextID
	m.notes[note.ID] = *note
	return nil
}

func (m *Memory) NoteByID(id, userID int) (*models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok || n.UserID != userID {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (m *Memory) NotesByUser(userID int) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notes := []models.Note{}
	for _, n := range m.notes {
		if n.UserID == userID {
			notes = append(notes, n)
		}
	}
	// Pinned first, then newest first, matching SQLStore's ordering.
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].IsPinned != notes[j].IsPinned {
			return notes[i].IsPinned
		}
		return notes[i].ID > notes[j].ID
	})
	return notes, nil
}

func (m *Memory) UpdateNote(note *models.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.notes[note.ID]
	if !ok || existing.UserID != note.UserID {
		return ErrNotFound
	}
	m.notes[note.ID] = *note
	return nil
}

func (m *Memory) DeleteNote(id, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok || n.UserID != userID {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}
