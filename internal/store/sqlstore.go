package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"

	"github.com/notevault/notevault/internal/models"
)

// SQLStore implements Store on database/sql. The same statements work
// against both the MySQL and SQLite backends.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreateUser(user *models.User) error {
	user.CreatedOn = time.Now().UTC()

	res, err := s.db.Exec(
		"INSERT INTO users (name, email, password, created_at) VALUES (?, ?, ?, ?)",
		user.Name, user.Email, user.Password, user.CreatedOn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	user.ID = int(id)
	return nil
}

func (s *SQLStore) UserByEmail(email string) (*models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, name, email, password, created_at FROM users WHERE email=?",
		email,
	)
	return scanUser(row)
}

func (s *SQLStore) UserByID(id int) (*models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, name, email, password, created_at FROM users WHERE id=?",
		id,
	)
	return scanUser(row)
}

func (s *SQLStore) CreateNote(note *models.Note) error {
	if note.Tags == nil {
		note.Tags = []string{}
	}
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	note.CreatedOn = time.Now().UTC()

	res, err := s.db.Exec(
		"INSERT INTO notes (user_id, title, content, tags, is_pinned, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		note.UserID, note.Title, note.Content, string(tags), note.IsPinned, note.CreatedOn,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("note id: %w", err)
	}
	note.ID = int(id)
	return nil
}

func (s *SQLStore) NoteByID(id, userID int) (*models.Note, error) {
	row := s.db.QueryRow(
		"SELECT id, user_id, title, content, tags, is_pinned, created_at FROM notes WHERE id=? AND user_id=?",
		id, userID,
	)
	return scanNote(row)
}

func (s *SQLStore) NotesByUser(userID int) ([]models.Note, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, title, content, tags, is_pinned, created_at FROM notes WHERE user_id=? ORDER BY is_pinned DESC, created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan notes: %w", err)
	}
	return notes, nil
}

// UpdateNote persists all note fields. Callers are expected to have
// loaded the note through an owner-scoped NoteByID first; the WHERE
// clause keeps the write owner-scoped regardless.
func (s *SQLStore) UpdateNote(note *models.Note) error {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	_, err = s.db.Exec(
		"UPDATE notes SET title=?, content=?, tags=?, is_pinned=? WHERE id=? AND user_id=?",
		note.Title, note.Content, string(tags), note.IsPinned, note.ID, note.UserID,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (s *SQLStore) DeleteNote(id, userID int) error {
	res, err := s.db.Exec("DELETE FROM notes WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedOn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func scanNote(row scanner) (*models.Note, error) {
	var n models.Note
	var tags string
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &tags, &n.IsPinned, &n.CreatedOn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	n.Tags = []string{}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	return &n, nil
}

func isUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true
	}
	return false
}
