// Package store holds the record store behind the API: keyed CRUD
// over users and notes plus an owner-filtered find. Every note
// operation takes the acting user's id as part of the query filter,
// never as a post-hoc check.
package store

import (
	"errors"

	"github.com/notevault/notevault/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type UserStore interface {
	CreateUser(user *models.User) error
	UserByEmail(email string) (*models.User, error)
	UserByID(id int) (*models.User, error)
}

type NoteStore interface {
	CreateNote(note *models.Note) error
	NoteByID(id, userID int) (*models.Note, error)
	NotesByUser(userID int) ([]models.Note, error)
	UpdateNote(note *models.Note) error
	DeleteNote(id, userID int) error
}

type Store interface {
	UserStore
	NoteStore
}
