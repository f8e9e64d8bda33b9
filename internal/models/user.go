package models

import "time"

type User struct {
	ID        int       `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedOn time.Time `json:"createdOn"`
}
