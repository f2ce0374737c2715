package model

import "errors"

var (
	ErrUsernameTooLong = errors.New("username is too long")
	ErrEmailTooLong    = errors.New("email is too long")
)

// Row is the single record type of the table
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// NewRow validates the text fields against their column sizes
func NewRow(id uint32, username, email string) (*Row, error) {
	row := &Row{
		ID:       id,
		Username: username,
		Email:    email,
	}
	if err := row.Validate(); err != nil {
		return nil, err
	}
	return row, nil
}

// Validate check the byte length of the text fields
func (r *Row) Validate() error {
	if len(r.Username) > UsernameSize {
		return ErrUsernameTooLong
	}
	if len(r.Email) > EmailSize {
		return ErrEmailTooLong
	}
	return nil
}
