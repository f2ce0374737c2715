package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, 291, RowSize)
	assert.Equal(t, 14, RowsPerPage)
	assert.Equal(t, 1400, TableMaxRows)
	assert.Equal(t, 4, UsernameOffset)
	assert.Equal(t, 36, EmailOffset)
	assert.Equal(t, 22, PageSize-RowsPerPage*RowSize)
}

func TestNewRow(t *testing.T) {
	row, err := NewRow(1, "alice", "alice@example.com")
	assert.Nil(t, err)
	assert.Equal(t, uint32(1), row.ID)
	assert.Equal(t, "alice", row.Username)
	assert.Equal(t, "alice@example.com", row.Email)

	row, err = NewRow(2, strings.Repeat("a", UsernameSize), strings.Repeat("b", EmailSize))
	assert.Nil(t, err)
	assert.NotNil(t, row)
}

func TestNewRow_TooLong(t *testing.T) {
	row, err := NewRow(1, strings.Repeat("a", UsernameSize+1), "a@b.c")
	assert.Nil(t, row)
	assert.Equal(t, ErrUsernameTooLong, err)

	row, err = NewRow(1, "a", strings.Repeat("b", EmailSize+1))
	assert.Nil(t, row)
	assert.Equal(t, ErrEmailTooLong, err)

	// the limit is on bytes, not runes
	row, err = NewRow(1, strings.Repeat("é", 17), "a@b.c")
	assert.Nil(t, row)
	assert.Equal(t, ErrUsernameTooLong, err)
}

func TestPage_Slot(t *testing.T) {
	page := NewPage(3)
	assert.Equal(t, uint32(3), page.Num)

	slot := page.Slot(0)
	assert.Equal(t, RowSize, len(slot))
	assert.Equal(t, RowSize, cap(slot))

	slot = page.Slot(RowsPerPage - 1)
	assert.Equal(t, RowSize, len(slot))
	slot[0] = 7
	assert.Equal(t, byte(7), page.Data[(RowsPerPage-1)*RowSize])

	assert.Nil(t, page.Slot(RowsPerPage))
	assert.Nil(t, page.Slot(-1))
}
