package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/kumarUjjawal/tinytindb/model"
)

var _ Codec = (*CodecImpl)(nil)

type CodecImpl struct{}

func NewCodecImpl() *CodecImpl {
	return &CodecImpl{}
}

/*
default codec:
	- id: uint32 little endian (4)
	- username: raw bytes, zero padded (32)
	- email: raw bytes, zero padded (255)
	id | username | email
*/

func (cl *CodecImpl) MarshalRow(row *model.Row, dst []byte) error {
	if len(dst) < model.RowSize {
		return io.ErrShortBuffer
	}
	if err := row.Validate(); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(dst[model.IDOffset:model.UsernameOffset], row.ID)
	putText(dst[model.UsernameOffset:model.EmailOffset], row.Username)
	putText(dst[model.EmailOffset:model.RowSize], row.Email)

	return nil
}

func (cl *CodecImpl) UnmarshalRow(src []byte, row *model.Row) error {
	if len(src) < model.RowSize {
		return io.ErrShortBuffer
	}

	row.ID = binary.LittleEndian.Uint32(src[model.IDOffset:model.UsernameOffset])
	row.Username = getText(src[model.UsernameOffset:model.EmailOffset])
	row.Email = getText(src[model.EmailOffset:model.RowSize])

	return nil
}

// putText copy s into the column and zero the rest of it
func putText(column []byte, s string) {
	n := copy(column, s)
	clear(column[n:])
}

func getText(column []byte) string {
	if end := bytes.IndexByte(column, 0); end >= 0 {
		column = column[:end]
	}
	// slots are only written by MarshalRow, bad utf8 means a corrupted slot
	if !utf8.Valid(column) {
		return ""
	}
	return string(column)
}
