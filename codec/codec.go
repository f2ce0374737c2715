package codec

import "github.com/kumarUjjawal/tinytindb/model"

type Codec interface {
	// MarshalRow write the encoded row into dst, dst must hold model.RowSize bytes
	MarshalRow(*model.Row, []byte) error

	UnmarshalRow([]byte, *model.Row) error
}
