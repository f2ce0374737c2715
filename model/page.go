package model

// Page holds RowsPerPage encoded rows back to back,
// the tail of PageSize%RowSize bytes is never used
type Page struct {
	Num  uint32
	Data [PageSize]byte
}

func NewPage(num uint32) *Page {
	return &Page{Num: num}
}

// Slot return the byte window of the idx-th row in the page
func (p *Page) Slot(idx int) []byte {
	if idx < 0 || idx >= RowsPerPage {
		return nil
	}
	offset := idx * RowSize
	return p.Data[offset : offset+RowSize : offset+RowSize]
}
