package pagedir

import "github.com/kumarUjjawal/tinytindb/model"

var _ PageDir = (*Array)(nil)

// Array is the default PageDir, one nullable slot per possible page
type Array struct {
	pages [model.TableMaxPages]*model.Page
	size  int
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Get(num uint32) *model.Page {
	if num >= model.TableMaxPages {
		return nil
	}
	return a.pages[num]
}

// Put refuse page numbers beyond the arena
func (a *Array) Put(num uint32, page *model.Page) bool {
	if num >= model.TableMaxPages || page == nil {
		return false
	}
	if a.pages[num] == nil {
		a.size++
	}
	a.pages[num] = page
	return true
}

func (a *Array) Size() int {
	return a.size
}

func (a *Array) Close() error {
	a.pages = [model.TableMaxPages]*model.Page{}
	a.size = 0
	return nil
}
