package pagedir

import "github.com/kumarUjjawal/tinytindb/model"

// PageDir owns the allocated pages of a table, addressed by page number.
// you can use some other data structure once you implement this interface
type PageDir interface {
	// Get return nil if the page has not been allocated
	Get(num uint32) *model.Page
	Put(num uint32, page *model.Page) bool
	// Size return the number of allocated pages
	Size() int
	Close() error
}
