package pagedir

import (
	"github.com/google/btree"
	"github.com/kumarUjjawal/tinytindb/model"
)

var _ PageDir = (*BTree)(nil)

const defaultDegree = 8

// BTree keep only the allocated pages, ordered by page number
type BTree struct {
	tree *btree.BTree
}

// Item implement the btree.Item interface
type Item struct {
	num  uint32
	page *model.Page
}

func (i *Item) Less(than btree.Item) bool {
	return i.num < than.(*Item).num
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{
		tree: btree.New(degree),
	}
}

func (bt *BTree) Get(num uint32) *model.Page {
	btItem := bt.tree.Get(&Item{num: num})
	if btItem == nil {
		return nil
	}
	return btItem.(*Item).page
}

func (bt *BTree) Put(num uint32, page *model.Page) bool {
	if num >= model.TableMaxPages || page == nil {
		return false
	}
	bt.tree.ReplaceOrInsert(&Item{
		num:  num,
		page: page,
	})
	return true
}

func (bt *BTree) Size() int {
	return bt.tree.Len()
}

func (bt *BTree) Close() error {
	bt.tree.Clear(false)
	return nil
}
