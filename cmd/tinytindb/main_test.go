package main

import (
	"testing"

	"github.com/kumarUjjawal/tinytindb/config"
	"github.com/kumarUjjawal/tinytindb/pagedir"
	"github.com/stretchr/testify/assert"
)

func TestNewPageDir(t *testing.T) {
	assert.IsType(t, &pagedir.BTree{}, newPageDir(config.PageDirBTree))
	assert.IsType(t, &pagedir.Array{}, newPageDir(config.PageDirArray))
}

func TestRun_BadFlags(t *testing.T) {
	err := run([]string{"-pagedir", "hash"})
	assert.Error(t, err)
}
