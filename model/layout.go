package model

/*
row layout:
	id(4) | username(32) | email(255)
	text columns are left-packed and zero-padded
*/

const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize
)

const (
	PageSize      = 4096
	TableMaxPages = 100

	RowsPerPage  = PageSize / RowSize
	TableMaxRows = RowsPerPage * TableMaxPages
)
