package dheader

import (
	"fmt"
)

type (
	ErrTooShort struct {
		Length   int
		Required int
	}
	ErrBadMagic struct {
		Magic []byte
	}
)

func (r ErrTooShort) Error() string {
	return fmt.Sprintf(
		"dex file too short: got %d bytes, need at least %d",
		r.Length, r.Required,
	)
}

func (r ErrBadMagic) Error() string {
	return fmt.Sprintf(
		`invalid magic number: expected prefix "%v", got "%v"`,
		MagicPrefixBytes, r.Magic,
	)
}
