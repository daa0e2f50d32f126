// Package dex stores the code to inspect and repair the checksum of
// DEX (Dalvik Executable) files.
package dex

import (
	"dex-checksum-tools/dex/dheader"
)

func IsDexFile(bs []byte) bool {
	return dheader.IsValidMagicNumber(bs)
}
