package dheader

import (
	"dex-checksum-tools/dex/lbytes"
)

// PutChecksum overwrites the checksum field of bs in place with the
// little-endian encoding of value. The buffer must have passed Parse;
// no other byte is touched.
func PutChecksum(bs []byte, value uint32) {
	copy(bs[ChecksumOffset:ChecksumOffset+ChecksumSize], lbytes.EncodeUint32(value))
}
