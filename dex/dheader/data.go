package dheader

import (
	"encoding/binary"
	"strings"
)

type (
	// Header is a view over a caller-owned DEX file buffer. It keeps a
	// reference to the full buffer since the checksum region runs from
	// the end of the checksum field to the end of the file.
	Header struct {
		raw []byte
	}
	// Fields holds every fixed field of a full 112-byte DEX header.
	// Everything past the checksum is read-only.
	Fields struct {
		Magic         []byte `json:"magic"`
		Checksum      uint32 `json:"checksum"`
		Signature     []byte `json:"signature"`
		FileSize      uint32 `json:"file_size"`
		HeaderSize    uint32 `json:"header_size"`
		EndianTag     uint32 `json:"endian_tag"`
		LinkSize      uint32 `json:"link_size"`
		LinkOff       uint32 `json:"link_off"`
		MapOff        uint32 `json:"map_off"`
		StringIDsSize uint32 `json:"string_ids_size"`
		StringIDsOff  uint32 `json:"string_ids_off"`
		TypeIDsSize   uint32 `json:"type_ids_size"`
		TypeIDsOff    uint32 `json:"type_ids_off"`
		ProtoIDsSize  uint32 `json:"proto_ids_size"`
		ProtoIDsOff   uint32 `json:"proto_ids_off"`
		FieldIDsSize  uint32 `json:"field_ids_size"`
		FieldIDsOff   uint32 `json:"field_ids_off"`
		MethodIDsSize uint32 `json:"method_ids_size"`
		MethodIDsOff  uint32 `json:"method_ids_off"`
		ClassDefsSize uint32 `json:"class_defs_size"`
		ClassDefsOff  uint32 `json:"class_defs_off"`
		DataSize      uint32 `json:"data_size"`
		DataOff       uint32 `json:"data_off"`
	}
)

const (
	MagicSize            = 8
	ChecksumOffset       = 8
	ChecksumSize         = 4
	SignatureOffset      = 12
	SignatureSize        = 20
	ChecksumRegionOffset = SignatureOffset
	// MinSize is magic + checksum + signature. Parsing needs no more;
	// the rest of the header is opaque to the checksum protocol.
	MinSize  = MagicSize + ChecksumSize + SignatureSize
	FullSize = 112

	EndianConstant = 0x12345678
)

var (
	// MagicPrefixBytes is "dex\n". The two version digits and the
	// trailing zero byte vary between format revisions and are not
	// validated on parse.
	MagicPrefixBytes = []byte{0x64, 0x65, 0x78, 0x0A}
)

func IsValidMagicNumber(bs []byte) bool {
	if len(bs) < len(MagicPrefixBytes) {
		return false
	}
	for i, b := range MagicPrefixBytes {
		if bs[i] != b {
			return false
		}
	}
	return true
}

// IsKnownVersion reports whether the version bytes of the magic hold
// three ASCII digits followed by a zero byte. Parse does not use it;
// callers wanting strict version checking can.
func IsKnownVersion(bs []byte) bool {
	if len(bs) < MagicSize {
		return false
	}
	for _, b := range bs[4:7] {
		if b < '0' || b > '9' {
			return false
		}
	}
	return bs[7] == 0
}

func (r Header) Magic() []byte {
	return r.raw[:MagicSize]
}

func (r Header) Version() string {
	return strings.TrimRight(string(r.raw[4:MagicSize]), "\x00")
}

func (r Header) Checksum() uint32 {
	return binary.LittleEndian.Uint32(r.raw[ChecksumOffset : ChecksumOffset+ChecksumSize])
}

func (r Header) Signature() []byte {
	return r.raw[SignatureOffset : SignatureOffset+SignatureSize]
}

// ChecksumRegion is every byte the checksum covers: everything after
// the checksum field, signature included, through end of file.
func (r Header) ChecksumRegion() []byte {
	return r.raw[ChecksumRegionOffset:]
}

func (r Header) Raw() []byte {
	return r.raw
}
