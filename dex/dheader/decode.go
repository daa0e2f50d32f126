package dheader

import (
	"dex-checksum-tools/dex/lbytes"
	"github.com/pkg/errors"
)

// Parse validates the magic number and wraps bs into a Header view.
// The buffer stays caller-owned; nothing is copied.
func Parse(bs []byte) (*Header, error) {
	if len(bs) < MinSize {
		return nil, ErrTooShort{Length: len(bs), Required: MinSize}
	}
	if !IsValidMagicNumber(bs[:MagicSize]) {
		return nil, ErrBadMagic{Magic: bs[:MagicSize]}
	}
	return &Header{raw: bs}, nil
}

func createMagicNumberReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		magicNumberBytes, err := reader.ReadBytes(MagicSize)
		if err != nil {
			return nil, err
		}
		if !IsValidMagicNumber(magicNumberBytes) {
			return nil, ErrBadMagic{Magic: magicNumberBytes}
		}
		return magicNumberBytes, nil
	}
}

// DecodeFields reads every fixed field of the full header. Only the
// header report needs this; the checksum protocol itself never looks
// past the signature.
func DecodeFields(bs []byte) (*Fields, error) {
	if len(bs) < FullSize {
		return nil, ErrTooShort{Length: len(bs), Required: FullSize}
	}
	reader := lbytes.NewBytesReader(bs)

	readMagicNumber := createMagicNumberReadFunction(reader)
	readSignature := lbytes.CreateNBytesReadFunction(reader, SignatureSize)
	readUint := lbytes.CreateUint32ReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "magic", ReadFunction: readMagicNumber},
		{Key: "checksum", ReadFunction: readUint},
		{Key: "signature", ReadFunction: readSignature},
		{Key: "file_size", ReadFunction: readUint},
		{Key: "header_size", ReadFunction: readUint},
		{Key: "endian_tag", ReadFunction: readUint},
		{Key: "link_size", ReadFunction: readUint},
		{Key: "link_off", ReadFunction: readUint},
		{Key: "map_off", ReadFunction: readUint},
		{Key: "string_ids_size", ReadFunction: readUint},
		{Key: "string_ids_off", ReadFunction: readUint},
		{Key: "type_ids_size", ReadFunction: readUint},
		{Key: "type_ids_off", ReadFunction: readUint},
		{Key: "proto_ids_size", ReadFunction: readUint},
		{Key: "proto_ids_off", ReadFunction: readUint},
		{Key: "field_ids_size", ReadFunction: readUint},
		{Key: "field_ids_off", ReadFunction: readUint},
		{Key: "method_ids_size", ReadFunction: readUint},
		{Key: "method_ids_off", ReadFunction: readUint},
		{Key: "class_defs_size", ReadFunction: readUint},
		{Key: "class_defs_off", ReadFunction: readUint},
		{Key: "data_size", ReadFunction: readUint},
		{Key: "data_off", ReadFunction: readUint},
	}

	fields, err := lbytes.ExecuteInstructions[Fields](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeFields error")
		return nil, err
	}

	return fields, nil
}
