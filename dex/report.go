package dex

import (
	"encoding/hex"
	"encoding/json"

	"dex-checksum-tools/dex/dheader"
	"dex-checksum-tools/ds"
)

type (
	fieldPair struct {
		key   string
		value any
	}
)

// HeaderReport decodes the full fixed header of bs and renders it as
// indented JSON with the fields in file order. Magic and signature are
// hex strings; everything else keeps its numeric value.
func HeaderReport(bs []byte) ([]byte, error) {
	fields, err := dheader.DecodeFields(bs)
	if err != nil {
		return nil, err
	}

	pairs := []fieldPair{
		{"magic", hex.EncodeToString(fields.Magic)},
		{"checksum", fields.Checksum},
		{"signature", hex.EncodeToString(fields.Signature)},
		{"file_size", fields.FileSize},
		{"header_size", fields.HeaderSize},
		{"endian_tag", fields.EndianTag},
		{"link_size", fields.LinkSize},
		{"link_off", fields.LinkOff},
		{"map_off", fields.MapOff},
		{"string_ids_size", fields.StringIDsSize},
		{"string_ids_off", fields.StringIDsOff},
		{"type_ids_size", fields.TypeIDsSize},
		{"type_ids_off", fields.TypeIDsOff},
		{"proto_ids_size", fields.ProtoIDsSize},
		{"proto_ids_off", fields.ProtoIDsOff},
		{"field_ids_size", fields.FieldIDsSize},
		{"field_ids_off", fields.FieldIDsOff},
		{"method_ids_size", fields.MethodIDsSize},
		{"method_ids_off", fields.MethodIDsOff},
		{"class_defs_size", fields.ClassDefsSize},
		{"class_defs_off", fields.ClassDefsOff},
		{"data_size", fields.DataSize},
		{"data_off", fields.DataOff},
	}
	lhm := ds.NewLinkedHashMap[string, any]()
	for _, pair := range pairs {
		lhm.Put(pair.key, pair.value)
	}

	return json.MarshalIndent(lhm, "", "  ")
}
