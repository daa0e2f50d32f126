package lbytes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesReader_ReadUint32(t *testing.T) {
	reader := Reader{
		Reader: *bytes.NewReader(
			[]byte{
				3, 1, 4, 3,
				12, 34, 56, 78,
			},
		),
	}

	resultUint1, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(50594051), resultUint1)

	resultUint2, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), resultUint2)
}

func TestBytesReader_ReadBytes(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3, 4})

	bs, err := reader.ReadBytes(4)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, bs)

	bs, err = reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)

	_, err = reader.ReadBytes(1)
	assert.Error(t, err)
}

func TestEncodeUint32(t *testing.T) {
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, EncodeUint32(0x12345678))
	assert.Equal(t, []byte{0, 0, 0, 0}, EncodeUint32(0))
}
