package ui

import (
	"os"
	"path/filepath"
	"testing"

	"dex-checksum-tools/dex"
	"dex-checksum-tools/dex/dheader"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func createDexFile(t *testing.T, regionLength int) string {
	t.Helper()
	bs := make([]byte, 0, dheader.MinSize+regionLength)
	bs = append(bs, []byte("dex\n035\x00")...)
	bs = append(bs, 0xDE, 0xC0, 0xAD, 0x0B)
	bs = append(bs, make([]byte, dheader.SignatureSize+regionLength)...)
	path := filepath.Join(t.TempDir(), "classes.dex")
	assert.NoError(t, os.WriteFile(path, bs, 0644))
	return path
}

func pressKey(t *testing.T, inspector *ChecksumInspector, key rune) {
	t.Helper()
	model, _ := inspector.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
	assert.Same(t, inspector, model)
}

func TestCreateChecksumInspector(t *testing.T) {
	path := createDexFile(t, 4)

	inspector, err := CreateChecksumInspector(path)
	assert.NoError(t, err)
	assert.Equal(t, StateViewing, inspector.state)
	assert.False(t, inspector.summary.Valid)
	assert.Nil(t, inspector.Init())

	view := inspector.View()
	assert.Contains(t, view, "0x0badc0de")
	assert.Contains(t, view, "0x00180001")
	assert.Contains(t, view, `Press "c" to correct it`)
}

func TestCreateChecksumInspector_Errors(t *testing.T) {
	_, err := CreateChecksumInspector(filepath.Join(t.TempDir(), "missing.dex"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "not-a-dex")
	assert.NoError(t, os.WriteFile(path, []byte("PK\x03\x04"), 0644))
	_, err = CreateChecksumInspector(path)
	assert.Error(t, err)
}

func TestChecksumInspector_Correct(t *testing.T) {
	path := createDexFile(t, 4)
	inspector, err := CreateChecksumInspector(path)
	assert.NoError(t, err)

	pressKey(t, &inspector, 'c')

	assert.Equal(t, StateCorrected, inspector.state)
	assert.True(t, inspector.summary.Valid)
	assert.Contains(t, inspector.View(), "Corrected the checksum")

	written, err := os.ReadFile(path)
	assert.NoError(t, err)
	summary, err := dex.Summarize(written)
	assert.NoError(t, err)
	assert.True(t, summary.Valid)
}

func TestChecksumInspector_Quit(t *testing.T) {
	path := createDexFile(t, 0)
	inspector, err := CreateChecksumInspector(path)
	assert.NoError(t, err)

	_, cmd := inspector.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
}
