package ui

import (
	"fmt"
	"os"
	"strings"

	"dex-checksum-tools/dex"
	"dex-checksum-tools/ds"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	StateViewing   = "viewing"
	StateCorrected = "corrected"
	StateFailed    = "failed"
)

type ChecksumInspector struct {
	path    string
	bytes   []byte
	summary *dex.Summary
	state   string
	err     error
}

func CreateChecksumInspector(path string) (ChecksumInspector, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		err := errors.Wrapf(err, `CreateChecksumInspector error reading "%s"`, path)
		return ChecksumInspector{}, err
	}
	summary, err := dex.Summarize(bs)
	if err != nil {
		err := errors.Wrapf(err, `CreateChecksumInspector error parsing "%s"`, path)
		return ChecksumInspector{}, err
	}
	return ChecksumInspector{
		path:    path,
		bytes:   bs,
		summary: summary,
		state:   StateViewing,
	}, nil
}

func (s *ChecksumInspector) correct() {
	applied, err := dex.CorrectChecksum(s.bytes)
	if err == nil && applied {
		err = os.WriteFile(s.path, s.bytes, 0644)
	}
	if err != nil {
		s.state = StateFailed
		s.err = err
		return
	}
	summary, err := dex.Summarize(s.bytes)
	if err != nil {
		s.state = StateFailed
		s.err = err
		return
	}
	s.summary = summary
	s.state = StateCorrected
}

func (s *ChecksumInspector) Init() tea.Cmd {
	return nil
}

func (s *ChecksumInspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case "c":
			if s.state == StateViewing && !s.summary.Valid {
				s.correct()
			}
		}
	}
	return s, nil
}

func (s *ChecksumInspector) View() string {
	lines := []string{
		"DEX CHECKSUM TOOLS",
		"",
		"File:              " + s.path,
		"Format version:    " + s.summary.Version,
		fmt.Sprintf("Stored checksum:   0x%08x", s.summary.Current),
		fmt.Sprintf("Expected checksum: 0x%08x", s.summary.Expected),
		fmt.Sprintf("Region length:     %d bytes", s.summary.RegionLength),
		"",
	}
	switch s.state {
	case StateViewing:
		lines = append(
			lines,
			lo.Ternary(
				s.summary.Valid,
				"The stored checksum looks correct.",
				`The stored checksum is wrong. Press "c" to correct it.`,
			),
		)
	case StateCorrected:
		lines = append(lines, "Corrected the checksum and wrote the file back to "+s.path)
	case StateFailed:
		lines = append(lines, "Correcting failed: "+s.err.Error())
	default:
		err := ds.ErrUnreachableCode{Caller: "ChecksumInspector.View"}
		panic(err)
	}
	lines = append(lines, "", `Press "q" to quit.`)
	return strings.Join(lines, "\n") + "\n"
}
