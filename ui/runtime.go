package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Start(path string) error {
	inspector, err := CreateChecksumInspector(path)
	if err != nil {
		return err
	}
	return tea.NewProgram(&inspector).Start()
}
