// Command sketchtui is a terminal front-end for editing sketch documents.
// Entities render onto a braille canvas; control points of the selected
// entity are dragged with the keyboard.
//
// Usage:
//
//	sketchtui [document.json]
//
// Without an argument it opens a demo document.
package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	log.SetFlags(0)
	var m model
	if len(os.Args) > 1 {
		var err error
		m, err = newModelFromFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	} else {
		m = newModel(demoScene(), "")
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
