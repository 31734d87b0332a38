package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"deckview/internal/deck"
	"deckview/internal/watch"
)

// ---------- Messages / Cmds ----------

type deckLoadedMsg struct {
	deck *deck.Deck
	err  error
}

// deckChangedMsg signals that the watcher saw the deck change on disk.
type deckChangedMsg struct{}

func loadDeckCmd(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(path)
		return deckLoadedMsg{deck: d, err: err}
	}
}

// watchCmd blocks on the watcher until the next settled change burst. The
// update loop re-arms it after every deckChangedMsg.
func watchCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return deckChangedMsg{}
	}
}
