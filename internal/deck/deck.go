// Package deck loads slide decks from markdown on disk. A deck is either a
// directory of markdown files (one slide per file, sorted by name) or a
// single file with slides separated by "---" lines.
package deck

// Meta describes the deck as a whole. It comes from deck.yaml next to the
// slides; missing fields stay empty and the UI falls back to defaults.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Theme  string `yaml:"theme"`
}

// Page is one slide's raw content before it is handed to the presentation
// layer.
type Page struct {
	ID    string // stable identity across reloads (filename or position)
	Title string // first heading, or derived from the filename
	Body  string // markdown source
}

type Deck struct {
	Meta   Meta
	Pages  []Page
	Source string // the path the deck was loaded from
}
