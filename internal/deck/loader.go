package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const metaFile = "deck.yaml"

// Load reads a deck from path. A directory yields one slide per markdown
// file in name order; a file is split into slides on "---" separator lines.
func Load(path string) (*Deck, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	if info.IsDir() {
		return loadDir(path)
	}
	return loadFile(path)
}

func loadDir(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}

	d := &Deck{Source: dir}
	d.Meta = readMeta(filepath.Join(dir, metaFile))

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		// underscore-prefixed files are deck assets, not slides
		if strings.HasPrefix(name, "_") || filepath.Ext(name) != ".md" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load deck: %w", err)
		}
		d.Pages = append(d.Pages, Page{
			ID:    name,
			Title: pageTitle(body, name),
			Body:  string(body),
		})
	}
	return d, nil
}

func loadFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}

	d := &Deck{Source: path}
	d.Meta = readMeta(filepath.Join(filepath.Dir(path), metaFile))

	for i, chunk := range splitSlides(string(data)) {
		id := fmt.Sprintf("%s#%d", filepath.Base(path), i+1)
		d.Pages = append(d.Pages, Page{
			ID:    id,
			Title: pageTitle([]byte(chunk), fmt.Sprintf("Slide %d", i+1)),
			Body:  chunk,
		})
	}
	return d, nil
}

// splitSlides cuts a markdown document on standalone "---" lines. Empty
// chunks (for example a trailing separator) are dropped.
func splitSlides(src string) []string {
	lines := strings.Split(src, "\n")
	var chunks []string
	var cur []string
	flush := func() {
		chunk := strings.TrimSpace(strings.Join(cur, "\n"))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		cur = cur[:0]
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return chunks
}

func readMeta(path string) Meta {
	var m Meta
	data, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		// a broken deck.yaml should not take the deck down
		return Meta{}
	}
	return m
}

// pageTitle returns the first heading of the slide, or a title derived from
// fallback (usually the filename) when the slide has none.
func pageTitle(body []byte, fallback string) string {
	if t := firstHeading(body); t != "" {
		return t
	}
	return titleFromName(fallback)
}

func firstHeading(source []byte) string {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Heading); !ok {
			return ast.WalkContinue, nil
		}
		title = headingText(n, source)
		return ast.WalkStop, nil
	})
	return strings.TrimSpace(title)
}

func headingText(h ast.Node, source []byte) string {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.CodeSpan, *ast.Emphasis, *ast.Link:
			b.WriteString(headingText(c, source))
		}
	}
	return b.String()
}

// titleFromName turns "02_viewport-fit.md" into "viewport fit".
func titleFromName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.TrimLeft(base, "0123456789")
	base = strings.Trim(base, "-_ ")
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	if base == "" {
		return name
	}
	return base
}
