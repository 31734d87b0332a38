package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"deckview/internal/config"
	"deckview/internal/infra/logx"
	"deckview/internal/present"
	"deckview/internal/watch"
)

// NewModel wires the presentation runtime to a fresh terminal stage and
// prepares the widgets. The deck itself loads asynchronously via Init.
func NewModel(cfg config.Config, path string) Model {
	pres := present.New()
	stage := newTermStage()
	mc := present.NewModeContainer(pres, stage, present.ModeConfig{
		Classes: present.ModeClasses{
			List: cfg.ModeClasses.List,
			Full: cfg.ModeClasses.Full,
		},
	})
	mc.Init()

	mc.Events().On(present.EventSlideModeEnter, func(any) { logx.Debugf("slide mode on") })
	mc.Events().On(present.EventSlideModeExit, func(any) { logx.Debugf("slide mode off") })

	// search
	si := textinput.New()
	si.Placeholder = "fuzzy search…"
	si.CharLimit = 200
	si.Width = 40

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle

	m := Model{
		cfg:      cfg,
		deckPath: path,
		state:    stateLoading,
		pres:     pres,
		mc:       mc,
		stage:    stage,
		viewport: viewport.New(80, 24), // initial dimensions, updated on WindowSize
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
		filterCfg: FilterConfig{
			MinCoverage: cfg.Search.MinCoverage,
			MaxSpread:   cfg.Search.MaxSpread,
			MaxResults:  cfg.Search.MaxResults,
		},
	}
	m.search.input = si

	if cfg.WatchEnabled() {
		w, err := watch.New(path)
		if err != nil {
			logx.Warnf("live reload disabled: %v", err)
		} else {
			m.watcher = w
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, loadDeckCmd(m.deckPath)}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}
