// Package tui is the interactive terminal browser: section view, debounced
// search and the guided workflow.
package tui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/render"
	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/guide"
	"github.com/dsjohal14/aidocs/internal/scope/nav"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
	"github.com/dsjohal14/aidocs/internal/scope/search"
)

// DefaultDebounce is the quiet period after the last keystroke before a search runs
const DefaultDebounce = 300 * time.Millisecond

type mode int

const (
	modeSection mode = iota
	modeSearch
	modeGuide
)

// Options configures the browser
type Options struct {
	DefaultSection string
	Debounce       time.Duration
	SnippetLength  int
	Styles         render.Styles
}

// searchTickMsg fires when a debounce period ends. Only the tick carrying
// the latest sequence number runs a search.
type searchTickMsg struct{ seq int }

// block is one rendered part of a section page
type block struct {
	heading string
	text    string
	items   []content.Item
}

// Model is the bubbletea model of the browser
type Model struct {
	doc      *content.Document
	tracker  *progress.Tracker
	nav      *nav.Navigator
	engine   *search.Engine
	conv     *render.Converter
	styles   render.Styles
	debounce time.Duration

	mode   mode
	view   nav.View
	blocks []block
	items  []content.Item
	cursor int
	scroll int

	input     textinput.Model
	seq       int
	query     string
	results   []search.Result
	selected  int
	searching bool

	walker      guide.Walker
	guideCursor int

	confirmReset bool
	status       string
	width        int
	height       int
}

// New creates a browser positioned on the landing section
func New(doc *content.Document, tracker *progress.Tracker, opts Options) Model {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	m := Model{
		doc:      doc,
		tracker:  tracker,
		nav:      nav.NewNavigator(doc, opts.DefaultSection),
		engine:   search.NewEngine(doc, search.WithSnippetLength(opts.SnippetLength)),
		conv:     render.NewConverter(),
		styles:   opts.Styles,
		debounce: opts.Debounce,
	}

	m.input = textinput.New()
	m.input.Placeholder = "Search documentation"
	m.input.Prompt = "/ "
	m.input.CharLimit = 200
	m.input.Width = 40

	m.navigate(m.nav.Fallback())
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case searchTickMsg:
		if msg.seq != m.seq {
			// superseded by a later keystroke
			return m, nil
		}
		m.runSearch()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirmReset {
			return m.updateConfirm(msg)
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeGuide:
			return m.updateGuide(msg)
		default:
			return m.updateSection(msg)
		}
	}
	return m, nil
}

func (m Model) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.mode = modeSearch
		cmd := m.input.Focus()
		return m, cmd
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ":
		if m.cursor < len(m.items) {
			m.toggle(m.items[m.cursor])
		}
	case "R":
		m.confirmReset = true
		m.status = "Reset all checklist progress? This cannot be undone. (y/N)"
	case "g":
		m.mode = modeGuide
		m.guideCursor = 0
	case "]", "tab":
		m.step(1)
	case "[", "shift+tab":
		m.step(-1)
	case "pgdown", "ctrl+d":
		m.scroll += max(m.height/2, 1)
	case "pgup", "ctrl+u":
		m.scroll = max(m.scroll-max(m.height/2, 1), 0)
	case "home":
		m.scroll = 0
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmReset = false
	if s := msg.String(); s != "y" && s != "Y" {
		m.status = "Reset cancelled."
		return m, nil
	}

	if err := m.tracker.Reset(context.Background()); err != nil {
		m.status = "Reset failed: " + err.Error()
		return m, nil
	}
	obs.Resets.Inc()
	m.status = "Progress reset."
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exitSearch()
		return m, nil
	case "enter":
		// the debounce tick may not have fired yet
		if !m.searching || m.input.Value() != m.query {
			m.runSearch()
		}
		if m.searching && m.selected < len(m.results) {
			m.navigate(m.results[m.selected].ID)
			m.exitSearch()
		}
		return m, nil
	case "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.selected < len(m.results)-1 {
			m.selected++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	m.seq++
	seq := m.seq
	return m, tea.Batch(cmd, tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	}))
}

func (m Model) updateGuide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	items := guide.Items(m.doc, m.walker.Step())

	switch msg.String() {
	case "q", "esc":
		m.mode = modeSection
	case "n", "right", "l":
		if m.walker.Next() {
			m.mode = modeSection
			m.walker.Restart()
			m.status = "Guided workflow complete."
		}
		m.guideCursor = 0
	case "p", "left", "h":
		m.walker.Prev()
		m.guideCursor = 0
	case "e":
		if id, ok := m.walker.Explore(); ok {
			m.navigate(id)
			m.mode = modeSection
		}
	case "j", "down":
		if m.guideCursor < len(items)-1 {
			m.guideCursor++
		}
	case "k", "up":
		if m.guideCursor > 0 {
			m.guideCursor--
		}
	case " ":
		if m.guideCursor < len(items) {
			m.toggle(items[m.guideCursor])
		}
	}
	return m, nil
}

func (m *Model) runSearch() {
	query := m.input.Value()
	results, err := m.engine.Search(query)
	if errors.Is(err, search.ErrEmptyQuery) {
		m.searching = false
		m.results = nil
		m.query = ""
		return
	}
	if err != nil {
		m.status = "Search failed: " + err.Error()
		return
	}

	obs.Searches.Inc()
	obs.SearchResults.Observe(float64(len(results)))
	m.searching = true
	m.query = query
	m.results = results
	m.selected = 0
}

func (m *Model) exitSearch() {
	m.input.Reset()
	m.input.Blur()
	m.mode = modeSection
	m.searching = false
	m.results = nil
	m.query = ""
	m.selected = 0
	// any tick still in flight is now stale
	m.seq++
}

func (m *Model) toggle(it content.Item) {
	done, err := m.tracker.Toggle(context.Background(), it.Key)
	if err != nil {
		m.status = "Save failed: " + err.Error()
		return
	}
	obs.Toggles.WithLabelValues(strconv.FormatBool(done)).Inc()
}

// step moves to the neighbouring section in declaration order
func (m *Model) step(delta int) {
	ids := m.doc.IDs()
	for i, id := range ids {
		if id == m.view.SectionID {
			if j := i + delta; j >= 0 && j < len(ids) {
				m.navigate(ids[j])
			}
			return
		}
	}
}

func (m *Model) navigate(id string) {
	v := m.nav.Navigate(id)
	if v.FellBack {
		obs.Fallbacks.Inc()
		m.status = v.Notice
	}

	m.view = v
	m.cursor = 0
	m.scroll = 0
	m.blocks = nil
	m.items = nil

	m.addBlock("", v.Content, v.Checklist)
	for _, sub := range v.Subsections {
		m.addBlock(sub.Title, sub.Content, sub.Checklist)
		for _, ex := range sub.Examples {
			m.addBlock("Example: "+ex.Title, ex.Content, nil)
		}
	}
	for i, ex := range v.Examples {
		heading := "Example: " + ex.Title
		if i == v.FocusedExample {
			heading = "▶ " + heading
		}
		m.addBlock(heading, ex.Content, nil)
	}
}

func (m *Model) addBlock(heading, rich string, items []content.Item) {
	text, err := m.conv.Markdown(rich)
	if err != nil {
		text = search.Flatten(rich)
	}
	m.blocks = append(m.blocks, block{heading: heading, text: text, items: items})
	m.items = append(m.items, items...)
}
