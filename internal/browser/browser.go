// Package browser is a read-only bubbletea patch browser: it lists the
// patch files under a card's KITS/SYNTHS folders and renders the
// currently-highlighted patch's parsed summary alongside the list.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/schollz/deluge-patch/internal/card"
	"github.com/schollz/deluge-patch/internal/serialization"
)

// entry is one row in the list: a patch file plus which folder it came
// from, so selecting it tells us whether to parse it as a synth or a kit.
type entry struct {
	name string
	path string
	typ  card.PatchType
}

func (e entry) Title() string       { return e.name }
func (e entry) Description() string { return e.path }
func (e entry) FilterValue() string { return e.name }

// Scan walks c's KITS and SYNTHS folders (non-recursively, matching the
// card's flat naming convention) and returns one entry per *.XML file:
// the KITS entries sorted by name, followed by the SYNTHS entries sorted by
// name.
func Scan(c *card.Card) ([]list.Item, error) {
	var items []list.Item
	folders := []struct {
		sub string
		typ card.PatchType
	}{
		{"KITS", card.PatchTypeKit},
		{"SYNTHS", card.PatchTypeSynth},
	}

	for _, f := range folders {
		dir := filepath.Join(c.Root, f.sub)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		var names []string
		for _, de := range entries {
			if !de.IsDir() && strings.EqualFold(filepath.Ext(de.Name()), ".xml") {
				names = append(names, de.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			items = append(items, entry{
				name: name,
				path: filepath.Join(f.sub, name),
				typ:  f.typ,
			})
		}
	}
	return items, nil
}

// Summarize loads the patch at path (relative to c.Root) and renders a
// one-paragraph description: mode, polyphony, row count for kits.
func Summarize(c *card.Card, e entry) (string, error) {
	raw, err := os.ReadFile(filepath.Join(c.Root, e.path))
	if err != nil {
		return "", err
	}
	xml := string(raw)

	if e.typ == card.PatchTypeKit {
		kit, info, err := serialization.LoadKitWithVersion(xml)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("kit, firmware %s, %d rows", info.FirmwareVersion, len(kit.Rows)), nil
	}

	synth, info, err := serialization.LoadSynthWithVersion(xml)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s synth, %s polyphony, firmware %s",
		synth.Sound.Mode.String(), synth.Sound.Polyphony.String(), info.FirmwareVersion), nil
}

// Model is the top-level bubbletea model: a list on the left, a styled
// summary pane on the right.
type Model struct {
	card    *card.Card
	list    list.Model
	summary string
	width   int
	height  int
}

// New builds a browser Model over c's patch files.
func New(c *card.Card) (Model, error) {
	items, err := Scan(c)
	if err != nil {
		return Model{}, err
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Patches"

	m := Model{
		card: c,
		list: l,
	}
	m.refreshSummary()
	return m, nil
}

// accentTitle renders text in the accent hue, letting termenv degrade the
// color to whatever the terminal's color profile actually supports.
func accentTitle(text string) string {
	hex, _ := colorful.Hex("#6AD7FF")
	profile := termenv.ColorProfile()
	termColor := profile.Color(hex.Hex())
	return termenv.String(text).Foreground(termColor).String()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshSummary()
	return m, cmd
}

func (m *Model) refreshSummary() {
	item, ok := m.list.SelectedItem().(entry)
	if !ok {
		m.summary = ""
		return
	}
	summary, err := Summarize(m.card, item)
	if err != nil {
		m.summary = fmt.Sprintf("could not load %s: %v", item.path, err)
		return
	}
	m.summary = summary
}

func (m Model) View() string {
	listView := m.list.View()

	paneStyle := lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder())
	summaryPane := paneStyle.Render(accentTitle("Summary") + "\n\n" + m.summary)

	return lipgloss.JoinHorizontal(lipgloss.Top, listView, summaryPane)
}

// Run starts the bubbletea program for browsing c's patches.
func Run(c *card.Card) error {
	m, err := New(c)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
