package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bestpet/internal/adapters/driving/banner"
	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bestpet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bestpet/internal/core/domain"
)

// Form fields in focus order.
const (
	FieldDate = iota
	FieldSmallDogs
	FieldBigDogs
	fieldCount
)

// App is the quote form following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	fields []*input.FieldInput
	focus  int

	// pending is set while a quote is running.
	pending bool

	// result is the last completed quote, nil before the first one.
	result *messages.QuoteCompleted

	showRanking bool

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the quote form with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	fields := make([]*input.FieldInput, fieldCount)
	fields[FieldDate] = input.NewFieldInput(s, "Date", "dd/mm/yyyy", 10)
	fields[FieldSmallDogs] = input.NewFieldInput(s, "Small dogs", "0", 6)
	fields[FieldBigDogs] = input.NewFieldInput(s, "Big dogs", "0", 6)
	fields[FieldDate].Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		fields: fields,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("bestpet"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case messages.QuoteCompleted:
		// Results for a form that has since changed are stale.
		if msg.Line != a.Line() {
			return a, nil
		}
		a.pending = false
		a.result = &msg
		return a, nil

	case messages.FocusChanged:
		return a, a.setFocus(msg.Field)

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, a.keys.Quit):
			return a, tea.Quit
		case keymap.Matches(key, a.keys.Submit):
			a.pending = true
			return a, a.quote()
		case keymap.Matches(key, a.keys.Next):
			return a, changeFocus(a.focus + 1)
		case keymap.Matches(key, a.keys.Prev):
			return a, changeFocus(a.focus - 1)
		case keymap.Matches(key, a.keys.Ranking):
			a.showRanking = !a.showRanking
			return a, nil
		case keymap.Matches(key, a.keys.Clear):
			for _, f := range a.fields {
				f.Reset()
			}
			a.result = nil
			a.pending = false
			return a, changeFocus(FieldDate)
		}
	}

	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	return a, cmd
}

// changeFocus asks the update loop to focus field i.
func changeFocus(i int) tea.Cmd {
	return func() tea.Msg {
		return messages.FocusChanged{Field: i}
	}
}

// setFocus moves focus to field i, wrapping around.
func (a *App) setFocus(i int) tea.Cmd {
	i = (i%fieldCount + fieldCount) % fieldCount
	a.fields[a.focus].Blur()
	a.focus = i
	return a.fields[i].Focus()
}

// Line returns the request as typed, in "<date> <small> <big>" form.
func (a *App) Line() string {
	values := make([]string, len(a.fields))
	for i, f := range a.fields {
		values[i] = strings.TrimSpace(f.Value())
	}
	return strings.Join(values, " ")
}

// quote parses the form and prices it off the update loop.
func (a *App) quote() tea.Cmd {
	line := a.Line()
	ctx := a.ctx
	quotes := a.ports.Quote
	return func() tea.Msg {
		req, err := domain.ParseQuoteRequest(line)
		if err != nil {
			return messages.QuoteCompleted{Line: line, Err: err}
		}
		best, err := quotes.BestOption(ctx, req)
		if err != nil {
			return messages.QuoteCompleted{Line: line, Request: req, Err: err}
		}
		ranking, err := quotes.Rank(ctx, req.Weekday, req.SmallDogs, req.BigDogs)
		if err != nil {
			return messages.QuoteCompleted{Line: line, Request: req, Err: err}
		}
		return messages.QuoteCompleted{Line: line, Request: req, Best: best, Ranking: ranking}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	sections := make([]string, 0, 8)
	sections = append(sections, a.styles.Title.Render("bestpet: find the best pet shop"), "")

	for _, f := range a.fields {
		sections = append(sections, f.View())
	}
	sections = append(sections, "")

	switch {
	case a.pending:
		sections = append(sections, a.styles.Muted.Render("Pricing..."))
	case a.result != nil && a.result.Err != nil:
		sections = append(sections, strings.TrimSuffix(banner.Failure(a.styles), "\n"))
	case a.result != nil:
		sections = append(sections, strings.TrimSuffix(banner.Success(a.styles, *a.result.Best), "\n"))
		if a.showRanking {
			sections = append(sections, "", strings.TrimSuffix(banner.Ranking(a.styles, a.result.Ranking), "\n"))
		}
	}

	sections = append(sections, "", a.helpView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) helpView() string {
	bindings := a.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return a.styles.Help.Render(strings.Join(parts, " • "))
}

// Focus returns the focused field.
func (a *App) Focus() int {
	return a.focus
}

// Result returns the last completed quote.
func (a *App) Result() *messages.QuoteCompleted {
	return a.result
}

// Pending reports whether a quote is running.
func (a *App) Pending() bool {
	return a.pending
}

// ShowRanking reports whether the ranking is displayed.
func (a *App) ShowRanking() bool {
	return a.showRanking
}

// SetValues fills the form fields in order.
func (a *App) SetValues(date, smallDogs, bigDogs string) {
	a.fields[FieldDate].SetValue(date)
	a.fields[FieldSmallDogs].SetValue(smallDogs)
	a.fields[FieldBigDogs].SetValue(bigDogs)
}
