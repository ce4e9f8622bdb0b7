// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a persistent session status bar and an input
// prompt at the bottom of the terminal. All application output is
// printed above the rendered area via Program.Println / Printf,
// ensuring concurrent writes never garble the display.
package display

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	barValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ── Output styles (soft palette) ──

	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Chat — soft sky blue for assistant replies.
	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Heading — soft mint for recipe names and step headers.
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	// Primary text — light zinc for recipe body text.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Urgent — soft coral for errors.
	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may
// safely call [UI.Println], [UI.Printf], and read from
// [UI.InputChan] at any time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	store   domain.SessionStore
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(store domain.SessionStore) *UI {
	return &UI{
		store:   store,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
// The output is printed on its own line.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format, a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints an assistant reply. Multi-line replies keep their
// indentation so recipe listings stay aligned.
func (u *UI) PrintChat(text string) {
	for _, line := range strings.Split(text, "\n") {
		u.Println(chatStyle.Render("  " + line))
	}
}

// PrintHeading prints a recipe name or section header.
func (u *UI) PrintHeading(text string) {
	u.Println(headingStyle.Render("  " + text))
}

// PrintBody prints recipe body text.
func (u *UI) PrintBody(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed message into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("you") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Use a plain-text prompt so the textinput width math stays correct.
	// Lipgloss-styled prompts add invisible ANSI bytes that break the
	// internal offset/scroll calculations for long input.
	ti.Prompt = "you> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		store:   u.store,
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	store   domain.SessionStore
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string) // prints user input into scrollback
	status  sessionStatus
	width   int
}

// sessionStatus is the snapshot rendered into the bottom bar.
type sessionStatus struct {
	ingredients int
	recipeName  string
	step        int // 1-based; 0 when not cooking
	totalSteps  int
	suggestions int
}

// Messages.
type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Return a Cmd that prints the echo — this runs
				// outside Update so it won't deadlock on msgs.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		// Let the text input use the full width minus the prompt ("you> " = 5 chars).
		const promptLen = 5
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen
		}
		return m, nil

	case tickMsg:
		m.refreshStatus()
		cmds := []tea.Cmd{tickCmd()}
		if m.status.recipeName != "" {
			cmds = append(cmds, tea.SetWindowTitle(m.titleStr()))
		} else {
			cmds = append(cmds, tea.SetWindowTitle("FoodRescuer"))
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) refreshStatus() {
	sessions, err := m.store.ListActive(context.Background())
	if err != nil || len(sessions) == 0 {
		return
	}

	// The TUI drives a single session; take the most recently updated.
	s := sessions[0]
	for _, other := range sessions[1:] {
		if other.UpdatedAt.After(s.UpdatedAt) {
			s = other
		}
	}

	m.status = sessionStatus{
		ingredients: len(s.AvailableIngredients),
		suggestions: len(s.SuggestedRecipes),
	}
	if s.CurrentRecipe != nil {
		m.status.recipeName = s.CurrentRecipe.Name
		m.status.step = s.StepIndex + 1
		m.status.totalSteps = len(s.CurrentRecipe.Instructions)
	}
}

func (m model) titleStr() string {
	if m.status.totalSteps > 0 {
		return fmt.Sprintf("FoodRescuer — %s (step %d/%d)",
			m.status.recipeName, m.status.step, m.status.totalSteps)
	}
	return "FoodRescuer — " + m.status.recipeName
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderBar())
	b.WriteByte('\n')

	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	var parts []string

	if m.status.ingredients > 0 {
		parts = append(parts,
			labelStyle.Render("ingredients: ")+
				barValueStyle.Render(fmt.Sprintf("%d", m.status.ingredients)))
	} else {
		parts = append(parts, barEmptyStyle.Render("no ingredients yet"))
	}

	switch {
	case m.status.recipeName != "" && m.status.totalSteps > 0:
		parts = append(parts,
			labelStyle.Render("cooking: ")+
				barValueStyle.Render(m.status.recipeName)+
				labelStyle.Render(fmt.Sprintf("  step %d/%d", m.status.step, m.status.totalSteps)))
	case m.status.recipeName != "":
		parts = append(parts,
			labelStyle.Render("recipe: ")+barValueStyle.Render(m.status.recipeName))
	case m.status.suggestions > 0:
		parts = append(parts,
			labelStyle.Render("suggestions: ")+
				barValueStyle.Render(fmt.Sprintf("%d", m.status.suggestions)))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}
