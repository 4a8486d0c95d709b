package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/todo/internal/models"
	"github.com/tgienger/todo/internal/notify"
	"github.com/tgienger/todo/internal/todo"
	"github.com/tgienger/todo/internal/ui/keys"
	"github.com/tgienger/todo/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusInput FocusArea = iota
	FocusAddButton
	FocusTaskList
	focusAreas
)

// Section headings and empty state texts
const (
	PendingHeading   = "Pending Tasks"
	CompletedHeading = "Completed Tasks"
	EmptyTitle       = "No tasks yet"
	EmptyHint        = "Start by adding your first task above!"
	AddLabel         = "+ Add"
	InputPlaceholder = "Add a new task..."
)

// lines used by everything except the task rows
const chromeHeight = 20

// Options configures a TodoView
type Options struct {
	Title     string
	Subtitle  string
	CharLimit int
}

// ToastExpiredMsg removes a notification once its time is up
type ToastExpiredMsg struct {
	ID int64
}

// TodoView is the single screen of the app: input row, stats, task
// sections and notifications.
type TodoView struct {
	list   *todo.List
	toasts *notify.Queue
	styles *styles.Styles
	keys   keys.KeyMap
	help   help.Model

	title    string
	subtitle string

	width  int
	height int

	// UI state
	focus   FocusArea
	cursor  int // index into the rendered order, pending then completed
	scrollY int
	input   textinput.Model
}

// NewTodoView creates the to-do screen over list. Notifications emitted by
// list are expected to land in toasts.
func NewTodoView(list *todo.List, toasts *notify.Queue, opts Options) *TodoView {
	s := styles.NewStyles()

	input := textinput.New()
	input.Placeholder = InputPlaceholder
	input.CharLimit = opts.CharLimit
	input.SetValue(list.Draft())
	input.Focus()

	h := help.New()
	h.Styles.ShortKey = s.Title
	h.Styles.FullKey = s.Title

	return &TodoView{
		list:     list,
		toasts:   toasts,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
		help:     h,
		title:    opts.Title,
		subtitle: opts.Subtitle,
		focus:    FocusInput,
		input:    input,
	}
}

// Init initializes the view
func (v *TodoView) Init() tea.Cmd {
	return textinput.Blink
}

// Focus returns the focused area
func (v *TodoView) Focus() FocusArea {
	return v.focus
}

// Cursor returns the selected row in the task list
func (v *TodoView) Cursor() int {
	return v.cursor
}

// Update handles messages
func (v *TodoView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = styles.ContentWidth(v.width)
		v.ensureVisible()
		return v, nil

	case ToastExpiredMsg:
		v.toasts.Expire(msg.ID)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.ForceQuit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Tab):
			v.cycleFocus(1)
			return v, nil
		case key.Matches(msg, v.keys.ShiftTab):
			v.cycleFocus(-1)
			return v, nil
		}

		switch v.focus {
		case FocusInput:
			return v.updateInput(msg)
		case FocusAddButton:
			return v.updateAddButton(msg)
		default:
			return v.updateTaskList(msg)
		}
	}

	// Cursor blink and other input internals
	if v.focus == FocusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *TodoView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Enter):
		return v, v.submit()
	case key.Matches(msg, v.keys.Back):
		v.setFocus(FocusTaskList)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.list.SetDraft(v.input.Value())
	return v, cmd
}

func (v *TodoView) updateAddButton(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Enter), key.Matches(msg, v.keys.Toggle):
		return v, v.submit()
	case key.Matches(msg, v.keys.Back):
		v.setFocus(FocusInput)
		return v, textinput.Blink
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

func (v *TodoView) updateTaskList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := v.list.Views().Ordered()

	switch {
	case key.Matches(msg, v.keys.Quit), key.Matches(msg, v.keys.Back):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(rows)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle), key.Matches(msg, v.keys.Enter):
		if len(rows) == 0 {
			return v, nil
		}
		id := rows[v.cursor].ID
		v.list.Toggle(id)
		v.follow(id)
		return v, v.scheduleToasts()

	case key.Matches(msg, v.keys.Delete):
		if len(rows) == 0 {
			return v, nil
		}
		v.list.Delete(rows[v.cursor].ID)
		v.cursor = clamp(v.cursor, 0, max(0, v.list.Len()-1))
		v.ensureVisible()
		return v, v.scheduleToasts()
	}

	return v, nil
}

// submit adds the draft as a new task
func (v *TodoView) submit() tea.Cmd {
	v.list.SetDraft(v.input.Value())
	if v.list.Add() {
		v.input.Reset()
		// New tasks land at the top of the pending section
		v.cursor = 0
		v.scrollY = 0
	}
	return v.scheduleToasts()
}

// scheduleToasts starts an expiry timer for every new notification
func (v *TodoView) scheduleToasts() tea.Cmd {
	fresh := v.toasts.TakeNew()
	if len(fresh) == 0 {
		return nil
	}
	ttl := v.toasts.TTL()
	cmds := make([]tea.Cmd, 0, len(fresh))
	for _, n := range fresh {
		id := n.ID
		cmds = append(cmds, tea.Tick(ttl, func(time.Time) tea.Msg {
			return ToastExpiredMsg{ID: id}
		}))
	}
	return tea.Batch(cmds...)
}

// follow moves the cursor to the row now holding id
func (v *TodoView) follow(id string) {
	for i, t := range v.list.Views().Ordered() {
		if t.ID == id {
			v.cursor = i
			break
		}
	}
	v.ensureVisible()
}

func (v *TodoView) cycleFocus(dir int) {
	v.setFocus(FocusArea((int(v.focus) + dir + int(focusAreas)) % int(focusAreas)))
}

func (v *TodoView) setFocus(f FocusArea) {
	v.focus = f
	if f == FocusInput {
		v.input.Focus()
	} else {
		v.input.Blur()
	}
}

// visibleRows returns how many task rows fit on screen, 0 meaning all
func (v *TodoView) visibleRows() int {
	if v.height == 0 {
		return 0
	}
	return max(v.height-chromeHeight, 3)
}

func (v *TodoView) ensureVisible() {
	visible := v.visibleRows()
	if visible == 0 {
		v.scrollY = 0
		return
	}
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visible {
		v.scrollY = v.cursor - visible + 1
	}
	v.scrollY = clamp(v.scrollY, 0, max(0, v.list.Len()-visible))
}

// View renders the view
func (v *TodoView) View() string {
	views := v.list.Views()
	parts := []string{
		v.renderHeader(),
		v.renderInputRow(),
	}

	if views.IsEmpty {
		parts = append(parts, v.renderEmptyState())
	} else {
		parts = append(parts, v.renderStats(views))
		parts = append(parts, v.renderSections(views)...)
	}

	if toasts := v.renderToasts(); toasts != "" {
		parts = append(parts, "", toasts)
	}
	parts = append(parts, v.styles.Help.Render(v.help.View(v.keys)))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	padded := lipgloss.NewStyle().Padding(1, 2).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}

func (v *TodoView) renderHeader() string {
	s := v.styles
	header := s.Title.Render("☑ " + v.title)
	if v.subtitle == "" {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, s.Subtitle.Render(v.subtitle))
}

func (v *TodoView) renderInputRow() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	inputStyle := s.Input
	if v.focus == FocusInput {
		inputStyle = s.InputFocused
	}
	btnStyle := s.Button
	if v.focus == FocusAddButton {
		btnStyle = s.ButtonFocused
	}

	btn := btnStyle.Render(AddLabel)
	inputWidth := clamp(contentWidth-lipgloss.Width(btn)-8, 10, 60)
	v.input.Width = inputWidth - 4
	box := inputStyle.Width(inputWidth).Render(v.input.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", btn)
}

func (v *TodoView) renderStats(views todo.Views) string {
	s := v.styles
	cellWidth := clamp((styles.ContentWidth(v.width)-8)/2, 12, 34)

	pending := s.StatCard.Width(cellWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
		s.StatPendingValue.Render(fmt.Sprintf("%d", views.PendingCount)),
		s.StatLabel.Render("Pending"),
	))
	completed := s.StatCard.Width(cellWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
		s.StatDoneValue.Render(fmt.Sprintf("%d", views.CompletedCount)),
		s.StatLabel.Render("Completed"),
	))

	return lipgloss.JoinHorizontal(lipgloss.Top, pending, "  ", completed)
}

// renderSections renders the pending and completed sections, limited to
// the rows that fit on screen
func (v *TodoView) renderSections(views todo.Views) []string {
	s := v.styles
	rows := views.Ordered()

	start, end := 0, len(rows)
	if visible := v.visibleRows(); visible > 0 {
		start = clamp(v.scrollY, 0, len(rows))
		end = min(start+visible, len(rows))
	}

	var out []string
	if start > 0 {
		out = append(out, s.Muted.Render(fmt.Sprintf("  ↑ %d more", start)))
	}

	var pending, completed []string
	for i := start; i < end; i++ {
		item := v.renderTaskItem(rows[i], v.focus == FocusTaskList && i == v.cursor)
		if i < views.PendingCount {
			pending = append(pending, item)
		} else {
			completed = append(completed, item)
		}
	}

	if len(pending) > 0 {
		out = append(out, s.SectionTitle.Render(PendingHeading))
		out = append(out, pending...)
	}
	if len(completed) > 0 {
		out = append(out, s.SectionTitle.Render(CompletedHeading))
		out = append(out, completed...)
	}

	if end < len(rows) {
		out = append(out, s.Muted.Render(fmt.Sprintf("  ↓ %d more", len(rows)-end)))
	}
	return out
}

func (v *TodoView) renderTaskItem(task models.Task, selected bool) string {
	s := v.styles
	width := max(styles.ContentWidth(v.width)-6, 20)

	check := s.CheckOpen.Render("[ ]")
	text := s.TaskText.Render(task.Text)
	if task.Completed {
		check = s.CheckDone.Render("[✓]")
		text = s.TaskDoneText.Render(task.Text)
	}
	line := check + " " + text

	// Right-align the delete marker
	remove := s.DeleteMarker.Render("✕")
	gap := width - 2 - lipgloss.Width(line) - lipgloss.Width(remove)
	if gap > 0 {
		line += strings.Repeat(" ", gap) + remove
	}

	itemStyle := s.TaskItem
	if selected {
		itemStyle = s.TaskSelected
	}
	return itemStyle.Width(width).Render(line)
}

func (v *TodoView) renderEmptyState() string {
	s := v.styles
	width := clamp(styles.ContentWidth(v.width)-6, 20, 70)

	return s.EmptyPanel.Width(width).MarginTop(1).Render(lipgloss.JoinVertical(lipgloss.Center,
		s.Muted.Render("☑"),
		s.EmptyTitle.Render(EmptyTitle),
		s.Muted.Render(EmptyHint),
	))
}

func (v *TodoView) renderToasts() string {
	s := v.styles
	active := v.toasts.Active()
	if len(active) == 0 {
		return ""
	}

	width := clamp(styles.ContentWidth(v.width)-6, 20, 60)
	var items []string
	for _, n := range active {
		style := s.Toast
		if n.Severity == models.SeverityDestructive {
			style = s.ToastDestructive
		}
		body := s.ToastTitle.Render(n.Title)
		if n.Description != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, n.Description)
		}
		items = append(items, style.Width(width).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}
