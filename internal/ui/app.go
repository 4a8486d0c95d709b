package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tgienger/todo/internal/notify"
	"github.com/tgienger/todo/internal/todo"
	"github.com/tgienger/todo/internal/ui/views"
)

type App struct {
	logger   *log.Logger
	todoView *views.TodoView
	width    int
	height   int
}

// Creates a new application
func NewApp(list *todo.List, toasts *notify.Queue, opts views.Options, logger *log.Logger) *App {
	return &App{
		logger:   logger,
		todoView: views.NewTodoView(list, toasts, opts),
	}
}

func (a *App) Init() tea.Cmd {
	a.logger.Debug("app started")
	return a.todoView.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if msg.Width != a.width || msg.Height != a.height {
			a.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
		}
		a.width = msg.Width
		a.height = msg.Height
	}

	_, cmd := a.todoView.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	return a.todoView.View()
}

// Run starts the program on the alternate screen and blocks until the user quits
func Run(app *App, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(app, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	_, err := p.Run()
	if err != nil {
		app.logger.Error("program exited with error", "err", err)
		return err
	}
	app.logger.Debug("app stopped")
	return nil
}
