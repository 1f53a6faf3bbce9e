package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tween-tui/tween/internal/logger"
	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/models"
	"github.com/tween-tui/tween/pkg/styles"
)

type sessionState int

const (
	ruleListView sessionState = iota
	layerEditorView
)

// StatusMsg carries a transient message for the status bar.
type StatusMsg string

type App struct {
	state    sessionState
	ruleList *RuleListModel
	editor   *LayerEditorModel

	store    *styles.Store
	defaults css.Defaults
	log      *logger.Logger

	quitConfirm *ConfirmationModel

	width     int
	height    int
	statusMsg string
}

// NewApp builds the TUI over a loaded store. Settings must already be
// validated.
func NewApp(store *styles.Store, settings *models.Settings, log *logger.Logger) *App {
	defaults, err := settings.TransitionDefaults()
	if err != nil {
		defaults = css.StandardDefaults()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		state:       ruleListView,
		ruleList:    NewRuleListModel(store, defaults, log),
		store:       store,
		defaults:    defaults,
		log:         log,
		quitConfirm: NewConfirmation(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.ruleList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ruleList.SetSize(msg.Width, msg.Height)
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if a.quitConfirm.Active() {
			return a, a.quitConfirm.Update(msg)
		}
		if msg.Type == tea.KeyCtrlC {
			return a, a.requestQuit()
		}
		if a.state == ruleListView && msg.String() == "q" {
			return a, a.requestQuit()
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case openEditorMsg:
		a.editor = NewLayerEditorModel(a.store, msg.ruleIndex, msg.layerIndex, msg.layer, a.defaults, a.log)
		a.editor.SetSize(a.width, a.height)
		a.state = layerEditorView
		return a, a.editor.Init()

	case editorClosedMsg:
		a.state = ruleListView
		a.editor = nil
		return a, nil
	}

	switch a.state {
	case ruleListView:
		_, cmd := a.ruleList.Update(msg)
		return a, cmd
	case layerEditorView:
		if a.editor != nil {
			_, cmd := a.editor.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

// requestQuit quits immediately when everything is saved, otherwise asks.
func (a *App) requestQuit() tea.Cmd {
	if !a.store.Dirty() {
		return tea.Quit
	}
	a.quitConfirm.Show(
		"Unsaved changes. Quit anyway?",
		true,
		func() tea.Cmd { return tea.Quit },
		func() tea.Cmd { return nil },
	)
	return nil
}

func (a *App) View() string {
	var content string
	switch a.state {
	case layerEditorView:
		if a.editor != nil {
			content = a.editor.View()
		}
	default:
		content = a.ruleList.View()
	}

	status := a.statusMsg
	if a.quitConfirm.Active() {
		status = a.quitConfirm.View()
	}
	if status != "" {
		content += "\n" + NormalStyle.Render(status)
	}
	return content
}
