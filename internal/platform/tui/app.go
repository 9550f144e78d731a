package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// footerHeight is the row kept below the screen buffer for key help.
const footerHeight = 1

// Mode is the screen the app is currently showing.
type Mode int

const (
	ModeMenu Mode = iota
	ModeScores
	ModePlaying
	ModeSettling // collision happened, waiting before the game-over screen
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeScores:
		return "scores"
	case ModePlaying:
		return "playing"
	case ModeSettling:
		return "settling"
	case ModeGameOver:
		return "game_over"
	}
	return "unknown"
}

// AppOptions configures an AppModel.
type AppOptions struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil plays without high scores
	Logger  *log.Logger    // nil discards logs
	Sound   Sound          // nil is silent
	Player  string
}

// AppModel drives the whole flow: menu, game, game over and scoreboard.
type AppModel struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	sound   Sound
	player  string
	keys    *KeyMapper
	help    help.Model
	screen  *core.Screen
	cue     string // sound cue emitted with the next frame

	mode       Mode
	menu       ButtonSet
	gameOver   ButtonSet
	scoreboard ScoreboardModel

	session    *snake.Session
	runID      string
	input      core.InputFrame
	frame      snake.Frame
	finalScore int
	finalLen   int
	bestScore  int

	gen        int // bumped whenever a session starts or is abandoned
	debouncing bool
	pending    ButtonID
	quitting   bool
}

// NewAppModel creates the app at the start menu.
func NewAppModel(opts AppOptions) AppModel {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = Silent{}
	}

	m := AppModel{
		cfg:     opts.Config,
		runtime: rt,
		store:   opts.Store,
		logger:  logger,
		sound:   sound,
		player:  opts.Player,
		keys:    NewKeyMapper(),
		help:    help.New(),
		screen:  core.NewScreen(rt.ScreenW, max(0, rt.ScreenH-footerHeight)),
		mode:    ModeMenu,
		menu: NewButtonSet(
			Button{ID: ButtonPlay, Label: "Play"},
			Button{ID: ButtonScores, Label: "Scores"},
			Button{ID: ButtonQuit, Label: "Quit"},
		),
		gameOver: NewButtonSet(
			Button{ID: ButtonPlay, Label: "Play Again"},
			Button{ID: ButtonMenu, Label: "Menu"},
			Button{ID: ButtonQuit, Label: "Quit"},
		),
		input: core.NewInputFrame(),
	}

	if m.store != nil {
		best, err := m.store.HighScore()
		if err != nil {
			m.logger.Warn("could not read high score", "error", err)
		}
		m.bestScore = best
	}

	m.help.Width = rt.ScreenW
	m.layout()
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case DebounceDoneMsg:
		return m.handleDebounceDone(msg)
	case SettleDoneMsg:
		if msg.Gen != m.gen || m.mode != ModeSettling {
			return m, nil
		}
		m.mode = ModeGameOver
		m.cue = ""
		return m, nil
	}

	if m.mode == ModeScores {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleResize resizes the screen buffer and re-lays out the buttons.
func (m AppModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-footerHeight))
	m.help.Width = msg.Width
	m.layout()

	if m.mode == ModeScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

// layout positions both button stacks for the current screen size.
func (m *AppModel) layout() {
	cx, h := m.screen.Width()/2, m.screen.Height()
	m.menu.Layout(cx, stackTop(h, len(m.menu.Buttons()))+1)
	m.gameOver.Layout(cx, stackTop(h, len(m.gameOver.Buttons()))+2)
}

// stackTop returns the top row that vertically centers n buttons.
func stackTop(screenH, n int) int {
	h := n*buttonHeight + (n-1)*buttonSpacing
	return max(0, (screenH-h)/2)
}

// handleKey processes keyboard input for every mode but the scoreboard.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		return m.quit()
	}

	switch m.mode {
	case ModePlaying:
		if action == core.ActionBack {
			m.logger.Info("run abandoned", "run", m.runID, "score", m.frame.Score)
			m.endSession()
			m.mode = ModeMenu
			return m, nil
		}
		if m.boardFits() {
			m.input.Set(action)
		}
		return m, nil

	case ModeMenu, ModeGameOver:
		if m.debouncing {
			return m, nil
		}
		buttons := m.buttons()
		switch action {
		case core.ActionUp:
			buttons.MoveFocus(-1)
		case core.ActionDown:
			buttons.MoveFocus(1)
		case core.ActionConfirm:
			return m.press(buttons.Focused().ID)
		case core.ActionBack:
			if m.mode == ModeGameOver {
				return m.press(ButtonMenu)
			}
		}
	}
	return m, nil
}

// handleMouse forwards mouse events to the visible buttons.
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeMenu && m.mode != ModeGameOver {
		return m, nil
	}
	if m.debouncing {
		return m, nil
	}
	if id, clicked := m.buttons().HandleMouse(msg); clicked {
		return m.press(id)
	}
	return m, nil
}

// buttons returns the button stack for the current screen.
func (m *AppModel) buttons() *ButtonSet {
	if m.mode == ModeGameOver {
		return &m.gameOver
	}
	return &m.menu
}

// press reacts to a button. Quit is immediate; anything else runs after
// the debounce pause, during which input is dropped.
func (m AppModel) press(id ButtonID) (tea.Model, tea.Cmd) {
	if id == ButtonQuit {
		return m.quit()
	}
	m.debouncing = true
	m.pending = id
	return m, debounceCmd(m.gen, m.cfg.ButtonDebounce())
}

// handleDebounceDone performs the pending button action.
func (m AppModel) handleDebounceDone(msg DebounceDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.debouncing {
		return m, nil
	}
	m.debouncing = false
	m.input.Clear()

	switch m.pending {
	case ButtonPlay:
		return m.startSession()
	case ButtonScores:
		m.scoreboard = NewScoreboardModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.mode = ModeScores
	case ButtonMenu:
		m.mode = ModeMenu
	}
	return m, nil
}

// updateScores delegates to the scoreboard until it asks to leave.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		m.mode = ModeMenu
		return m, nil
	}
	return m, cmd
}

// startSession begins a fresh game and schedules its first tick.
func (m AppModel) startSession() (tea.Model, tea.Cmd) {
	m.gen++
	seed := m.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(m.gen)
	}

	m.session = snake.NewSession(m.cfg.Session(), seed)
	m.runID = uuid.NewString()
	m.frame = m.session.Frame()
	m.input = core.NewInputFrame()
	m.mode = ModePlaying

	grid := m.session.Grid()
	m.logger.Info("session started",
		"run", m.runID,
		"player", m.player,
		"grid", fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"seed", seed,
	)
	return m, tickCmd(m.gen, m.session.TickInterval())
}

// endSession drops the current game and invalidates its timers.
func (m *AppModel) endSession() {
	m.gen++
	m.session = nil
	m.input = core.NewInputFrame()
	m.cue = ""
}

// handleTick advances the session by one step.
func (m AppModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.mode != ModePlaying || m.session == nil {
		return m, nil
	}

	m.cue = ""

	// Hold the game while the board is hidden.
	if !m.boardFits() {
		m.input = core.NewInputFrame()
		return m, tickCmd(m.gen, m.session.TickInterval())
	}

	res := m.session.Tick(m.input)
	m.input = core.NewInputFrame()
	m.frame = res.Frame

	for _, e := range res.Events {
		m.cue += m.sound.Cue(e)
		m.logger.Debug("event", "run", m.runID, "event", e, "score", res.Score)
	}

	if res.Ended() {
		m.mode = ModeSettling
		m.finalScore = res.Score
		m.finalLen = len(res.Frame.Snake)
		m.logger.Info("game over", "run", m.runID, "score", m.finalScore, "length", m.finalLen)
		m.saveScore()
		return m, settleCmd(m.gen, res.Settle)
	}

	return m, tickCmd(m.gen, m.session.TickInterval())
}

// boardFits reports whether the screen can show the whole board.
func (m AppModel) boardFits() bool {
	w, h := BoardSize(m.cfg.Grid())
	return m.screen.Width() >= w && m.screen.Height() >= h
}

// saveScore records the finished run. Zero scores are not kept.
func (m *AppModel) saveScore() {
	if m.finalScore > m.bestScore {
		m.bestScore = m.finalScore
	}
	if m.store == nil || m.finalScore <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:  m.runID,
		Player: m.player,
		Score:  m.finalScore,
		Length: m.finalLen,
	})
	if err != nil {
		m.logger.Error("could not save score", "run", m.runID, "error", err)
	}
}

// quit ends the program.
func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.debouncing = false
	return m, tea.Quit
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == ModeScores {
		return m.scoreboard.View()
	}

	m.screen.Clear()
	var keys help.KeyMap = m.keys.Keys()
	switch m.mode {
	case ModeMenu:
		m.drawMenu()
		keys = m.keys.Keys().MenuHelp()
	case ModePlaying, ModeSettling:
		DrawBoard(m.screen, m.cfg.Grid(), m.frame)
		if !m.boardFits() {
			m.screen.DrawTextCentered(m.screen.Height()/2+3, "Paused", core.ColorDim)
		}
	case ModeGameOver:
		m.drawGameOver()
		keys = m.keys.Keys().MenuHelp()
	}
	return m.cue + RenderScreen(m.screen) + "\n" + m.help.View(keys)
}

// drawMenu draws the title and the start menu buttons.
func (m AppModel) drawMenu() {
	top := m.menu.Buttons()[0].Rect.Y
	m.screen.DrawTextCentered(top-2, "S N A K E", core.ColorSnakeHead)
	m.menu.Draw(m.screen)
}

// drawGameOver draws the final board with a panel holding the final and
// best score and the restart buttons.
func (m AppModel) drawGameOver() {
	DrawBoard(m.screen, m.cfg.Grid(), m.frame)

	buttons := m.gameOver.Buttons()
	top := buttons[0].Rect.Y
	bottom := buttons[len(buttons)-1].Rect.Bottom()
	panelW := buttonWidth + 8
	panel := core.NewRect(m.screen.Width()/2-panelW/2, top-6, panelW, bottom-top+7)
	m.screen.DrawRect(panel, ' ', core.ColorDefault)
	m.screen.DrawBox(panel, core.ColorFrame)

	m.screen.DrawTextCentered(top-4, "GAME OVER", core.ColorAlert)
	m.screen.DrawTextCentered(top-2, fmt.Sprintf("Score: %d   Best: %d", m.finalScore, m.bestScore), core.ColorText)
	m.gameOver.Draw(m.screen)
}

// Mode returns the current screen.
func (m AppModel) Mode() Mode {
	return m.mode
}

// FinalScore returns the score of the last finished run.
func (m AppModel) FinalScore() int {
	return m.finalScore
}

// BestScore returns the best score known to this app.
func (m AppModel) BestScore() int {
	return m.bestScore
}

// IsQuitting returns true once the user asked to quit.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for local play.
func Run(opts AppOptions) error {
	model := NewAppModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion events
	)

	_, err := p.Run()
	return err
}
