package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/config"
	"github.com/csheth/storynook/internal/gesture"
	"github.com/csheth/storynook/internal/nav"
	"github.com/csheth/storynook/internal/onboarding"
	"github.com/csheth/storynook/internal/profile"
	"github.com/csheth/storynook/internal/reader"
	"github.com/csheth/storynook/internal/speech"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Catalog    catalog.Repository
	Speaker    speech.Speaker
	Logger     *log.Logger
	Settings   config.Config
	SkipSplash bool
	// ImportPDF names a picture-book PDF added to the catalog at startup.
	ImportPDF  string
}

// routeNavigator records that the stack changed so the model can mount the
// new top screen once the current event has been handled.
type routeNavigator struct {
	stack   *nav.Stack
	changed bool
}

func (r *routeNavigator) Navigate(p nav.Params) { r.stack.Navigate(p); r.changed = true }
func (r *routeNavigator) Replace(p nav.Params)  { r.stack.Replace(p); r.changed = true }
func (r *routeNavigator) CanGoBack() bool       { return r.stack.CanGoBack() }

func (r *routeNavigator) Back() {
	if r.stack.CanGoBack() {
		r.stack.Back()
		r.changed = true
	}
}

// carousel is the onboarding surface; it shows one step at a time.
type carousel struct {
	shown onboarding.Step
	turns int
}

func (c *carousel) PageTo(step onboarding.Step) {
	c.shown = step
	c.turns++
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Speaker == nil {
		cfg.Speaker = speech.Unavailable{}
	}
	if cfg.Settings == (config.Config{}) {
		cfg.Settings = config.Defaults()
	}
	if cfg.Catalog == nil {
		mem, err := catalog.Default()
		if err != nil {
			cfg.Logger.Error("built-in catalog unreadable", "err", err)
			mem = catalog.NewMemory()
		}
		cfg.Catalog = mem
	}

	var root nav.Params = nav.Splash{}
	if cfg.SkipSplash {
		root = nav.Onboarding{}
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Enter your name"
	nameInput.CharLimit = 40
	nameInput.Width = 40

	searchInput := textinput.New()
	searchInput.Placeholder = "Search by title or author…"
	searchInput.CharLimit = 80
	searchInput.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.SetTotalPages(onboarding.StepCount)
	dots.ActiveDot = progressFilledStyle.Render("•")
	dots.InactiveDot = progressEmptyStyle.Render("•")

	vp := viewport.New(76, 18)
	vp.MouseWheelEnabled = true

	return &model{
		config:      cfg,
		logger:      cfg.Logger,
		keys:        newKeyMap(),
		help:        help.New(),
		jobs:        newJobBus(cfg.Logger),
		layout:      newPageLayout(),
		nav:         &routeNavigator{stack: nav.NewStack(root, cfg.Logger)},
		runningJobs: map[string]jobSnapshot{},
		viewport:    vp,
		spinner:     spin,
		nameInput:   nameInput,
		searchInput: searchInput,
		stepDots:    dots,
		gestures:    gesture.NewTracker(cfg.Settings.Gesture.ColumnUnits, cfg.Settings.Gesture.RowUnits),
	}
}

type model struct {
	config Config
	logger *log.Logger
	keys   keyMap
	help   help.Model
	jobs   *jobBus
	layout pageLayout
	nav    *routeNavigator

	mounted      nav.Route
	paramsError  string
	helpVisible  bool
	infoMessage  string
	errorMessage string
	runningJobs  map[string]jobSnapshot

	viewport      viewport.Model
	viewportDirty bool
	spinner       spinner.Model

	splashTimer timer.Model
	splashDone  bool

	wizard     *onboarding.Wizard
	carousel   *carousel
	nameInput  textinput.Model
	cardCursor int
	stepDots   paginator.Model

	profile     profile.Answers
	shelves     []catalog.Shelf
	shelfCursor int
	bookCursor  int

	listTitle  string
	listBooks  []catalog.BookSummary
	listCursor int

	searchInput   textinput.Model
	searchResults []catalog.BookSummary
	searchCursor  int
	suggestion    *catalog.BookSummary

	detail catalog.BookSummary

	session    *reader.Session
	strip      *pageStrip
	gestures   *gesture.Tracker
	dragOrigin float64
	pressIndex int
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.mount()}
	if notifier, ok := m.config.Speaker.(speech.Notifier); ok {
		cmds = append(cmds, m.jobs.Start(jobKindSpeech, awaitSpeechJob(notifier.Events())))
	}
	if m.config.ImportPDF != "" {
		m.infoMessage = "Importing story…"
		cmds = append(cmds, m.jobs.Start(jobKindImport, importStoryJob(m.config.ImportPDF)))
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, m.settle(cmd)
}

// settle mounts a new screen after navigation and keeps the page strip
// animation running.
func (m *model) settle(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd}
	if m.nav.changed {
		m.nav.changed = false
		cmds = append(cmds, m.mount())
	}
	if m.strip != nil && m.strip.animating && !m.strip.scheduled {
		m.strip.scheduled = true
		cmds = append(cmds, stripFrameCmd(m.strip.seq))
	}
	return tea.Batch(cmds...)
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil
	case jobSignalMsg:
		if msg.Snapshot.Kind != jobKindSpeech {
			m.runningJobs[msg.Snapshot.ID] = msg.Snapshot
		}
		return nil
	case jobResultEnvelope:
		delete(m.runningJobs, msg.Snapshot.ID)
		if msg.Payload == nil {
			return nil
		}
		return m.update(msg.Payload)
	case speechEndedMsg:
		notifier, ok := m.config.Speaker.(speech.Notifier)
		if !ok {
			return nil
		}
		notifier.Resolve(msg.event)
		return m.jobs.Start(jobKindSpeech, awaitSpeechJob(notifier.Events()))
	case storyImportMsg:
		return m.handleStoryImport(msg)
	case spinner.TickMsg:
		if m.mounted != nav.RouteSplash || m.splashDone {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case timer.TickMsg:
		if m.mounted != nav.RouteSplash || m.splashDone || msg.ID != m.splashTimer.ID() {
			return nil
		}
		var cmd tea.Cmd
		m.splashTimer, cmd = m.splashTimer.Update(msg)
		return cmd
	case timer.TimeoutMsg:
		if m.mounted == nav.RouteSplash && msg.ID == m.splashTimer.ID() {
			m.finishSplash()
		}
		return nil
	case stripFrameMsg:
		if m.strip == nil || m.session == nil {
			return nil
		}
		if !m.strip.step(msg.seq) {
			return nil
		}
		m.strip.scheduled = false
		if !m.strip.animating {
			m.session.ScrollChanged(m.strip.offset)
		}
		return nil
	case stripSettleMsg:
		if m.strip == nil || msg.seq != m.strip.seq || m.strip.animating {
			return nil
		}
		m.strip.ScrollTo(float64(m.strip.nearest())*m.strip.pageWidth, true)
		return nil
	}
	return nil
}

func (m *model) quit() tea.Cmd {
	m.unmount()
	m.mounted = ""
	return tea.Quit
}

// goBack pops the current screen, or quits from the root screen.
func (m *model) goBack() tea.Cmd {
	if !m.nav.CanGoBack() {
		return m.quit()
	}
	m.nav.Back()
	return nil
}

func (m *model) resize(width, height int) {
	m.layout.Update(width, height)
	m.viewport.Width = m.layout.viewportWidth
	m.viewport.Height = m.layout.viewportHeight
	m.help.Width = width
	m.searchInput.Width = min(50, m.layout.viewportWidth-4)
	if m.strip != nil && m.session != nil {
		width := m.surfaceWidth()
		m.strip.resize(width)
		m.session.Pager().SetPageWidth(width)
	}
	m.markViewportDirty()
}

// surfaceWidth is the reader's page width in swipe units.
func (m *model) surfaceWidth() float64 {
	if m.layout.windowWidth == 0 {
		return m.config.Settings.Reader.PageWidth
	}
	return float64(m.layout.viewportWidth) * m.config.Settings.Gesture.ColumnUnits
}

func (m *model) mount() tea.Cmd {
	m.unmount()
	params := m.nav.stack.Current()
	m.mounted = params.Route()
	m.paramsError = ""
	m.errorMessage = ""
	m.helpVisible = false
	m.help.ShowAll = false
	m.viewport.SetYOffset(0)
	m.markViewportDirty()
	if err := params.Validate(); err != nil {
		m.paramsError = err.Error()
		m.logger.Warn("rejected route params", "route", params.Route(), "err", err)
		return nil
	}
	switch p := params.(type) {
	case nav.Splash:
		return m.mountSplash()
	case nav.Onboarding:
		return m.mountOnboarding()
	case nav.Home:
		m.mountHome(p)
	case nav.ViewAll:
		m.mountViewAll(p)
	case nav.Search:
		return m.mountSearch(p)
	case nav.BookDetail:
		m.mountDetail(p)
	case nav.Story:
		m.mountStory(p)
	}
	return nil
}

func (m *model) unmount() {
	switch m.mounted {
	case nav.RouteSplash:
		m.splashDone = true
	case nav.RouteOnboarding:
		m.wizard = nil
		m.nameInput.Blur()
	case nav.RouteSearch:
		m.searchInput.Blur()
	case nav.RouteStory:
		if m.session != nil {
			m.session.Close()
		}
		m.session = nil
		m.strip = nil
	}
	m.gestures.Cancel()
}

func (m *model) handleStoryImport(msg storyImportMsg) tea.Cmd {
	if msg.err != nil {
		m.errorMessage = fmt.Sprintf("Could not import story: %v", msg.err)
		m.infoMessage = ""
		return nil
	}
	reg, ok := m.config.Catalog.(registrar)
	if !ok {
		m.errorMessage = "This catalog does not accept imported stories."
		return nil
	}
	if err := reg.Register(msg.book, msg.story); err != nil {
		m.errorMessage = fmt.Sprintf("Could not import story: %v", err)
		m.infoMessage = ""
		return nil
	}
	m.logger.Info("story imported", "book", msg.book.ID, "pages", len(msg.story.Pages))
	m.infoMessage = fmt.Sprintf("Imported “%s” (%d pages).", msg.book.Title, len(msg.story.Pages))
	m.markViewportDirty()
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.paramsError != "" {
		switch msg.String() {
		case "esc", "q", "backspace":
			return m.goBack()
		}
		return nil
	}
	if !m.inputFocused() && msg.String() == "?" {
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return nil
	}
	switch m.mounted {
	case nav.RouteSplash:
		m.finishSplash()
		return nil
	case nav.RouteOnboarding:
		return m.handleOnboardingKey(msg)
	case nav.RouteHome:
		return m.handleHomeKey(msg)
	case nav.RouteViewAll:
		return m.handleViewAllKey(msg)
	case nav.RouteSearch:
		return m.handleSearchKey(msg)
	case nav.RouteBookDetail:
		return m.handleDetailKey(msg)
	case nav.RouteStory:
		return m.handleStoryKey(msg)
	}
	return nil
}

func (m *model) inputFocused() bool {
	switch m.mounted {
	case nav.RouteOnboarding:
		return m.wizard != nil && m.wizard.Step() == onboarding.StepName
	case nav.RouteSearch:
		return true
	}
	return false
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch m.mounted {
	case nav.RouteOnboarding:
		return m.handleOnboardingMouse(msg)
	case nav.RouteStory:
		return m.handleStoryMouse(msg)
	case nav.RouteHome, nav.RouteViewAll:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if m.viewportDirty {
		m.refreshViewport()
	}
}

func (m *model) refreshViewport() {
	m.viewportDirty = false
	var (
		content string
		focus   int
	)
	switch m.mounted {
	case nav.RouteHome:
		content, focus = m.buildHomeContent()
	case nav.RouteViewAll:
		content, focus = m.buildListContent()
	default:
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(content)
	m.ensureLineVisible(focus)
}

func (m *model) ensureLineVisible(line int) {
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
		return
	}
	bottom := m.viewport.YOffset + m.viewport.Height - 1
	if line > bottom {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}
