package views

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/planvas/planvas/internal/config"
	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/planfile"
	"github.com/planvas/planvas/internal/stream"
	"github.com/planvas/planvas/internal/tui/components"
	"github.com/planvas/planvas/internal/tui/msgs"
	"github.com/planvas/planvas/internal/tui/styles"
)

// CanvasZone is the bubblezone id marking the scrollable canvas area.
const CanvasZone = "canvas"

// feedBufferSize bounds the event channel between the feed goroutine and
// the update loop.
const feedBufferSize = 64

// seqCounter issues load and highlight sequence numbers. It is process-wide
// and monotonic so a token minted by one canvas instance can never collide
// with a token minted by its replacement: a stale message from a discarded
// view fails the sequence check no matter how the views were swapped.
var seqCounter atomic.Int64

func nextSeq() int64 {
	return seqCounter.Add(1)
}

// Feed is a push-based event source driving the canvas. Run must close out
// when it finishes or when the context is cancelled.
type Feed interface {
	Run(ctx context.Context, out chan<- stream.Event)
}

// CanvasOptions configures a canvas view instance.
type CanvasOptions struct {
	// PlanDir is the snapshot directory to load the plan from. Ignored when
	// Plan is set.
	PlanDir string
	// Plan is a preloaded plan (demo mode).
	Plan *graph.Plan
	// Feed is the event source; nil renders a static snapshot.
	Feed Feed
	// Reset clears node statuses after load. Set it when the feed replays
	// the event log from the beginning, so state is not applied twice.
	Reset bool
	// FeedLabel names the source in the status bar ("live", "replay", ...).
	FeedLabel string
}

// Messages owned by the canvas view.

// planLoadedMsg carries the result of an asynchronous plan load, tagged
// with the load sequence that requested it.
type planLoadedMsg struct {
	seq  int64
	plan *graph.Plan
	err  error
}

// feedEventMsg carries one event from the feed channel.
type feedEventMsg struct {
	ev stream.Event
}

// feedClosedMsg signals that the feed channel has been closed.
type feedClosedMsg struct{}

// clearHighlightMsg fires when a highlight timer elapses. It is discarded
// unless both the sequence and the plan id still match, so a stale timer
// can never clear a newer highlight or touch a replaced plan.
type clearHighlightMsg struct {
	seq    int64
	planID string
}

type toggleHit struct {
	id   string
	rect graph.Rect
}

type promptState struct {
	nodeID      string
	instruction string
}

type canvasKeyMap struct {
	JumpActive  key.Binding
	JumpError   key.Binding
	Toggle      key.Binding
	Focus       key.Binding
	Detail      key.Binding
	FollowFlip  key.Binding
	ClearOrBack key.Binding
	Quit        key.Binding
}

func newCanvasKeyMap() canvasKeyMap {
	return canvasKeyMap{
		JumpActive:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "active")),
		JumpError:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Toggle:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "branch")),
		Focus:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus")),
		Detail:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		FollowFlip:  key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "follow")),
		ClearOrBack: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// CanvasModel renders one plan as a scrollable graph canvas and keeps it
// synchronized with its event feed. It owns the graph store; every mutation
// happens inside Update, so the store needs no locking.
type CanvasModel struct {
	opts CanvasOptions
	cfg  *config.Config

	store   *graph.Store
	deriver *graph.Deriver
	view    graph.View

	port      components.Canvasport
	minimap   components.Minimap
	statusbar components.StatusBar
	logview   components.LogView
	spinner   spinner.Model
	help      help.Model
	keys      canvasKeyMap

	grid       *components.Grid
	toggleHits []toggleHit

	planID  string
	loadSeq int64

	events chan stream.Event
	cancel context.CancelFunc

	highlightSeq int64
	followedNode string
	follow       bool

	prompted map[string]bool
	prompt   *promptState

	detailOpen bool

	width  int
	height int
	err    error
}

// NewCanvasModel creates a canvas view for the given source.
func NewCanvasModel(opts CanvasOptions, cfg *config.Config) CanvasModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return CanvasModel{
		opts:      opts,
		cfg:       cfg,
		store:     graph.NewStore(),
		deriver:   graph.NewDeriver(cfg.Minimap.Width, cfg.Minimap.Height),
		port:      components.NewCanvasport(80, 24),
		minimap:   components.NewMinimap(cfg.Minimap.Width, cfg.Minimap.Height),
		statusbar: components.NewStatusBar(),
		logview:   components.NewLogView(cfg.Minimap.Width+2, 10, 0),
		spinner:   s,
		help:      help.New(),
		keys:      newCanvasKeyMap(),
		follow:    cfg.Canvas.FollowEnabled(),
		prompted:  map[string]bool{},
		loadSeq:   nextSeq(),
	}
}

// Init implements tea.Model.
func (m CanvasModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPlan())
}

// Close cancels the feed and invalidates outstanding timers. The app shell
// calls it on teardown and before replacing the canvas with another plan.
func (m *CanvasModel) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loadSeq = nextSeq()
	m.highlightSeq = nextSeq()
}

// loadPlan starts an asynchronous snapshot load guarded by the load
// sequence: a stale load's result is discarded on arrival instead of
// overwriting fresher state. Every model gets a fresh sequence from the
// process-wide counter and Close replaces it, so anything still in flight
// lands dead even when the app shell has swapped in a new canvas instance.
func (m CanvasModel) loadPlan() tea.Cmd {
	seq := m.loadSeq
	opts := m.opts

	return func() tea.Msg {
		if opts.Plan != nil {
			return planLoadedMsg{seq: seq, plan: opts.Plan}
		}
		p, err := planfile.Load(opts.PlanDir)
		return planLoadedMsg{seq: seq, plan: p, err: err}
	}
}

// listenFeed waits for the next feed event.
func (m CanvasModel) listenFeed() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return feedClosedMsg{}
		}
		return feedEventMsg{ev: ev}
	}
}

// scheduleHighlight sets the transient highlight and arms its clear timer.
// Replacing the sequence first invalidates any timer already in flight, so
// re-highlighting extends the flash instead of being cut short.
func (m *CanvasModel) scheduleHighlight(nodeID string) tea.Cmd {
	m.store.SetHighlight(nodeID)
	m.highlightSeq = nextSeq()
	seq := m.highlightSeq
	planID := m.planID

	return tea.Tick(m.cfg.Canvas.HighlightClear.Std(), func(time.Time) tea.Msg {
		return clearHighlightMsg{seq: seq, planID: planID}
	})
}

// jumpTo highlights a node and centers the viewport on it.
func (m *CanvasModel) jumpTo(nodeID string) tea.Cmd {
	n := m.store.Plan().NodeByID(nodeID)
	if n == nil {
		return nil
	}
	cmd := m.scheduleHighlight(nodeID)
	m.port.CenterOn(graph.NodeRect(*n))
	m.refresh()
	return cmd
}

// refresh rederives the view and repaints the canvas grid. Scrolling alone
// does not need it; the grid covers the full canvas and the window is
// re-extracted per frame.
func (m *CanvasModel) refresh() {
	if m.store.Plan() == nil {
		return
	}
	m.view = m.deriver.Derive(m.store, m.port.Viewport())
	m.port.SetCanvasSize(m.view.Layout.Canvas.W, m.view.Layout.Canvas.H)
	m.grid, m.toggleHits = paintCanvas(m.view, m.store)
}

// Update implements tea.Model.
func (m CanvasModel) Update(msg tea.Msg) (CanvasModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.port.SetSize(m.canvasSize())
		m.logview.SetSize(m.cfg.Minimap.Width+2, m.detailHeight())
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		// Keep ticking even when idle so the spinner resumes the moment
		// execution does.
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case planLoadedMsg:
		return m.handlePlanLoaded(msg)

	case feedEventMsg:
		return m.handleEvent(msg.ev)

	case feedClosedMsg:
		return m, nil

	case clearHighlightMsg:
		if msg.seq != m.highlightSeq || msg.planID != m.planID {
			return m, nil
		}
		m.store.SetHighlight("")
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m CanvasModel) handlePlanLoaded(msg planLoadedMsg) (CanvasModel, tea.Cmd) {
	if msg.seq != m.loadSeq {
		return m, nil
	}
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}

	if m.opts.Reset {
		msg.plan.ResetStatuses()
	}
	m.store.ReplacePlan(msg.plan)
	m.planID = msg.plan.ID
	m.deriver.Invalidate()
	m.followedNode = ""
	m.prompted = map[string]bool{}
	m.prompt = nil
	m.port.ScrollTo(0, 0)
	m.refresh()

	slog.Debug("plan loaded", "planId", m.planID, "nodes", len(msg.plan.Nodes))

	if m.opts.Feed == nil {
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.events = make(chan stream.Event, feedBufferSize)
	go m.opts.Feed.Run(ctx, m.events)

	return m, m.listenFeed()
}

// handleEvent is the synchronization controller: one feed event in, one
// atomic store update plus its time-bounded side effects out.
func (m CanvasModel) handleEvent(ev stream.Event) (CanvasModel, tea.Cmd) {
	cmds := []tea.Cmd{m.listenFeed()}

	// Events for a plan other than the loaded one are dropped.
	if ev.PlanID != m.planID || ev.Validate() != nil {
		return m, tea.Batch(cmds...)
	}

	m.store.ApplyStatusUpdate(ev.NodeID, ev.Patch())

	switch ev.Type {
	case stream.TypeNodeStarted:
		if ev.NodeID != m.followedNode {
			m.followedNode = ev.NodeID
			cmds = append(cmds, m.scheduleHighlight(ev.NodeID))
			if m.follow {
				if n := m.store.Plan().NodeByID(ev.NodeID); n != nil {
					m.port.EnsureVisible(graph.NodeRect(*n), m.cfg.Canvas.ScrollMargin)
				}
			}
		}

	case stream.TypeNodeFailed:
		n := m.store.Plan().NodeByID(ev.NodeID)
		if n != nil && n.PendingInstruction != "" && m.store.SelectedNodeID() == "" {
			dedupe := ev.NodeID + "\x00" + n.PendingInstruction
			if !m.prompted[dedupe] {
				m.prompted[dedupe] = true
				m.store.Select(ev.NodeID)
				m.detailOpen = true
				m.prompt = &promptState{nodeID: ev.NodeID, instruction: n.PendingInstruction}
				m.port.SetSize(m.canvasSize())
				m.port.EnsureVisible(graph.NodeRect(*n), m.cfg.Canvas.ScrollMargin)
			}
		}
	}

	m.refresh()
	m.syncDetail()
	return m, tea.Batch(cmds...)
}

func (m CanvasModel) handleMouse(msg tea.MouseMsg) (CanvasModel, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if z := zone.Get(components.MinimapZone); z.InBounds(msg) {
			x, y := z.Pos(msg)
			cx, cy := m.minimap.CanvasTarget(x, y, m.view)
			m.port.CenterOn(graph.Rect{X: cx, Y: cy, W: 1, H: 1})
			return m, nil
		}
		if z := zone.Get(CanvasZone); z.InBounds(msg) {
			relX, relY := z.Pos(msg)
			offX, offY := m.port.Offsets()
			return m.handleCanvasClick(relX+offX, relY+offY)
		}
	}

	m.port = m.port.Update(msg)
	return m, nil
}

// handleCanvasClick hit-tests toggles first (they sit outside node boxes),
// then visible nodes.
func (m CanvasModel) handleCanvasClick(cx, cy int) (CanvasModel, tea.Cmd) {
	for _, t := range m.toggleHits {
		if t.rect.Contains(cx, cy) {
			m.store.ToggleBranch(t.id)
			m.refresh()
			return m, nil
		}
	}
	for _, n := range m.view.Visible.Nodes {
		if graph.NodeRect(n).Contains(cx, cy) {
			m.store.Select(n.ID)
			m.detailOpen = true
			m.port.SetSize(m.canvasSize())
			m.refresh()
			m.syncDetail()
			return m, nil
		}
	}
	// Clicking empty canvas clears the selection.
	m.store.Select("")
	m.detailOpen = false
	m.port.SetSize(m.canvasSize())
	m.refresh()
	return m, nil
}

func (m CanvasModel) handleKey(msg tea.KeyMsg) (CanvasModel, tea.Cmd) {
	if m.prompt != nil {
		switch msg.String() {
		case "enter", "esc":
			m.prompt = nil
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ClearOrBack):
		if m.detailOpen || m.store.SelectedNodeID() != "" {
			m.store.Select("")
			m.detailOpen = false
			m.port.SetSize(m.canvasSize())
			m.refresh()
			return m, nil
		}
		m.Close()
		return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
	}

	if m.store.Plan() == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.JumpActive):
		if active := m.store.Plan().ActiveNode(); active != "" {
			return m, m.jumpTo(active)
		}
		return m, nil

	case key.Matches(msg, m.keys.JumpError):
		for _, n := range m.store.Plan().Nodes {
			if n.Status == graph.StatusError {
				return m, m.jumpTo(n.ID)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if sel := m.store.SelectedNodeID(); sel != "" {
			m.store.ToggleBranch(graph.BranchToggleID(sel))
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		target := m.store.SelectedNodeID()
		if target == "" {
			target = m.store.Plan().ActiveNode()
		}
		if m.store.FocusNodeID() != "" {
			m.store.SetFocus("")
		} else if target != "" {
			m.store.SetFocus(target)
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.FollowFlip):
		m.follow = !m.follow
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if m.store.SelectedNodeID() != "" {
			m.detailOpen = !m.detailOpen
			m.port.SetSize(m.canvasSize())
			m.refresh()
			m.syncDetail()
		}
		return m, nil
	}

	// Remaining keys scroll: the log panel when it is open and the key is
	// vertical, the canvas otherwise.
	if m.detailOpen {
		switch msg.String() {
		case "up", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.logview, cmd = m.logview.Update(msg)
			return m, cmd
		}
	}
	m.port = m.port.Update(msg)
	return m, nil
}

// syncDetail pushes the selected node's logs into the detail panel.
func (m *CanvasModel) syncDetail() {
	if !m.detailOpen {
		return
	}
	sel := m.store.SelectedNodeID()
	if sel == "" {
		return
	}
	if n := m.store.Plan().NodeByID(sel); n != nil {
		m.logview.SetLines(n.Logs)
	}
}

func (m CanvasModel) executing() bool {
	p := m.store.Plan()
	return p != nil && p.Executing()
}

// canvasSize returns the canvas window dimensions given the current
// terminal size and the side panel.
func (m CanvasModel) canvasSize() (int, int) {
	w := m.width - (m.cfg.Minimap.Width + 2) - 1
	if w < 0 {
		w = 0
	}
	h := m.height - 2 // title + status bar
	if m.prompt != nil {
		h--
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (m CanvasModel) detailHeight() int {
	_, h := m.canvasSize()
	h -= m.cfg.Minimap.Height + 2 // minimap panel incl. border
	if h < 3 {
		h = 3
	}
	return h
}

func (m CanvasModel) statusRight() string {
	label := m.opts.FeedLabel
	if label == "" {
		label = "snapshot"
	}
	if m.follow {
		return label + " ⟳"
	}
	return label
}

func (m CanvasModel) titleLine() string {
	p := m.store.Plan()
	if p == nil {
		return styles.TitleStyle.Render("planvas")
	}
	counts := fmt.Sprintf("%d/%d done", p.CountByStatus(graph.StatusCompleted), len(p.Nodes))
	if errs := p.CountByStatus(graph.StatusError); errs > 0 {
		counts += styles.ErrorStyle.Render(fmt.Sprintf("  %d failed", errs))
	}
	title := styles.TitleStyle.Render(p.Name)
	if m.executing() {
		title = m.spinner.View() + " " + title
	}
	return title + "  " + styles.SubtleStyle.Render(counts)
}
