package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wheel-of-names/audio"
	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/document"
	"github.com/lixenwraith/wheel-of-names/logger"
	"github.com/lixenwraith/wheel-of-names/render"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

// defaultSaveName is used when no document file was given
const defaultSaveName = "wheel"

// Game is the interactive session: it owns the wheel, translates input into
// wheel operations and feeds frames to the render pipeline. All methods run
// on the loop goroutine.
type Game struct {
	screen tcell.Screen
	clock  Clock
	log    logger.Logger
	player audio.Player
	keys   *KeyTable
	rng    render.Rand
	crash  func(any)

	wheel    *wheel.Wheel
	display  *wheel.Viewer
	settings Settings

	orchestrator *render.RenderOrchestrator
	confetti     *render.Confetti

	// Frame state
	progress float64
	cursor   int
	winner   *wheel.Result
	spinLog  logger.Logger

	status        string
	statusUntil   time.Time
	emptyNoticeAt time.Time

	// prompt is non-nil while the names prompt is open
	prompt *[]rune
}

// Option configures a Game
type Option func(*Game)

// WithClock replaces the system clock
func WithClock(c Clock) Option { return func(g *Game) { g.clock = c } }

// WithPlayer sets the sound player
func WithPlayer(p audio.Player) Option { return func(g *Game) { g.player = p } }

// WithLogger sets the logger
func WithLogger(l logger.Logger) Option { return func(g *Game) { g.log = l } }

// WithRand sets the confetti randomness
func WithRand(r render.Rand) Option { return func(g *Game) { g.rng = r } }

// WithCrashHandler sets the handler for panics on the event poller
func WithCrashHandler(fn func(any)) Option { return func(g *Game) { g.crash = fn } }

// New creates a game over w, drawing on screen. The screen must be initialized.
func New(screen tcell.Screen, w *wheel.Wheel, s Settings, opts ...Option) (*Game, error) {
	if s.FrameInterval <= 0 {
		s.FrameInterval = constants.FrameUpdateInterval
	}
	if len(s.Palette) == 0 {
		s.Palette = constants.DefaultPalette
	}
	g := &Game{
		screen:   screen,
		clock:    SystemClock{},
		log:      logger.Nop(),
		player:   audio.Nop{},
		keys:     DefaultKeyTable(),
		rng:      wheel.DefaultRNG(),
		wheel:    w,
		settings: s,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.crash == nil {
		g.crash = g.defaultCrash
	}
	g.spinLog = g.log

	if err := g.applyViews(); err != nil {
		return nil, err
	}

	g.confetti = render.NewConfetti(g.rng, s.Palette)
	g.orchestrator = render.NewRenderOrchestrator(screen)
	g.orchestrator.Register(render.NewWheelRenderer(), render.PriorityWheel)
	g.orchestrator.Register(render.PointerRenderer{}, render.PriorityPointer)
	g.orchestrator.Register(render.SidebarRenderer{}, render.PriorityUI)
	g.orchestrator.Register(render.ChromeRenderer{}, render.PriorityUI)
	g.orchestrator.Register(g.confetti, render.PriorityParticle)
	g.orchestrator.Register(render.WinnerRenderer{}, render.PriorityOverlay)
	return g, nil
}

// Wheel returns the wheel the game drives
func (g *Game) Wheel() *wheel.Wheel { return g.wheel }

// Settings returns the current session settings
func (g *Game) Settings() Settings { return g.settings }

// Winner returns the last settled result, nil while spinning or before the first spin
func (g *Game) Winner() *wheel.Result { return g.winner }

// Status returns the status bar message
func (g *Game) Status() string { return g.status }

// applyViews compiles the wheel view and installs it for both drawing and
// selection. Refused while spinning.
func (g *Game) applyViews() error {
	v, err := wheel.NewViewer(g.settings.WheelView())
	if err != nil {
		return fmt.Errorf("wheel view: %w", err)
	}
	if err := g.wheel.SetSelection(v); err != nil {
		return err
	}
	g.display = v
	return nil
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.clock.Now().Add(constants.StatusMessageTimeout)
}

// HandleEvent processes one terminal event and reports whether the session
// should continue
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.orchestrator.Resize()
		return true
	case *tcell.EventKey:
		if g.prompt != nil {
			g.handlePromptKey(ev)
			return true
		}
		return g.handleIntent(g.keys.Lookup(ev))
	}
	return true
}

func (g *Game) handleIntent(intent Intent) bool {
	switch intent {
	case IntentQuit:
		g.wheel.Cancel()
		return false
	case IntentEscape:
		if g.wheel.Cancel() {
			g.spinLog.Info("spin cancelled")
			g.setStatus("Spin cancelled")
			return true
		}
		g.winner = nil
		g.confetti.Clear()
	case IntentSpin:
		g.spin()
	case IntentCursorUp:
		g.moveCursor(-1)
	case IntentCursorDown:
		g.moveCursor(1)
	case IntentWeightUp:
		g.stepWeight(constants.WeightStep)
	case IntentWeightDown:
		g.stepWeight(-constants.WeightStep)
	case IntentDelete:
		g.deleteEntry()
	case IntentAdd:
		if g.wheel.Spinning() {
			g.log.Debug("names prompt ignored while spinning")
			return true
		}
		buf := make([]rune, 0, 32)
		g.prompt = &buf
	case IntentSave:
		g.save()
	case IntentToggleBorders:
		g.settings.ShowBorders = !g.settings.ShowBorders
	case IntentToggleTitle:
		g.settings.ShowTitle = !g.settings.ShowTitle
	case IntentToggleDark:
		g.settings.DarkMode = !g.settings.DarkMode
	case IntentToggleRemoveWinner:
		g.settings.RemoveWinner = !g.settings.RemoveWinner
		g.setStatus(onOff("Remove winner", g.settings.RemoveWinner))
	case IntentToggleSound:
		g.settings.PlaySound = !g.settings.PlaySound
		g.setStatus(onOff("Sound", g.settings.PlaySound))
	case IntentToggleConfetti:
		g.settings.Confetti = !g.settings.Confetti
		g.setStatus(onOff("Confetti", g.settings.Confetti))
	case IntentToggleSlow:
		g.settings.SlowSpin = !g.settings.SlowSpin
		g.setStatus(onOff("Slow spin", g.settings.SlowSpin))
	case IntentToggleDuplicates:
		g.toggleDuplicates()
	case IntentDurationDown:
		g.settings.stepDuration(-1)
		g.setStatus(fmt.Sprintf("Spin duration %gs", g.settings.SpinSeconds))
	case IntentDurationUp:
		g.settings.stepDuration(1)
		g.setStatus(fmt.Sprintf("Spin duration %gs", g.settings.SpinSeconds))
	}
	return true
}

func onOff(label string, on bool) string {
	if on {
		return label + " on"
	}
	return label + " off"
}

// busy reports and logs a refused request; ErrBusy is never shown to the user
func (g *Game) busy(err error, what string) bool {
	if errors.Is(err, wheel.ErrBusy) {
		g.log.Debugf("%s ignored: %v", what, err)
		return true
	}
	return false
}

func (g *Game) spin() {
	now := g.clock.Now()
	d, err := wheel.SpinDuration(g.settings.SpinSeconds, g.settings.SlowSpin)
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	st, err := g.wheel.Spin(d, now)
	if err != nil {
		if g.busy(err, "spin") {
			return
		}
		g.log.Warnf("spin refused: %v", err)
		g.setStatus("Add names to spin")
		return
	}

	g.winner = nil
	g.progress = 0
	g.emptyNoticeAt = time.Time{}
	g.confetti.Clear()
	g.status = ""
	g.spinLog = g.log.WithFields(map[string]any{"spin": st.ID})
	g.spinLog.Infof("spin started: %d sectors, %s, %.2f turns", st.SectorCount(), st.Duration, (st.TargetRotation-st.StartRotation)/constants.FullTurn)
}

// Update advances the wheel and the effects to the clock's current time
func (g *Game) Update() {
	now := g.clock.Now()

	if g.wheel.Spinning() {
		f, res := g.wheel.Advance(now)
		g.progress = f.Progress
		if f.Crossing != nil {
			if g.settings.PlaySound {
				g.player.Tick()
			}
			g.spinLog.Debugf("crossed sector %d at %.3f", f.Crossing.Sector, f.Rotation)
		}
		if res != nil {
			g.finish(res, now)
		}
	}

	if !g.emptyNoticeAt.IsZero() && !now.Before(g.emptyNoticeAt) {
		g.emptyNoticeAt = time.Time{}
		g.setStatus("All names have been selected!")
	}
	if g.status != "" && now.After(g.statusUntil) {
		g.status = ""
	}
	g.confetti.Update(now)
}

func (g *Game) finish(res *wheel.Result, now time.Time) {
	g.winner = res
	g.spinLog.WithFields(map[string]any{
		"winner": res.Entry.Name,
		"index":  res.Index,
	}).Infof("spin settled at %.4f", res.Rotation)

	if g.settings.PlaySound {
		g.player.Win()
	}
	if g.settings.Confetti {
		g.confetti.Celebrate(now, g.layout())
	}
	g.setStatus("Winner: " + res.Entry.Name)

	if !g.settings.RemoveWinner {
		return
	}
	if err := g.wheel.RemoveWinner(*res); err != nil {
		g.log.Warnf("remove winner: %v", err)
		return
	}
	// The removed row no longer exists in the sidebar
	kept := *res
	kept.Index = -1
	g.winner = &kept
	g.clampCursor()
	if g.wheel.Len() == 0 {
		g.emptyNoticeAt = now.Add(constants.EmptyWheelNoticeDelay)
	}
}

func (g *Game) moveCursor(delta int) {
	g.cursor += delta
	g.clampCursor()
}

func (g *Game) clampCursor() {
	g.cursor = max(0, min(g.cursor, g.wheel.Len()-1))
}

func (g *Game) stepWeight(delta float64) {
	i := g.cursor
	err := g.wheel.Mutate(func(s *wheel.EntrySet) error {
		e, err := s.At(i)
		if err != nil {
			return err
		}
		return s.SetWeight(i, document.ClampWeight(e.Weight+delta))
	})
	if err != nil && !g.busy(err, "weight change") {
		g.log.Debugf("weight change: %v", err)
	}
}

func (g *Game) deleteEntry() {
	i := g.cursor
	var removed wheel.Entry
	err := g.wheel.Mutate(func(s *wheel.EntrySet) error {
		var err error
		removed, err = s.Remove(i)
		return err
	})
	if err != nil {
		if !g.busy(err, "delete") {
			g.log.Debugf("delete: %v", err)
		}
		return
	}
	g.winner = nil
	g.clampCursor()
	g.setStatus("Removed " + removed.Name)
}

func (g *Game) toggleDuplicates() {
	merge := !g.settings.Display.MergeDuplicates
	prev := g.settings
	g.settings.Selection.MergeDuplicates = merge
	g.settings.Display.MergeDuplicates = merge
	if err := g.applyViews(); err != nil {
		g.settings = prev
		if !g.busy(err, "duplicates toggle") {
			g.log.Warnf("duplicates toggle: %v", err)
		}
		return
	}
	g.setStatus(onOff("Show duplicates", !merge))
}

// handlePromptKey edits the names prompt. Enter adds the typed names, comma
// separated, each optionally name:weight.
func (g *Game) handlePromptKey(ev *tcell.EventKey) {
	buf := *g.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		g.prompt = nil
	case tcell.KeyEnter:
		g.prompt = nil
		g.addNames(string(buf))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(buf) > 0 {
			*g.prompt = buf[:len(buf)-1]
		}
	case tcell.KeyRune:
		*g.prompt = append(buf, ev.Rune())
	}
}

func (g *Game) addNames(text string) {
	entries, err := document.ParseNames(strings.ReplaceAll(text, ",", "\n"))
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	if len(entries) == 0 {
		return
	}
	if err := g.appendEntries(entries); err != nil {
		if !g.busy(err, "add names") {
			g.setStatus(err.Error())
		}
		return
	}
	g.cursor = g.wheel.Len() - 1
	g.setStatus(fmt.Sprintf("Added %d", len(entries)))
}

// appendEntries adds entries with palette colors continuing from the set.
// The batch lands whole or not at all.
func (g *Game) appendEntries(entries []wheel.Entry) error {
	palette := g.settings.Palette
	return g.wheel.Mutate(func(s *wheel.EntrySet) error {
		all := s.Entries()
		for _, e := range entries {
			e.Color = palette[len(all)%len(palette)]
			all = append(all, e)
		}
		staged, err := wheel.NewEntrySet(all...)
		if err != nil {
			return err
		}
		s.Replace(staged)
		return nil
	})
}

func (g *Game) save() {
	set, err := wheel.NewEntrySet(g.wheel.Entries()...)
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	path := g.settings.File
	if path == "" {
		path = defaultSaveName
	}
	p, err := document.Save(path, document.New(set, g.settings.DocumentOptions()))
	if err != nil {
		g.log.Errorf("save: %v", err)
		g.setStatus("Save failed: " + err.Error())
		return
	}
	g.settings.File = p
	g.log.Infof("saved %d entries to %s", set.Len(), p)
	g.setStatus("Saved " + p)
}

func (g *Game) layout() render.Layout {
	w, h := g.orchestrator.Buffer().Size()
	return render.ComputeLayout(w, h, g.settings.ShowTitle)
}

// Render draws one frame
func (g *Game) Render() {
	now := g.clock.Now()
	ctx := render.RenderContext{
		Now:         now,
		Theme:       render.ThemeFor(g.settings.DarkMode),
		Rotation:    g.wheel.Rotation(),
		Display:     g.wheel.View(g.display),
		Spinning:    g.wheel.Spinning(),
		Progress:    g.progress,
		Winner:      g.winner,
		ShowBorders: g.settings.ShowBorders,
		Title:       g.settings.DisplayTitle(),
		ShowTitle:   g.settings.ShowTitle,
		Cursor:      g.cursor,
		Status:      g.status,
		Help:        helpText,
	}
	for i, e := range g.wheel.Entries() {
		ctx.Sidebar = append(ctx.Sidebar, render.SidebarEntry{
			Name:   e.Name,
			Weight: e.Weight,
			Share:  g.wheel.Share(i),
			Color:  e.Color,
		})
	}
	if len(ctx.Sidebar) == 0 {
		ctx.Cursor = -1
	}
	if g.prompt != nil {
		ctx.Status = "Add (name or name:weight, comma separated): " + string(*g.prompt) + "_"
		ctx.Help = "enter add  esc cancel"
	}
	g.orchestrator.RenderFrame(ctx)
}
