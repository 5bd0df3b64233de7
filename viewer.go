package starnavi

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/starnavi/fstree"
	"go.uber.org/zap"
)

// Window defaults used by Run when RunConfig leaves them zero.
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 800
	DefaultFontSize     = 13.0
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// FontSize of labels in pixels. Zero means DefaultFontSize.
	FontSize float64
	// Font draws labels. Nil loads Go Regular at FontSize. Pass the font
	// given to Options.LabelFont so labels fit the arcs reserved for them.
	Font *TTFMeasurer
	// Tree and Watcher enable live tag updates. Either may be nil.
	Tree    *fstree.Tree
	Watcher *fstree.Watcher
	Logger  *zap.Logger
	// ScreenshotDir receives F12 captures. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string
}

// Viewer is the interactive galaxy browser. It implements ebiten.Game.
//
// Controls: the pointer selects a sector and star; left click activates;
// Backspace, the left arrow or a right click goes back; the right arrow goes
// forward; S toggles star selection mode; H, N and T recluster by
// hierarchy, name and tags; D returns to the nearest directory galaxy; F12
// saves a screenshot.
type Viewer struct {
	history    *History
	renderer   *Renderer
	tree       *fstree.Tree
	watcher    *fstree.Watcher
	transition *Transition
	log        *zap.Logger

	width, height int
	showFPS       bool
	stats         frameStats
	shots         screenshots
}

// NewViewer creates a viewer over h. renderer may be nil, in which case a
// renderer without labels is used.
func NewViewer(h *History, renderer *Renderer, cfg RunConfig) *Viewer {
	if renderer == nil {
		renderer = NewRenderer(nil)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	return &Viewer{
		history:  h,
		renderer: renderer,
		tree:     cfg.Tree,
		watcher:  cfg.Watcher,
		log:      log,
		width:    cfg.Width,
		height:   cfg.Height,
		showFPS:  cfg.ShowFPS,
		shots:    screenshots{dir: dir, log: log},
	}
}

// History returns the navigation history driven by the viewer.
func (v *Viewer) History() *History { return v.history }

// Update handles tag changes and input, and advances the rotation and any
// running transition.
func (v *Viewer) Update() error {
	start := time.Now()
	dt := float32(1.0 / float64(ebiten.TPS()))

	v.applyTagEvents()

	if v.transition != nil {
		v.transition.Update(dt)
		if v.transition.Done {
			v.transition = nil
		}
	}

	g := v.history.Current()
	g.SetViewport(v.fit(g.Viewport()))
	g.Advance()

	mx, my := ebiten.CursorPosition()
	v.history.IsColliding(float64(mx), float64(my))
	v.handleInput()

	v.stats.updateTime += time.Since(start)
	return nil
}

// handleInput maps pointer and key presses onto history operations.
func (v *Viewer) handleInput() {
	h := v.history
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if h.Activate() == ActivateNavigate {
			v.transition = DrillIn(h.Current())
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		if h.Back() {
			v.settle()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		if h.Forward() {
			v.settle()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		on := h.ToggleStarSelection()
		v.log.Debug("star selection", zap.Bool("on", on))
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		v.recluster(ClusterHierarchy)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		v.recluster(ClusterName)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		v.recluster(ClusterTags)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		if h.SetDirectoryMode() {
			v.settle()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		v.shots.request(h.Current().Name())
	}
}

func (v *Viewer) recluster(mode ClusterMode) {
	if v.history.SetClusterMode(mode) {
		v.transition = DrillIn(v.history.Current())
	}
}

// settle stops any transition and shows the current galaxy at rest.
func (v *Viewer) settle() {
	if v.transition != nil {
		v.transition.Finish()
		v.transition = nil
	}
	g := v.history.Current()
	vp := v.fit(g.Viewport())
	vp.Zoom, vp.Alpha = 1, 1
	g.SetViewport(vp)
}

// fit returns vp resized to the window, keeping its zoom and alpha.
func (v *Viewer) fit(vp Viewport) Viewport {
	vp.X, vp.Y = 0, 0
	vp.Width, vp.Height = float64(v.width), float64(v.height)
	return vp
}

// applyTagEvents re-reads the sidecars reported by the watcher. The current
// galaxy reclusters in tags mode and otherwise only refreshes its
// vocabulary.
func (v *Viewer) applyTagEvents() {
	if v.watcher == nil || v.tree == nil {
		return
	}
	events := v.watcher.Drain()
	if len(events) == 0 {
		return
	}
	changed := false
	for _, ev := range events {
		f, err := v.tree.RebuildTags(ev.Path)
		if err != nil {
			v.log.Warn("reload tags", zap.String("path", ev.Path), zap.Error(err))
			continue
		}
		if f != nil {
			changed = true
		}
	}
	if !changed {
		return
	}
	g := v.history.Current()
	if g.Mode() == ClusterTags {
		g.Rebuild()
	} else {
		g.RebuildTags()
	}
	v.log.Debug("tags reloaded", zap.Int("events", len(events)), zap.String("galaxy", g.Name()))
}

// Draw renders the current galaxy.
func (v *Viewer) Draw(screen *ebiten.Image) {
	start := time.Now()
	v.renderer.Draw(screen, v.history.Current(), v.history.StarSelectionMode())
	if v.showFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			max(v.width-fpsWidgetWidth, 0), 0)
	}
	v.shots.flush(screen, time.Now())
	v.stats.drawTime += time.Since(start)
	v.stats.frames++
	v.stats.log(v.log, v.history.Current())
}

const fpsWidgetWidth = 100

// Layout implements ebiten.Game. The galaxy is drawn at the window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// WindowDisplayRadius returns the radius in pixels at which a galaxy is
// drawn in a width x height window. Zero sizes mean the window defaults.
func WindowDisplayRadius(width, height int) float64 {
	if width <= 0 {
		width = DefaultWindowWidth
	}
	if height <= 0 {
		height = DefaultWindowHeight
	}
	return NewViewport(float64(width), float64(height)).DisplayRadius()
}

// Run opens a window browsing h and blocks until it is closed.
func Run(h *History, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWindowWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultWindowHeight
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = DefaultFontSize
	}
	font := cfg.Font
	if font == nil {
		var err error
		if font, err = NewDefaultTTFMeasurer(cfg.FontSize); err != nil {
			return err
		}
	}
	renderer := NewRenderer(font)
	renderer.Background = color.Black

	v := NewViewer(h, renderer, cfg)
	h.Current().SetViewport(NewViewport(float64(cfg.Width), float64(cfg.Height)))

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("starnavi: run: %w", err)
	}
	return nil
}
