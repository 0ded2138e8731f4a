//go:build ebiten

package app

import (
	"errors"
	"log/slog"

	"lifehash/internal/core"
	"lifehash/internal/digest"
	"lifehash/internal/render"
	"lifehash/internal/ui"
	pcore "lifehash/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxCatchUp bounds how many generations one frame may advance.
const maxCatchUp = 4

// Game adapts a Playback to the ebiten.Game interface.
type Game struct {
	play    *Playback
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep
	rng     *pcore.RNG
	logger  *slog.Logger

	view     int
	paused   bool
	tickOnce bool
}

// New constructs a Game showing play.
func New(play *Playback, opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		play:    play,
		overlay: ui.NewOverlay(play),
		clock:   core.NewFixedStep(opts.TPS),
		rng:     pcore.NewRNG(opts.Seed),
		logger:  opts.Logger,
		view:    ViewSide(opts.Scale),
	}
	g.hud = ui.NewHUD(g, "lifehash", opts.HUDWidth)
	return g
}

// Parameters adds viewer state to the playback snapshot.
func (g *Game) Parameters() core.ParameterSnapshot {
	snap := g.play.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Viewer",
		Params: []core.Parameter{
			core.BoolParam("paused", "Paused", g.paused),
			core.IntParam("tps", "Generations/s", g.clock.TPS()),
		},
	})
	return snap
}

// Update handles per-frame input and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.play.Rewind()
		g.paused = false
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.reload(g.play.NextVersion())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		fp := digest.Fingerprint{Digest: g.rng.Digest(digest.Size)}
		g.reload(g.play.Load(fp, g.play.Version()))
	}

	g.overlay.Update()

	switch {
	case g.tickOnce:
		g.play.Advance(1)
		g.tickOnce = false
	case !g.paused:
		g.play.Advance(g.clock.Steps(maxCatchUp))
	}
	g.hud.Update()
	return nil
}

func (g *Game) reload(err error) {
	if err != nil {
		g.logger.Error("reload failed", "error", err)
		return
	}
	g.clock.Reset()
	ebiten.SetWindowTitle(windowTitle(g.play))
}

// Draw renders the fingerprint, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	colors := g.play.Image().Colors
	if g.painter == nil {
		g.painter = render.NewGridPainter(colors.W, colors.H)
	} else if w, h := g.painter.Size(); w != colors.W || h != colors.H {
		g.painter = render.NewGridPainter(colors.W, colors.H)
	}
	g.painter.Blit(screen, colors, g.view/colors.W, 0, 0)
	g.overlay.Draw(screen, g.view)
	g.hud.Draw(screen, g.view, g.view)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view + g.hud.Width(), g.view
}

// Run opens the viewer window and blocks until it is closed.
func Run(play *Playback, opts Options) error {
	opts = opts.withDefaults()
	game := New(play, opts)
	ebiten.SetWindowTitle(windowTitle(play))
	ebiten.SetWindowSize(game.view+opts.HUDWidth, game.view)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func windowTitle(p *Playback) string {
	return "lifehash " + p.Fingerprint().Identifier(0) + " " + p.Version().String()
}

var _ ui.Layers = (*Playback)(nil)
