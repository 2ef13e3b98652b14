//go:build ebiten

package app

import (
	"life-sim/internal/core"
	"life-sim/internal/render"
	"life-sim/internal/session"
	"life-sim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd session.Command
}{
	{ebiten.KeyEscape, session.Quit},
	{ebiten.KeySpace, session.Reseed},
	{ebiten.KeyArrowLeft, session.Pause},
	{ebiten.KeyArrowRight, session.Resume},
	{ebiten.KeyArrowUp, session.SpeedUp},
	{ebiten.KeyArrowDown, session.SpeedDown},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	driver  *session.Driver
	frame   *render.ImageCanvas
	painter *render.Painter
	img     *ebiten.Image
	drawn   *core.Grid
	overlay *ui.Overlay

	err error
}

// New constructs a Game for the provided session.
func New(sess *session.Session, showHUD bool) *Game {
	size := sess.Grid().Size()
	w, h := size.W*core.CellSize, size.H*core.CellSize
	frame := render.NewImageCanvas(w, h)
	sess.OnModeChange(LogModeChange(sess))
	return &Game{
		sess:    sess,
		driver:  session.NewDriver(sess, core.NewPacer(sess.Speed())),
		frame:   frame,
		painter: render.NewPainter(frame),
		img:     ebiten.NewImage(w, h),
		overlay: ui.NewOverlay(showHUD),
	}
}

// Update queues input every tick and runs a loop iteration whenever one is
// due at the current speed.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	g.driver.Queue(pollKeys()...)
	if ebiten.IsWindowBeingClosed() {
		g.driver.Queue(session.Quit)
	}
	if _, running := g.driver.Tick(); !running {
		return ebiten.Termination
	}
	g.overlay.Update()
	return nil
}

// Draw repaints the frame texture when the generation changed and blits it.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.sess.Grid()
	if grid != g.drawn {
		if err := g.painter.Render(grid); err != nil {
			if g.err == nil {
				g.err = err
			}
			return
		}
		g.img.WritePixels(g.frame.Img.Pix)
		g.drawn = grid
	}
	screen.DrawImage(g.img, nil)
	g.overlay.Draw(screen, ui.StatusLine(g.sess.Generation(), grid.Population(), g.sess.Speed(), g.sess.Paused()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.Grid().Size()
	return s.W * core.CellSize, s.H * core.CellSize
}

func pollKeys() []session.Command {
	var cmds []session.Command
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	return cmds
}
