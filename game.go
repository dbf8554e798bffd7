package main

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"tree-canvas/canvas"
	"tree-canvas/engine"
	"tree-canvas/input"
	"tree-canvas/ui"
)

type Game struct {
	cfg          Config
	store        *canvas.Store
	poller       *input.Poller
	ui           *ui.UISystem
	boards       *Boards
	face         font.Face
	screenWidth  int
	screenHeight int

	// scene is the cached layout, rebuilt when the camera or tree changes.
	scene        *Scene
	sceneVersion int

	screenshotRequested bool
}

func NewGame(cfg Config, boards *Boards) *Game {
	if boards == nil {
		boards = NewBoards()
	}
	opts := append(cfg.StoreOptions(), canvas.WithPixelRatio(func() float64 {
		if m := ebiten.Monitor(); m != nil {
			return m.DeviceScaleFactor()
		}
		return 1
	}))
	g := &Game{
		cfg:    cfg,
		store:  canvas.NewStore(opts...),
		poller: input.NewPoller(),
		boards: boards,
		face:   LoadUIFont(cfg.Font),
	}
	g.poller.LineHeight = cfg.Input.WheelLineHeight
	g.poller.ScrollStep = cfg.Input.ScrollStep

	g.ui = ui.NewUISystem(
		func() font.Face { return g.face },
		func() (int, int) { return g.screenWidth, g.screenHeight },
		g.zoomAtCentre,
		g.recenter,
		DrawTextLines,
	)
	return g
}

// zoomAtCentre zooms anchored at the middle of the container.
func (g *Game) zoomAtCentre(delta float64) {
	c := g.store.Container()
	g.store.ZoomCameraAt(delta, g.store.ScreenToScene(c.Width/2, c.Height/2))
}

func (g *Game) recenter() {
	c := g.store.Container()
	g.store.Initialize(c.Width, c.Height)
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	res := g.poller.Poll(g.ui.IsMouseOver(mx, my))
	for _, in := range res.Intents {
		input.Apply(g.store, in)
	}

	g.ui.Update(1 / float32(g.cfg.Window.TPS))
	g.handleKeys()

	if res.Click && g.scene != nil {
		g.branchAt(res.ClickX, res.ClickY)
	}
	return nil
}

func (g *Game) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.runMacro()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.recenter()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveBoards(g.boards, g.cfg.Snapshot); err != nil {
			g.report(err)
		} else {
			slog.Info("boards saved", "file", g.cfg.Snapshot, "boards", g.boards.Root.Len())
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dispatch(ResetAction{})
	}
}

func (g *Game) runMacro() {
	if err := engine.RunFile(g.cfg.Macro, g.store); err != nil {
		g.report(err)
		return
	}
	g.ui.Debug.Clear()
	slog.Info("macro finished", "file", g.cfg.Macro)
}

// branchAt grows a branch from the square under a click in container
// pixels.
func (g *Game) branchAt(sx, sy float64) {
	node, square, ok := g.scene.HitTest(g.store.ScreenToScene(sx, sy))
	if !ok {
		return
	}
	g.dispatch(BranchAction{Path: node.Path(), Square: square})
}

func (g *Game) dispatch(a Action) {
	if err := g.boards.Dispatch(a); err != nil {
		if errors.Is(err, ErrOccupied) {
			slog.Debug("move rejected", "err", err)
			return
		}
		g.report(err)
	}
}

func (g *Game) report(err error) {
	slog.Error("action failed", "err", err)
	g.ui.Debug.SetError(err.Error())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	if !g.store.Initialized() {
		return
	}

	if g.scene == nil || g.store.ShouldRender() || g.sceneVersion != g.boards.Version {
		g.scene = Compose(g.boards.Root, g.store.Root())
		g.sceneVersion = g.boards.Version
		g.store.MarkRendered()
	}

	scale := g.store.Scale()
	canvas.DrawBackgroundGrid(g.store, screen, GridSize, GridMinSpacing, ColorGrid, ColorOriginCross)
	DrawScene(screen, g.scene, scale, g.store.Pointer())

	cam := g.store.Camera()
	pointer := g.store.Pointer()
	g.ui.Debug.Lines = []string{
		fmt.Sprintf("Camera: (%.1f, %.1f, %.1f)", cam.X, cam.Y, cam.Z),
		fmt.Sprintf("Scale: %.3f  DPR: %.2f", scale.X, g.store.PixelRatio()),
		fmt.Sprintf("Pointer: (%.1f, %.1f)", pointer.X, pointer.Y),
		fmt.Sprintf("Boards: %d visible, %d culled", len(g.scene.Boards), g.scene.Culled),
		"Pan: drag  Zoom: wheel  Branch: click a square",
	}
	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	f, err := os.Create("screenshot.png")
	if err != nil {
		slog.Error("screenshot", "err", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		slog.Error("screenshot", "err", err)
		return
	}
	slog.Info("screenshot saved", "file", "screenshot.png")
}

// Layout re-initializes the camera whenever the container size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		g.store.Initialize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
