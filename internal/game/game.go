package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ripple-button/internal/audio"
	"github.com/iburimskiy/ripple-button/internal/config"
	"github.com/iburimskiy/ripple-button/internal/widget"
)

var (
	rippleIdle     = color.NRGBA{R: 38, G: 166, B: 154, A: 255}
	rippleHover    = color.NRGBA{R: 77, G: 200, B: 186, A: 255}
	ripplePressed  = color.NRGBA{R: 0, G: 121, B: 107, A: 255}
	rippleSelected = color.NRGBA{R: 255, G: 143, B: 0, A: 255}

	dashIdle  = color.NRGBA{R: 150, G: 170, B: 200, A: 255}
	dashHover = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Options configures the demo scene.
type Options struct {
	RippleCount int
	Duration    time.Duration
	AutoStart   bool
}

// Game hosts a ripple button and two dash lines in an ebiten window.
type Game struct {
	player *audio.Player

	ripple *widget.RippleButton
	hLine  *widget.DashLine
	vLine  *widget.DashLine

	// background
	colorPhase float64

	// time the ripples have been animating
	running time.Duration

	// open button state
	buttonHovered bool
	buttonPressed bool

	// ripple button state
	rippleHovered bool
	ripplePressed bool
	selected      bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New lays out the scene. player may be silent if the speaker failed to open.
func New(opts Options, player *audio.Player) *Game {
	g := &Game{
		player:  player,
		prevKey: map[ebiten.Key]bool{},
	}

	g.ripple = widget.NewRippleButton(widget.RippleButtonOptions{
		RippleCount: opts.RippleCount,
		Duration:    opts.Duration,
		AutoStart:   opts.AutoStart,
		RippleColor: rippleColors(),
		Padding: widget.Insets{
			Left: config.RipplePadding, Top: config.RipplePadding,
			Right: config.RipplePadding, Bottom: config.RipplePadding,
		},
		Label: config.RippleLabel,
	})
	cx, cy := config.WindowWidth/2, config.WindowHeight/2
	half := config.RippleSize / 2
	g.ripple.SetBounds(image.Rect(cx-half, cy-half, cx+half, cy+half))

	g.hLine = newDashLine()
	g.hLine.SetBounds(image.Rect(
		config.DashInset, config.WindowHeight-config.DashInset-config.DashThickness,
		config.WindowWidth-config.DashInset, config.WindowHeight-config.DashInset,
	))

	g.vLine = newDashLine()
	g.vLine.SetOrientation(widget.Vertical)
	g.vLine.SetBounds(image.Rect(
		config.WindowWidth-config.DashInset-config.DashThickness, config.ButtonY,
		config.WindowWidth-config.DashInset, config.WindowHeight-2*config.DashInset-config.DashThickness,
	))

	return g
}

func rippleColors() *widget.ColorStateList {
	return widget.NewColorStateList().
		Add(widget.StateSpec{Require: widget.StatePressed}, ripplePressed).
		Add(widget.StateSpec{Require: widget.StateSelected}, rippleSelected).
		Add(widget.StateSpec{Require: widget.StateHovered}, rippleHover).
		Add(widget.StateSpec{}, rippleIdle)
}

func newDashLine() *widget.DashLine {
	l := widget.NewDashLine(dashIdle)
	l.SetColorStateList(widget.NewColorStateList().
		Add(widget.StateSpec{Require: widget.StateHovered}, dashHover).
		Add(widget.StateSpec{}, dashIdle))
	l.SetDashWidth(config.DashWidth)
	l.SetDashGap(config.DashGap)
	l.SetLineWidth(config.DashLineWidth)
	return l
}

// rippleState folds the pointer and selection flags into a widget state.
func (g *Game) rippleState() widget.State {
	var s widget.State
	if g.rippleHovered {
		s |= widget.StateHovered
	}
	if g.ripplePressed && g.rippleHovered {
		s |= widget.StatePressed
	}
	if g.selected {
		s |= widget.StateSelected
	}
	return s
}

func hoverState(hovered bool) widget.State {
	if hovered {
		return widget.StateHovered
	}
	return 0
}

// frameTime is the clock advance of one Update call.
func frameTime() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()

	// Open Sound button
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openSoundDialog(); err != nil {
				log.Printf("open sound: %v", err)
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	// Ripple button
	g.rippleHovered = g.ripple.Contains(mouseX, mouseY)
	if g.rippleHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ripplePressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.ripplePressed && g.rippleHovered {
			g.selected = !g.selected
			g.player.PlayClick()
		}
		g.ripplePressed = false
	}
	g.ripple.SetState(g.rippleState())

	pt := image.Pt(mouseX, mouseY)
	g.hLine.SetState(hoverState(pt.In(g.hLine.Bounds())))
	g.vLine.SetState(hoverState(pt.In(g.vLine.Bounds())))

	if justPressed(ebiten.KeySpace) {
		g.toggleRipples()
	}
	if justPressed(ebiten.KeyUp) {
		g.changeRippleCount(1)
	}
	if justPressed(ebiten.KeyDown) {
		g.changeRippleCount(-1)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := frameTime()
	if g.ripple.IsRunning() {
		g.running += dt
	}
	g.ripple.Update(dt)
	g.colorPhase += config.ColorShiftSpeed

	return nil
}

func (g *Game) toggleRipples() {
	if g.ripple.IsRunning() {
		g.ripple.Stop()
		return
	}
	g.ripple.Start()
}

func (g *Game) changeRippleCount(delta int) {
	n := g.ripple.RippleCount() + delta
	if n < 0 || n > config.MaxRippleCount {
		return
	}
	wasRunning := g.ripple.IsRunning()
	g.ripple.SetRippleCount(n)
	if wasRunning {
		g.ripple.Start()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	g.hLine.Draw(screen)
	g.vLine.Draw(screen)
	g.ripple.Draw(screen)

	g.drawButton(screen)

	status := fmt.Sprintf("Rings: %d (Up/Down) | ", g.ripple.RippleCount())
	if g.ripple.IsRunning() {
		status += "Running " + formatDuration(g.running) + " - Space to stop"
	} else {
		status += "Stopped - Space to start"
	}
	if g.selected {
		status += " | Selected"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	const band = 4
	for y := 0; y < config.WindowHeight; y += band {
		ratio := float64(y) / float64(config.WindowHeight)
		r, gv, b := hsvToRgb((g.colorPhase+ratio*0.15)*360, 0.45, 0.18)
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, band, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Open Sound"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*6)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) openSoundDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Click Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.player.Load(filename); err != nil {
		return err
	}
	log.Printf("click sound loaded from %s", filename)
	g.lastErr = nil
	return nil
}

// LoadSound replaces the click sound before the window opens.
func (g *Game) LoadSound(path string) error {
	return g.player.Load(path)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close stops the animation and any playing sound.
func (g *Game) Close() {
	g.ripple.Detach()
	g.player.Close()
}
