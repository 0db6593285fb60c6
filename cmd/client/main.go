package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"net/http"

	"mayday/internal/config"
	"mayday/internal/game/simulation"
	"mayday/internal/logging"
	"mayday/internal/telemetry"
	"mayday/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/labstack/gommon/log"
)

type Game struct {
	width, height int
	sim           *telemetry.Guard
	panel         *ui.Panel
	paused        bool
	lg            *logging.Logger
}

func NewGame(sim *telemetry.Guard, screenWidth, screenHeight int, lg *logging.Logger) *Game {
	return &Game{
		width:  screenWidth,
		height: screenHeight,
		sim:    sim,
		panel:  ui.NewPanel(10, screenHeight-90, 260, 80),
		lg:     lg,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.lg.Infof("Paused: %v", g.paused)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.panel.Active = g.panel.Contains(x, y)
	}

	if !g.paused {
		g.sim.Step(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	snap := g.sim.Snapshot()
	for _, a := range snap.Airports {
		g.drawAirport(screen, a)
	}
	for _, ac := range snap.Aircraft {
		g.drawAircraft(screen, ac)
	}

	g.drawUI(screen, snap)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// worldToScreen maps plane coordinates (origin at the center, +Y up) to
// screen pixels.
func (g *Game) worldToScreen(wx, wy float64) (sx, sy float64) {
	sx = wx + float64(g.width)/2
	sy = float64(g.height)/2 - wy
	return
}

func (g *Game) drawAirport(screen *ebiten.Image, a simulation.AirportView) {
	sx, sy := g.worldToScreen(a.Position.X, a.Position.Y)
	vector.DrawFilledRect(screen, float32(sx-12.5), float32(sy-12.5), 25, 25, color.RGBA{255, 0, 0, 255}, false)
	ebitenutil.DebugPrintAt(screen, a.Name, int(sx)-9, int(sy)+16)
}

func (g *Game) drawAircraft(screen *ebiten.Image, ac simulation.AircraftView) {
	sx, sy := g.worldToScreen(ac.Position.X, ac.Position.Y)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), 4, color.RGBA{0, 255, 0, 255}, false)

	lineLength := 30.0
	radians := ac.Heading * math.Pi / 180.0
	ex, ey := g.worldToScreen(ac.Position.X+lineLength*math.Cos(radians), ac.Position.Y+lineLength*math.Sin(radians))
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), 1, color.RGBA{100, 100, 255, 255}, false)

	tagText := fmt.Sprintf("%s\nALT:%.0f\nSPD:%.0f\nHDG:%.0f\nDST:%s",
		ac.ID, ac.Altitude, ac.Speed, ac.Heading, ac.Target)
	ebitenutil.DebugPrintAt(screen, tagText, int(sx)+10, int(sy)-20)
}

func (g *Game) drawUI(screen *ebiten.Image, snap simulation.Snapshot) {
	status := "RUNNING"
	if g.paused {
		status = "PAUSED (P to resume)"
	}
	lines := []string{
		fmt.Sprintf("Time: %.1fs  %s", snap.GameTimeSeconds, status),
		fmt.Sprintf("Density: %s", snap.Density),
		fmt.Sprintf("Airports: %d  Aircraft: %d", len(snap.Airports), len(snap.Aircraft)),
	}
	if n := len(snap.Radio); n > 0 {
		last := snap.Radio[n-1]
		lines = append(lines, fmt.Sprintf("%s %s", last.Callsign, last.Message))
	}
	g.panel.SetLines(lines...)
	g.panel.Draw(screen)
}

func main() {
	settings, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	lg := logging.New("mayday", settings.LogLevel, settings.LogsDir)
	defer lg.Close()
	lg.Infof("Starting with seed %d, density %v, layout %v", settings.Seed, settings.Density, settings.Layout)

	sim, err := simulation.NewSimulation(settings.SimulationConfig(lg.Logger))
	if err != nil {
		lg.Fatal(err)
	}
	guard := telemetry.NewGuard(sim)

	if settings.TelemetryEnabled {
		go func() {
			lg.Infof("Telemetry listening on %s", settings.TelemetryAddress)
			err := http.ListenAndServe(settings.TelemetryAddress, telemetry.New(guard, lg.Logger))
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				lg.Errorf("telemetry server: %v", err)
			}
		}()
	}

	width, height := int(settings.Width), int(settings.Height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Mayday")
	ebiten.SetTPS(settings.TPS)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(guard, width, height, lg)); err != nil {
		lg.Fatal(err)
	}
}
