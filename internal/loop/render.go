package loop

import (
	"fmt"

	"platforms/internal/draw"
	"platforms/internal/geom"
)

// drawFrame renders the world through the camera, then overlays the UI for
// the current game phase, and flushes everything as one frame.
func drawFrame(g *Game, dt float64, frame *draw.FrameWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(frame)
	canvas.Clear()

	// The camera's view-space placement belongs to the renderer: center of
	// the pixel grid, fixed zoom. The simulation only moves Target.
	cam := &g.World.Camera
	cam.Zoom = cameraZoom
	cam.Offset = geom.Vec2{
		X: float64(canvas.Width()) / 2,
		Y: float64(canvas.Height()) / 2,
	}

	for i := range g.World.Obstacles {
		r := cam.WorldToViewRect(g.World.Obstacles[i].Rect)
		canvas.FillRect(r.X, r.Y, r.W, r.H)
	}

	pr := cam.WorldToViewRect(g.World.Player.Rect())
	canvas.FillRect(pr.X, pr.Y, pr.W, pr.H)

	canvas.Render(frame)

	switch g.State {
	case GameStateStart:
		drawStartScreen(frame, canvas)
	case GameStatePlaying:
		drawHealthBar(g, dt, frame)
	case GameStateDead:
		drawDeadScreen(g, frame, canvas)
	}
	frame.ResetStyle()

	return frame.Flush()
}

// drawHealthBar draws the HUD health bar: a colored fill for current health
// over a white trailing bar that shrinks toward it after damage.
func drawHealthBar(g *Game, dt float64, frame *draw.FrameWriter) {
	p := &g.World.Player

	// Advance the trailing bar. It only lags on the way down; healing (a
	// reset) snaps it up immediately.
	if p.Health < g.HealthView {
		g.HealthView -= dt * healthViewSpeed
		if g.HealthView < p.Health {
			g.HealthView = p.Health
		}
	} else {
		g.HealthView = p.Health
	}

	healthRatio := clamp01(p.Health / p.MaxHealth)
	viewRatio := clamp01(g.HealthView / p.MaxHealth)
	barColor := draw.Lerp(draw.ColorRed, draw.ColorGreen, healthRatio)

	frame.MoveCursor(healthBarCol, healthBarRow)
	for i := 0; i < healthBarWidth; i++ {
		t := (float64(i) + 0.5) / healthBarWidth
		switch {
		case t < healthRatio:
			frame.SetForeground(barColor)
		case t < viewRatio:
			frame.SetForeground(draw.ColorWhite)
		default:
			frame.SetForeground(draw.ColorDarkGray)
		}
		frame.WriteString(string(draw.BlockFull))
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(frame *draw.FrameWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "P L A T F O R M S"
	frame.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to Start"
	frame.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: A/D or Arrows to move, W or Up to jump, R to reset, Q to quit"
	frame.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawDeadScreen draws the game over screen.
func drawDeadScreen(g *Game, frame *draw.FrameWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "GAME OVER"
	frame.WriteAt(centerX-len(title)/2, centerY-2, title)

	health := fmt.Sprintf("Final impact left you at %.0f health", g.World.Player.Health)
	frame.WriteAt(centerX-len(health)/2, centerY, health)

	prompt := "Press ENTER to Restart"
	frame.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
