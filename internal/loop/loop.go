// Package loop provides the main game loop: input polling, world ticking and
// frame rendering at a fixed target rate.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"platforms/internal/draw"
	"platforms/internal/input"
	"platforms/internal/world"
)

// Options configures a game loop.
type Options struct {
	// TermSizeFunc reports the terminal dimensions each frame. Defaults to
	// querying os.Stdout; SSH sessions pass their own tracker.
	TermSizeFunc draw.TermSizeFunc
}

// Run starts the main game loop with the standard Input → Update → Draw
// cycle and blocks until the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	stream := input.StartStream(r)
	game := NewGame(rand.New(rand.NewSource(time.Now().UnixNano())))

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight)
	frame := draw.NewFrameWriter(w)

	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := stream.Read()
		if in.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		termWidth, termHeight, err = sizeFunc()
		if err != nil {
			return err
		}
		canvas.Resize(termWidth, termHeight)

		switch game.State {
		case GameStateStart:
			updateStartState(game, stream, in)
		case GameStatePlaying:
			updatePlayingState(game, dt, in)
		case GameStateDead:
			updateDeadState(game, stream, in)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(game, dt, frame, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// updateStartState waits on the title screen for the player to begin.
func updateStartState(g *Game, stream *input.Stream, in input.Input) {
	if in.Enter || in.Jump {
		stream.Clear()
		g.State = GameStatePlaying
	}
}

// updatePlayingState runs one simulation tick from the polled input.
func updatePlayingState(g *Game, dt float64, in input.Input) {
	g.World.Tick(dt, world.Input{
		MoveLeft:  in.Left,
		MoveRight: in.Right,
		Jump:      in.Jump,
		Reset:     in.Reset,
	})

	// The simulation leaves health uncapped below zero; interpreting that as
	// death is this layer's call.
	if g.World.Player.Health <= 0 {
		g.State = GameStateDead
	}
}

// updateDeadState waits on the death screen for a restart.
func updateDeadState(g *Game, stream *input.Stream, in input.Input) {
	if in.Enter || in.Reset || in.Jump {
		stream.Clear()
		g.Restart()
	}
}
