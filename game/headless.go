package game

import (
	"context"
	"log/slog"
	"math"

	"github.com/pthm-cable/lilypad/components"
)

// restSpeed is the |vx| under which a grounded actor counts as still.
const restSpeed = 1e-6

// RunResult summarizes a headless run.
type RunResult struct {
	Ticks          int64
	Bloomed        int
	FirstBloomTick int64 // -1 if no flower bloomed
	AllBloomedTick int64 // -1 if some flower never bloomed
	Reason         string
}

// Run steps the game from src until maxTicks (0 = unlimited) or until src
// is exhausted and nothing can change any more: every flower has bloomed,
// or the idle actor has come to rest away from every flower and all
// particles have faded.
func (g *Game) Run(ctx context.Context, src InputSource, maxTicks int64) RunResult {
	exhausted := false
	reason := ""
	for reason == "" {
		if err := ctx.Err(); err != nil {
			reason = "cancelled"
			break
		}

		in, ok := components.Input{}, false
		if !exhausted {
			in, ok = src.Next()
			if !ok {
				exhausted = true
				slog.Info("script_ended", "tick", g.tick)
			}
		}

		if exhausted && g.AllBloomed() {
			reason = "all_bloomed"
			break
		}
		if exhausted && g.settled() {
			reason = "settled"
			break
		}

		g.Step(in)

		if maxTicks > 0 && g.tick >= maxTicks {
			reason = "max_ticks"
		}
	}

	return RunResult{
		Ticks:          g.tick,
		Bloomed:        g.bloomedCount,
		FirstBloomTick: g.firstBloomTick,
		AllBloomedTick: g.allBloomedTick,
		Reason:         reason,
	}
}

// settled reports whether idle ticks would leave the state unchanged
// apart from the animation phase.
func (g *Game) settled() bool {
	a := &g.actor
	return a.OnGround &&
		a.Vel.Y == 0 &&
		math.Abs(a.Vel.X) < restSpeed &&
		!g.lastGrew &&
		g.LiveParticles() == 0
}
