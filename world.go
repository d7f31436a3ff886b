package collide

import (
	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/config"
	"go.uber.org/zap"
)

type World struct {
	// List of all rigid bodies in the world, in insertion order
	Bodies []*actor.RigidBody
	// Tolerances, physical constants and worker count
	Config config.Config
	Logger *zap.Logger

	Events Events
}

// NewWorld creates an empty world. A nil logger falls back to the global zap logger.
func NewWorld(cfg config.Config, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.L()
	}

	return &World{
		Config: cfg,
		Logger: logger,
		Events: NewEvents(),
	}
}

// AddBody adds a rigid body to the world
func (w *World) AddBody(body *actor.RigidBody) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a rigid body from the world
func (w *World) RemoveBody(body *actor.RigidBody) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	w.Events.forget(body)
}

// Step advances the simulation by dt seconds.
//
// Every pair (i, j) with i < j is queried and resolved sequentially, in insertion order:
// a pair sees the velocities already updated by the pairs before it.
// Gravity and velocities are then integrated on up to Config.Workers goroutines,
// and the collision events of the step are delivered.
func (w *World) Step(dt float64) {
	w.detectAndRespond()
	w.integrate(dt)
	w.Events.flush()
}

func (w *World) detectAndRespond() {
	for i := 0; i < len(w.Bodies); i++ {
		for j := i + 1; j < len(w.Bodies); j++ {
			a, b := w.Bodies[i], w.Bodies[j]
			if a.IsImmovable(w.Config.ImmovableMass) && b.IsImmovable(w.Config.ImmovableMass) {
				continue
			}

			info, hit := queryCollision(w.Logger, a, b, w.Config)
			if !hit {
				continue
			}

			w.Events.recordCollision(a, b, info)
			if Respond(a, b, info, w.Config) {
				w.Logger.Debug("impulse applied",
					zap.Stringer("bodyA", a.ID),
					zap.Stringer("bodyB", b.ID),
					zap.Float64("depth", info.Depth),
				)
			}
		}
	}
}

func (w *World) integrate(dt float64) {
	workers := max(config.DefaultWorkers, w.Config.Workers)

	task(workers, w.Bodies, func(body *actor.RigidBody) {
		body.Integrate(dt, w.Config.Gravity, w.Config.ImmovableMass)
	})
}
