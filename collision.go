// Package collide detects collisions between convex rigid bodies with GJK and
// resolves them with a single velocity impulse per pair.
//
// QueryCollision and Respond are the two entry points of the collision core;
// World drives them once per pair per tick.
package collide

import (
	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/config"
	"github.com/akmonengine/collide/constraint"
	"github.com/akmonengine/collide/contact"
	"github.com/akmonengine/collide/gjk"
	"go.uber.org/zap"
)

// QueryCollision tests a pair of bodies and returns their contact when they
// intersect or touch. Failing to converge within cfg.MaxIterations is
// reported as no collision and logged through the global zap logger.
func QueryCollision(a, b *actor.RigidBody, cfg config.Config) (contact.Info, bool) {
	return queryCollision(zap.L(), a, b, cfg)
}

func queryCollision(logger *zap.Logger, a, b *actor.RigidBody, cfg config.Config) (contact.Info, bool) {
	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	simplex.Reset()
	defer gjk.SimplexPool.Put(simplex)

	result := gjk.GJK(a, b, simplex, cfg)
	switch result {
	case gjk.Intersecting, gjk.Touching:
		return contact.Extract(a, b, simplex, result, cfg), true
	case gjk.Exhausted:
		logger.Warn("gjk did not converge, pair treated as separated",
			zap.Stringer("bodyA", a.ID),
			zap.Stringer("bodyB", b.ID),
			zap.Int("maxIterations", cfg.MaxIterations),
			zap.Int("simplexSize", simplex.Len()),
		)
	}

	return contact.Info{}, false
}

// Respond applies the collision impulse of a contact returned by QueryCollision.
func Respond(a, b *actor.RigidBody, info contact.Info, cfg config.Config) bool {
	return constraint.Respond(a, b, info, cfg)
}
