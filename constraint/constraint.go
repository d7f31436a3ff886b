// Package constraint resolves a single contact between two bodies with a velocity impulse.
package constraint

import (
	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/config"
	"github.com/akmonengine/collide/contact"
)

// Respond applies a restitution impulse along the contact normal.
//
// The normal is oriented from A toward B, so bodies approach when (vA - vB)·n > 0.
// Separating bodies are left untouched, and so are bodies at rest relative to each
// other with no penetration: calling Respond again after a successful impulse is a no-op. The magnitude is
//
//	j = -(1 + e) * (vRel·n) / ((invMassA + invMassB) * (n·n)) - depth * bias
//
// and A receives j*n*invMassA, B receives -j*n*invMassB. Positions are never modified.
// Returns true when an impulse was applied.
func Respond(a, b *actor.RigidBody, info contact.Info, cfg config.Config) bool {
	n := info.Normal
	relativeVelocity := a.Velocity.Sub(b.Velocity)

	approach := relativeVelocity.Dot(n)
	if approach < 0 {
		return false
	}

	invMassA := a.InverseMass(cfg.ImmovableMass)
	invMassB := b.InverseMass(cfg.ImmovableMass)
	totalInverseMass := invMassA + invMassB
	if totalInverseMass == 0 || n.LenSqr() == 0 {
		return false
	}

	impulse := -(1 + cfg.Restitution) * approach / (totalInverseMass * n.Dot(n))
	impulse -= info.Depth * cfg.BiasFactor
	if impulse == 0 {
		// Resting contact with nothing to resolve
		return false
	}

	a.Velocity = a.Velocity.Add(n.Mul(impulse * invMassA))
	b.Velocity = b.Velocity.Sub(n.Mul(impulse * invMassB))

	return true
}
