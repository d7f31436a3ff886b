package collide

import (
	"math"
	"testing"

	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newSphere(position mgl64.Vec3, radius float64) *actor.RigidBody {
	return actor.NewRigidBody(
		actor.Transform{Position: position, Rotation: mgl64.QuatIdent()},
		&actor.Sphere{Radius: radius},
		actor.BodyTypeDynamic,
		1.0,
	)
}

func newBox(position mgl64.Vec3, halfExtents mgl64.Vec3) *actor.RigidBody {
	return actor.NewRigidBody(
		actor.Transform{Position: position, Rotation: mgl64.QuatIdent()},
		actor.NewBox(halfExtents),
		actor.BodyTypeDynamic,
		1.0,
	)
}

func newGround() *actor.RigidBody {
	return actor.NewRigidBody(
		actor.NewTransform(),
		actor.NewHalfSpace(mgl64.Vec3{0, 1, 0}),
		actor.BodyTypeStatic,
		0,
	)
}

func TestQueryCollision_Separation(t *testing.T) {
	cfg := config.Default()

	for _, d := range []float64{2.01, 3, 10} {
		a := newBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
		b := newBox(mgl64.Vec3{d, 0, 0}, mgl64.Vec3{1, 1, 1})

		_, hit := QueryCollision(a, b, cfg)
		assert.False(t, hit, "cubes of side 2 at distance %v", d)
	}
}

func TestQueryCollision_DeepOverlap(t *testing.T) {
	cfg := config.Default()

	for _, r := range []float64{0.5, 1, 3} {
		for _, fraction := range []float64{0.1, 0.5, 0.8, 1.5} {
			a := newSphere(mgl64.Vec3{0, 0, 0}, r)
			b := newSphere(mgl64.Vec3{fraction * r, 0, 0}, r)

			info, hit := QueryCollision(a, b, cfg)
			require.True(t, hit, "radius %v, distance %v", r, fraction*r)
			assert.InDelta(t, math.Max(0, r-fraction*r), info.Depth, 1e-3, "radius %v, distance %v", r, fraction*r)
			assert.InDelta(t, 1, info.Normal.Len(), 1e-9)
		}
	}
}

func TestQueryCollision_DepthGrowsWithOverlap(t *testing.T) {
	cfg := config.Default()

	previous := -1.0
	for _, d := range []float64{1.8, 1.2, 0.8, 0.5, 0.2, 0.05} {
		a := newSphere(mgl64.Vec3{0, 0, 0}, 1)
		b := newSphere(mgl64.Vec3{d, 0, 0}, 1)

		info, hit := QueryCollision(a, b, cfg)
		require.True(t, hit)
		assert.GreaterOrEqual(t, info.Depth, previous, "distance %v", d)
		previous = info.Depth
	}
}

func TestQueryCollision_TouchingBoundary(t *testing.T) {
	a := newSphere(mgl64.Vec3{0, 0, 0}, 1)
	b := newSphere(mgl64.Vec3{2, 0, 0}, 1)

	info, hit := QueryCollision(a, b, config.Default())
	require.True(t, hit)
	assert.InDelta(t, 1, info.Normal.Len(), 1e-9)
	assert.Zero(t, info.Depth)
}

func TestQueryCollision_Symmetry(t *testing.T) {
	cfg := config.Default()

	pairs := []struct {
		name string
		a, b *actor.RigidBody
	}{
		{"overlapping spheres", newSphere(mgl64.Vec3{0, 0, 0}, 1), newSphere(mgl64.Vec3{0.5, 0, 0}, 1)},
		{"separated spheres", newSphere(mgl64.Vec3{0, 0, 0}, 1), newSphere(mgl64.Vec3{0, 0, 3}, 1)},
		{"overlapping cubes", newBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}), newBox(mgl64.Vec3{1.5, 0, 0}, mgl64.Vec3{1, 1, 1})},
		{"sphere on ground", newSphere(mgl64.Vec3{0, 0.5, 0}, 1), newGround()},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			infoAB, hitAB := QueryCollision(p.a, p.b, cfg)
			infoBA, hitBA := QueryCollision(p.b, p.a, cfg)

			require.Equal(t, hitAB, hitBA)
			if hitAB {
				// The normal flips with the order
				assert.InDelta(t, -1, infoAB.Normal.Dot(infoBA.Normal), 1e-6)
			}
		})
	}
}

func TestQueryCollision_ExhaustedIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	cfg := config.Default()
	cfg.MaxIterations = 0

	a := newSphere(mgl64.Vec3{0, 0, 0}, 1)
	b := newSphere(mgl64.Vec3{0.5, 0, 0}, 1)

	_, hit := QueryCollision(a, b, cfg)
	assert.False(t, hit)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, a.ID.String(), entries[0].ContextMap()["bodyA"])
	assert.Equal(t, int64(0), entries[0].ContextMap()["maxIterations"])
}

func TestRespond_ElasticCheck(t *testing.T) {
	cfg := config.Default()

	a := newSphere(mgl64.Vec3{-1, 0, 0}, 1)
	b := newSphere(mgl64.Vec3{1, 0, 0}, 1)
	a.Velocity = mgl64.Vec3{2, 0, 0}
	b.Velocity = mgl64.Vec3{-2, 0, 0}

	// Spheres exactly touching: zero depth, so no bias term
	info, hit := QueryCollision(a, b, cfg)
	require.True(t, hit)
	require.Zero(t, info.Depth)

	before := a.Velocity.Sub(b.Velocity).Len()
	require.True(t, Respond(a, b, info, cfg))
	after := a.Velocity.Sub(b.Velocity).Len()

	assert.InDelta(t, cfg.Restitution*before, after, 1e-9)
	assert.False(t, Respond(a, b, info, cfg), "second call must be a no-op")
	assert.False(t, math.IsNaN(a.Velocity.X()))
}
