package main

import (
	"flag"
	"os"

	"github.com/akmonengine/collide"
	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/config"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// SetupScene creates a ground half-space, a few falling spheres and a tilted box
func SetupScene(cfg config.Config, logger *zap.Logger) *collide.World {
	world := collide.NewWorld(cfg, logger)

	ground := actor.NewRigidBody(actor.NewTransform(), actor.NewHalfSpace(mgl64.Vec3{0, 1, 0}), actor.BodyTypeStatic, 0)
	world.AddBody(ground)

	for i := 0; i < 3; i++ {
		transform := actor.Transform{
			Position: mgl64.Vec3{float64(i) * 3, 2 + float64(i), 0},
			Rotation: mgl64.QuatIdent(),
		}
		world.AddBody(actor.NewRigidBody(transform, &actor.Sphere{Radius: 1}, actor.BodyTypeDynamic, 1.0))
	}

	boxTransform := actor.Transform{
		Position: mgl64.Vec3{-4, 5, 0},
		Rotation: mgl64.QuatRotate(mgl64.DegToRad(30), mgl64.Vec3{0, 0, 1}),
	}
	world.AddBody(actor.NewRigidBody(boxTransform, actor.NewBox(mgl64.Vec3{1, 1, 1}), actor.BodyTypeDynamic, 1.0))

	return world
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file, defaults are used when empty")
	steps := flag.Int("steps", 240, "number of simulation steps")
	verbose := flag.Bool("v", false, "log every impulse")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("cannot load configuration", zap.String("path", *configPath), zap.Error(err))
			os.Exit(1)
		}
	}

	world := SetupScene(cfg, logger)
	world.Events.Subscribe(collide.COLLISION_ENTER, func(event collide.Event) {
		e := event.(collide.CollisionEnterEvent)
		logger.Info("collision enter",
			zap.Stringer("bodyA", e.BodyA.ID),
			zap.Stringer("bodyB", e.BodyB.ID),
			zap.Float64("depth", e.Contact.Depth),
			zap.Float64s("normal", e.Contact.Normal[:]),
		)
	})
	world.Events.Subscribe(collide.COLLISION_EXIT, func(event collide.Event) {
		e := event.(collide.CollisionExitEvent)
		logger.Info("collision exit", zap.Stringer("bodyA", e.BodyA.ID), zap.Stringer("bodyB", e.BodyB.ID))
	})

	const dt float64 = 1.0 / 60.0
	for step := 0; step < *steps; step++ {
		world.Step(dt)
	}

	for _, body := range world.Bodies {
		position := body.Position()
		logger.Info("final state",
			zap.Stringer("body", body.ID),
			zap.Stringer("type", body.BodyType),
			zap.Float64s("position", position[:]),
			zap.Float64s("velocity", body.Velocity[:]),
		)
	}
}
