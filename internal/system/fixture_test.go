package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/element"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/event"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	ecs         *entity.ECS
	events      *recorder
	arena       *defs.ArenaDefinition
	physics     *PhysicsSystem
	collisions  *CollisionSystem
	walls       *WallSystem
	projectiles *ProjectileSystem
	caster      *CasterSystem
	effects     *VisualEffectSystem
	targets     *TargetSystem
	lifetimes   *LifetimeSystem
	animators   *AnimatorSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	arena, err := defs.ParseArena([]byte(`{"name": "test"}`))
	require.NoError(t, err)

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.SubscribeAll(rec, event.All...)

	f := &fixture{ecs: ecs, events: rec, arena: arena}
	f.physics = NewPhysicsSystem(ecs)
	f.collisions = NewCollisionSystem(ecs)
	f.walls = NewWallSystem(ecs, dispatcher)
	f.projectiles = NewProjectileSystem(ecs, dispatcher, f.walls, element.Standard)
	f.caster = NewCasterSystem(ecs, arena, f.projectiles, f.walls)
	f.effects = NewVisualEffectSystem(ecs)
	f.targets = NewTargetSystem(ecs, dispatcher, f.caster, f.effects, element.Standard)
	f.lifetimes = NewLifetimeSystem(ecs)
	f.animators = NewAnimatorSystem(ecs)
	f.collisions.Register(element.KindProjectile, f.projectiles)
	f.collisions.Register(element.KindTarget, f.targets)
	return f
}

// tick runs one fixed step in the same order as the game.
func (f *fixture) tick() {
	f.ecs.GameTime += config.FixedDeltaTime
	f.projectiles.SnapshotVelocities()
	f.collisions.Dispatch(f.physics.Step(config.FixedDeltaTime))
	f.lifetimes.Update()
	f.ecs.Flush()
}

func (f *fixture) projectileDef(e element.Element) defs.ProjectileDefinition {
	def, _ := f.arena.Projectile(e)
	return def
}

func (f *fixture) wallDef(e element.Element) defs.WallDefinition {
	def, _ := f.arena.Wall(e)
	return def
}

// spawnProjectile fires an element ball from origin along yaw without an owner.
func (f *fixture) spawnProjectile(e element.Element, origin utils.Vec3, yaw float64) types.EntityID {
	return f.projectiles.Spawn(types.NoEntity, f.projectileDef(e), origin, yaw)
}

// raisedWall spawns a wall and skips its rise animation.
func (f *fixture) raisedWall(e element.Element, origin utils.Vec3, yaw float64) types.EntityID {
	id := f.walls.Spawn(f.wallDef(e), origin, yaw)
	f.ecs.Transforms[id].Position = f.ecs.Walls[id].TargetPosition
	f.ecs.Walls[id].Rising = false
	return id
}

func (f *fixture) player(pos utils.Vec3) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Transforms[id] = &component.Transform{Position: pos}
	f.ecs.Bodies[id] = &component.Body{Mass: 1}
	f.ecs.Colliders[id] = &component.Collider{Shape: component.ShapeSphere, Radius: config.PlayerRadius, Enabled: true}
	f.ecs.Tags[id] = element.NewTag(element.KindPlayer, element.None)
	f.ecs.Players[id] = &component.Player{}
	f.ecs.Casters[id] = PlayerCaster(f.arena)
	f.ecs.Motors[id] = &component.Motor{MoveSpeed: 10, TurnSpeed: 90, DashMultiplier: 2}
	return id
}

func (f *fixture) target(e element.Element, pos utils.Vec3, mutate func(*defs.TargetDefinition)) types.EntityID {
	def := defs.TargetDefinition{
		ID:            "dummy",
		Element:       e,
		Position:      pos,
		Radius:        config.TargetRadius,
		Cooldown:      config.TargetCooldown,
		ExplosionSize: 2,
		Explosion:     &defs.ExplosionDefinition{Duration: 0.5, Radius: 1},
		Visuals:       &defs.Visuals{Size: utils.Vec3{X: 1, Y: 2, Z: 1}},
	}
	if mutate != nil {
		mutate(&def)
	}
	return f.targets.Spawn(def, types.NoEntity)
}
