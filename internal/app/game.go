// internal/app/game.go
package app

import (
	"log"

	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/element"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/event"
	"elemental-arena/internal/score"
	"elemental-arena/internal/system"
	"elemental-arena/internal/types"
)

// Game holds the arena state and exposes the calls used by input and UI glue.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Session         *score.Session
	Arena           *defs.ArenaDefinition
	Table           element.Table

	PhysicsSystem      *system.PhysicsSystem
	CollisionSystem    *system.CollisionSystem
	CasterSystem       *system.CasterSystem
	ProjectileSystem   *system.ProjectileSystem
	WallSystem         *system.WallSystem
	TargetSystem       *system.TargetSystem
	LifetimeSystem     *system.LifetimeSystem
	AnimatorSystem     *system.AnimatorSystem
	BillboardSystem    *system.BillboardSystem
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem

	PlayerID types.EntityID

	tick        uint64
	accumulator float64
}

// NewGame builds a session and the arena described by arena.
func NewGame(arena *defs.ArenaDefinition, eventDispatcher *event.Dispatcher) *Game {
	if arena == nil {
		arena = defs.DefaultArena()
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}
	g := &Game{
		ECS:             entity.NewECS(),
		EventDispatcher: eventDispatcher,
		Session:         score.NewSession(),
		Arena:           arena,
		Table:           element.Standard,
	}
	g.initSystems()
	g.buildArena()

	eventDispatcher.Subscribe(event.PlayerHit, g)

	log.Printf("Game: session %s started in arena %q", g.Session.ID(), arena.Name)
	return g
}

func (g *Game) initSystems() {
	ecs := g.ECS
	g.PhysicsSystem = system.NewPhysicsSystem(ecs)
	g.CollisionSystem = system.NewCollisionSystem(ecs)
	g.WallSystem = system.NewWallSystem(ecs, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.EventDispatcher, g.WallSystem, g.Table)
	g.CasterSystem = system.NewCasterSystem(ecs, g.Arena, g.ProjectileSystem, g.WallSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.TargetSystem = system.NewTargetSystem(ecs, g.EventDispatcher, g.CasterSystem, g.VisualEffectSystem, g.Table)
	g.LifetimeSystem = system.NewLifetimeSystem(ecs)
	g.AnimatorSystem = system.NewAnimatorSystem(ecs)
	g.BillboardSystem = system.NewBillboardSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs, g.CasterSystem)

	g.CollisionSystem.Register(element.KindProjectile, g.ProjectileSystem)
	g.CollisionSystem.Register(element.KindTarget, g.TargetSystem)
}

// OnEvent counts player hits on the session.
func (g *Game) OnEvent(e event.Event) {
	if e.Type != event.PlayerHit {
		return
	}
	if g.Session.IsGameOver() {
		return
	}
	g.Session.RegisterHit()
	if data, ok := e.Data.(event.PlayerHitData); ok {
		if player, ok := g.ECS.Players[data.Player]; ok {
			player.Hits++
		}
	}
	log.Printf("Game: player hit, grade %s", g.Session.CurrentGrade())
}

// Update advances the simulation by one rendered frame: as many fixed physics
// steps as the accumulated time allows, then one render tick.
func (g *Game) Update(deltaTime float64) {
	if g.Session.IsGameOver() {
		return
	}
	dt := deltaTime * g.ECS.TimeScale
	if dt <= 0 {
		return
	}

	g.accumulator += dt
	steps := 0
	for g.accumulator >= config.FixedDeltaTime {
		if steps == config.MaxFixedStepsPerFrame {
			// Не догоняем отставание, иначе после зависания будет спираль.
			g.accumulator = 0
			break
		}
		g.FixedUpdate()
		g.accumulator -= config.FixedDeltaTime
		steps++
	}
	g.RenderUpdate(dt)
}

// FixedUpdate runs one physics tick.
func (g *Game) FixedUpdate() {
	g.tick++
	g.ECS.GameTime = float64(g.tick) * config.FixedDeltaTime

	g.ProjectileSystem.SnapshotVelocities()
	contacts := g.PhysicsSystem.Step(config.FixedDeltaTime)
	g.CollisionSystem.Dispatch(contacts)
	g.LifetimeSystem.Update()
	g.ECS.Flush()
}

// RenderUpdate runs the per-frame systems.
func (g *Game) RenderUpdate(deltaTime float64) {
	g.MovementSystem.Update(deltaTime)
	g.WallSystem.Update(deltaTime)
	g.AnimatorSystem.Update(deltaTime)
	g.TargetSystem.Update(deltaTime)
	g.BillboardSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.ECS.Flush()
}

// InterpolationAlpha is the fraction of a physics step accumulated but not yet simulated.
func (g *Game) InterpolationAlpha() float64 {
	return g.accumulator / config.FixedDeltaTime
}

// Now is the game clock used by cooldowns and lifetimes.
func (g *Game) Now() float64 {
	return g.ECS.GameTime
}

func (g *Game) SessionID() string {
	return g.Session.ID()
}

func (g *Game) CurrentGrade() string {
	return g.Session.CurrentGrade()
}

func (g *Game) IsGameOver() bool {
	return g.Session.IsGameOver()
}

// EndGame latches game over and freezes the simulation.
func (g *Game) EndGame() {
	if g.Session.IsGameOver() {
		return
	}
	g.Session.EndGame()
	g.ECS.TimeScale = 0
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.sessionData()})
}

// ResetGame restarts the session and reloads the arena.
func (g *Game) ResetGame() {
	g.Session.Reset()
	g.ECS.Reset()
	g.tick, g.accumulator = 0, 0
	g.initSystems()
	g.buildArena()

	log.Printf("Game: reset, new session %s", g.Session.ID())
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset, Data: g.sessionData()})
}

func (g *Game) sessionData() event.SessionData {
	return event.SessionData{
		Session: g.Session.ID(),
		Hits:    g.Session.Hits(),
		Grade:   g.Session.CurrentGrade(),
	}
}

// Player hit count as seen by the player entity.
func (g *Game) PlayerHits() int {
	if p, ok := g.ECS.Players[g.PlayerID]; ok {
		return p.Hits
	}
	return 0
}

// Cooldown returns the player's slot for an ability, for HUD display.
func (g *Game) Cooldown(a component.Ability) *component.Cooldown {
	if c, ok := g.ECS.Casters[g.PlayerID]; ok {
		return c.Slot(a)
	}
	return nil
}
