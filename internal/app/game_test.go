package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/defs"
	"elemental-arena/internal/element"
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

const singleTargetArena = `{
	"name": "single",
	"player": {"position": {"x": 0, "y": 0.5, "z": 0}},
	"targets": [{
		"id": "dummy-water",
		"element": "water",
		"position": {"x": 0, "y": 0.6, "z": 6},
		"billboard": {"smooth_speed": 0},
		"explosion": {},
		"visuals": {}
	}]
}`

func newTestGame(t *testing.T, arenaJSON string) (*Game, *recorder) {
	t.Helper()
	arena, err := defs.ParseArena([]byte(arenaJSON))
	require.NoError(t, err)

	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.SubscribeAll(rec, event.All...)
	return NewGame(arena, dispatcher), rec
}

func runFrames(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Update(config.FixedDeltaTime)
	}
}

func TestGame_AttackCooldownScenario(t *testing.T) {
	g, _ := newTestGame(t, `{}`)

	assert.True(t, g.FireAttack(), "t=0")
	for i := 0; i < config.TPS; i++ {
		g.FixedUpdate()
	}
	assert.InDelta(t, 1, g.Now(), 1e-9)
	assert.False(t, g.FireAttack(), "t=1 still cooling down")
	assert.True(t, g.WaterAttack(), "other slots are independent")

	for i := 0; i < 2*config.TPS; i++ {
		g.FixedUpdate()
	}
	assert.InDelta(t, 3, g.Now(), 1e-9)
	assert.True(t, g.FireAttack(), "t=3")
}

func TestGame_WallCooldown(t *testing.T) {
	g, rec := newTestGame(t, `{}`)

	assert.True(t, g.SpawnEarthWall())
	assert.False(t, g.SpawnEarthWall())
	assert.True(t, g.SpawnFireWall())
	assert.True(t, g.SpawnWaterWall())
	assert.Equal(t, 3, rec.count(event.WallSpawned))
	assert.Len(t, g.ECS.Walls, 3)
}

func TestGame_PlayerHitLowersGrade(t *testing.T) {
	g, rec := newTestGame(t, `{}`)
	def, ok := g.Arena.Projectile(element.Fire)
	require.True(t, ok)

	// Шар без владельца летит прямо в игрока.
	g.ProjectileSystem.Spawn(types.NoEntity, def, utils.Vec3{Z: -3}, 0)
	runFrames(g, 30)

	assert.Equal(t, 1, rec.count(event.PlayerHit))
	assert.Equal(t, "A", g.CurrentGrade())
	assert.Equal(t, 1, g.PlayerHits())
	assert.Empty(t, g.ECS.Projectiles)
}

func TestGame_EarthBallDefeatsWaterTarget(t *testing.T) {
	g, rec := newTestGame(t, singleTargetArena)
	require.Len(t, g.ECS.Targets, 1)

	require.True(t, g.EarthAttack())
	runFrames(g, 60)

	assert.Equal(t, 1, rec.count(event.TargetDefeated))
	assert.Equal(t, 1, rec.count(event.ExplosionSpawned))
	for _, target := range g.ECS.Targets {
		assert.Equal(t, component.TargetDefeated, target.State)
	}
	// Земля не проигрывает воде: шар отскакивает от манекена.
	assert.Equal(t, 1, rec.count(event.ProjectileBounced))
}

func TestGame_FireBallProvokesCounterattack(t *testing.T) {
	g, rec := newTestGame(t, singleTargetArena)

	require.True(t, g.FireAttack())
	runFrames(g, 90)

	assert.Equal(t, 1, rec.count(event.CounterAttack))
	assert.Equal(t, 0, rec.count(event.TargetDefeated))
	assert.Equal(t, 1, rec.count(event.PlayerHit), "the counter ball flies back at the player")
	assert.Equal(t, "A", g.CurrentGrade())
}

func TestGame_EndGameFreezes(t *testing.T) {
	g, rec := newTestGame(t, `{}`)
	runFrames(g, 10)
	now := g.Now()

	g.EndGame()
	g.EndGame()
	assert.True(t, g.IsGameOver())
	assert.Equal(t, 1, rec.count(event.GameOver))

	runFrames(g, 10)
	assert.Equal(t, now, g.Now())
	assert.False(t, g.FireAttack())
	assert.False(t, g.SpawnFireWall())
	assert.False(t, g.Dash())

	g.Forward()
	assert.Equal(t, 0.0, g.ECS.Motors[g.PlayerID].Thrust)
}

func TestGame_ResetStartsNewSession(t *testing.T) {
	g, rec := newTestGame(t, singleTargetArena)
	firstSession := g.SessionID()
	require.True(t, g.FireAttack())
	g.Session.RegisterHit()
	g.EndGame()

	g.ResetGame()

	assert.NotEqual(t, firstSession, g.SessionID())
	assert.Equal(t, 1, rec.count(event.GameReset))
	assert.False(t, g.IsGameOver())
	assert.Equal(t, "A+", g.CurrentGrade())
	assert.Zero(t, g.Now())
	assert.Empty(t, g.ECS.Projectiles)
	assert.Len(t, g.ECS.Targets, 1)
	assert.Contains(t, g.ECS.Players, g.PlayerID)

	// Перезарядка тоже сброшена.
	assert.True(t, g.FireAttack())
	assert.True(t, g.Cooldown(component.AbilityFireBall).NextAllowed > 0)
}

func TestGame_NilArenaUsesDefault(t *testing.T) {
	g := NewGame(nil, nil)
	assert.Equal(t, "training-grounds", g.Arena.Name)
	assert.Len(t, g.ECS.Targets, 3)
	assert.NotNil(t, g.Cooldown(component.AbilityDash))
}
