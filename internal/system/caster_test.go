package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-arena/internal/component"
	"elemental-arena/internal/element"
	"elemental-arena/internal/event"
	"elemental-arena/internal/utils"
)

func TestCasterSystem_FireCooldownScenario(t *testing.T) {
	f := newFixture(t)
	p := f.player(utils.Vec3{Y: 0.5})
	slot := f.ecs.Casters[p].Slot(component.AbilityFireBall)
	require.NotNil(t, slot)

	f.ecs.GameTime = 0
	_, ok := f.caster.Attack(p, element.Fire)
	assert.True(t, ok, "shot fired at t=0")
	assert.Equal(t, 3.0, slot.NextAllowed)

	f.ecs.GameTime = 1
	_, ok = f.caster.Attack(p, element.Fire)
	assert.False(t, ok, "no shot at t=1")
	assert.Equal(t, 3.0, slot.NextAllowed, "rejected request must not touch the slot")

	f.ecs.GameTime = 3.0
	_, ok = f.caster.Attack(p, element.Fire)
	assert.True(t, ok, "shot fired at t=3.0")
	assert.Equal(t, 6.0, slot.NextAllowed)

	_, ok = f.caster.Attack(p, element.Fire)
	assert.False(t, ok, "second call at the same time must fail")
	assert.Equal(t, 2, f.events.count(event.ProjectileSpawned))
}

func TestCasterSystem_SlotsAreIndependent(t *testing.T) {
	f := newFixture(t)
	p := f.player(utils.Vec3{Y: 0.5})

	_, ok := f.caster.Attack(p, element.Fire)
	require.True(t, ok)
	_, ok = f.caster.Attack(p, element.Water)
	assert.True(t, ok)
	_, ok = f.caster.BuildWall(p, element.Earth)
	assert.True(t, ok)
	_, ok = f.caster.BuildWall(p, element.Fire)
	assert.True(t, ok, "each element has its own wall slot")
	_, ok = f.caster.BuildWall(p, element.Earth)
	assert.False(t, ok)
}

func TestCasterSystem_SpawnsInFrontOfCaster(t *testing.T) {
	f := newFixture(t)
	p := f.player(utils.Vec3{X: 2, Y: 0.5, Z: 1})
	f.ecs.Transforms[p].Yaw = utils.Deg2Rad(90) // смотрит вдоль +X

	id, ok := f.caster.Attack(p, element.Earth)
	require.True(t, ok)

	def := f.projectileDef(element.Earth)
	tr := f.ecs.Transforms[id]
	assert.InDelta(t, 2+def.SpawnOffset, tr.Position.X, 1e-9)
	assert.InDelta(t, 1, tr.Position.Z, 1e-9)

	body := f.ecs.Bodies[id]
	assert.InDelta(t, def.Speed, body.Velocity.X, 1e-9)
	assert.InDelta(t, 0, body.Velocity.Z, 1e-9)
	assert.False(t, body.UseGravity)
	assert.True(t, body.ContinuousCollision)
	assert.True(t, body.Interpolate)
	assert.Equal(t, p, f.ecs.Projectiles[id].Owner)
	assert.InDelta(t, def.DefaultLifespan, f.ecs.Lifetimes[id].ExpiresAt, 1e-9)
}

func TestCasterSystem_MissingSlotOrCaster(t *testing.T) {
	f := newFixture(t)
	target := f.target(element.Fire, utils.Vec3{Y: 0.6}, nil)

	_, ok := f.caster.Attack(target, element.Water)
	assert.False(t, ok, "a fire target has no water slot")
	_, ok = f.caster.BuildWall(target, element.Fire)
	assert.False(t, ok)
	_, ok = f.caster.Attack(999, element.Fire)
	assert.False(t, ok)
	assert.Zero(t, f.events.count(event.ProjectileSpawned))
}
