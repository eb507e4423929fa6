package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"elemental-arena/internal/component"
	"elemental-arena/internal/element"
	"elemental-arena/internal/types"
)

func TestECS_DeferredDestroy(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	ecs.Transforms[a] = &component.Transform{}
	ecs.Transforms[b] = &component.Transform{}
	ecs.Tags[a] = element.NewTag(element.KindProjectile, element.Fire)
	ecs.Projectiles[a] = &component.Projectile{Element: element.Fire}

	ecs.Destroy(a)
	ecs.Destroy(a)

	// До Flush компоненты ещё доступны.
	assert.NotNil(t, ecs.Projectiles[a])
	assert.False(t, ecs.IsAlive(a))
	assert.True(t, ecs.IsAlive(b))

	removed := ecs.Flush()
	assert.Equal(t, []types.EntityID{a}, removed)
	assert.Nil(t, ecs.Projectiles[a])
	assert.NotContains(t, ecs.Transforms, a)
	assert.Empty(t, ecs.Flush())
}

func TestECS_TagDefaultsToEnvironment(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	assert.Equal(t, element.KindEnvironment, ecs.Tag(id).Kind)
	assert.Equal(t, element.None, ecs.Tag(id).Element)
}

func TestSortedIDs(t *testing.T) {
	m := map[types.EntityID]int{5: 0, 1: 0, 3: 0}
	assert.Equal(t, []types.EntityID{1, 3, 5}, SortedIDs(m))
}
