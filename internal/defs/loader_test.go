package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-arena/internal/config"
	"elemental-arena/internal/element"
)

func TestParseArena_FillsDefaults(t *testing.T) {
	arena, err := ParseArena([]byte(`{
		"name": "tiny",
		"projectiles": [{"element": "water", "default_lifespan": 8}],
		"targets": [{"id": "t1", "element": "fire", "explosion": {}}]
	}`))
	require.NoError(t, err)

	// Все три стихии получают снаряд и стену, даже если в файле их нет.
	for _, e := range element.All {
		p, ok := arena.Projectile(e)
		require.True(t, ok, e.String())
		assert.Equal(t, config.ProjectileSpeed, p.Speed)
		assert.Equal(t, config.ProjectileBounceLifespan, p.BounceLifespan)

		w, ok := arena.Wall(e)
		require.True(t, ok, e.String())
		assert.Equal(t, config.WallLifespan, w.Lifespan)
		assert.Equal(t, ElementColor(e), w.Visuals.Color)
	}

	water, _ := arena.Projectile(element.Water)
	assert.Equal(t, 8.0, water.DefaultLifespan)

	require.Len(t, arena.Targets, 1)
	target := arena.Targets[0]
	assert.Equal(t, element.Fire, target.Element)
	assert.Equal(t, config.TargetCooldown, target.Cooldown)
	require.NotNil(t, target.Explosion)
	assert.Equal(t, config.ExplosionDuration, target.Explosion.Duration)
	assert.Nil(t, target.Visuals, "renderer stays unassigned")
	assert.Nil(t, target.Animation)
}

func TestParseArena_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad json":         `{`,
		"unknown element":  `{"targets": [{"id": "t", "element": "plasma"}]}`,
		"missing id":       `{"targets": [{"element": "fire"}]}`,
		"duplicate id":     `{"targets": [{"id": "a", "element": "fire"}, {"id": "a", "element": "water"}]}`,
		"negative speed":   `{"walls": [{"element": "earth", "speed": -1}]}`,
		"negative anim":    `{"targets": [{"id": "a", "element": "fire", "animation": {"length": -2}}]}`,
		"element-less wall": `{"walls": [{"speed": 2}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArena([]byte(body))
			assert.Error(t, err)
		})
	}

	_, err := ParseArena([]byte(`{"targets": [{"id": "a", "element": "fire"}, {"id": "a", "element": "water"}]}`))
	assert.ErrorIs(t, err, ErrInvalidArena)
}

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(filepath.Join("..", "..", "assets", "data", "arena.json"))
	require.NoError(t, err)
	assert.Equal(t, "training-grounds", arena.Name)
	assert.Len(t, arena.Targets, 3)
	assert.NotEmpty(t, arena.Environment)

	_, err = LoadArena(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultArena(t *testing.T) {
	arena := DefaultArena()
	require.NoError(t, arena.Validate())
	assert.Len(t, arena.Targets, 3)
	for _, target := range arena.Targets {
		assert.NotNil(t, target.Explosion)
		assert.NotNil(t, target.Visuals)
	}
}
