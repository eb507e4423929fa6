// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"elemental-arena/internal/config"
	"elemental-arena/internal/element"
	"elemental-arena/internal/utils"
)

// ErrInvalidArena is wrapped by every validation failure of an arena file.
var ErrInvalidArena = errors.New("invalid arena definition")

// LoadArena reads the arena file at path, fills defaults and validates it.
func LoadArena(path string) (*ArenaDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena file: %w", err)
	}

	arena, err := ParseArena(file)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded arena %q: %d targets, %d environment colliders", arena.Name, len(arena.Targets), len(arena.Environment))
	return arena, nil
}

// ParseArena decodes an arena from JSON, fills defaults and validates it.
func ParseArena(data []byte) (*ArenaDefinition, error) {
	var arena ArenaDefinition
	if err := json.Unmarshal(data, &arena); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arena: %w", err)
	}
	arena.ApplyDefaults()
	if err := arena.Validate(); err != nil {
		return nil, err
	}
	return &arena, nil
}

// DefaultArena is the built-in scene used when no arena file is given.
func DefaultArena() *ArenaDefinition {
	h := config.ArenaHalfSize
	arena := &ArenaDefinition{
		Name: "training-grounds",
		Player: PlayerDefinition{
			Position: utils.Vec3{Y: config.PlayerRadius, Z: -h / 2},
		},
		Targets: []TargetDefinition{
			{ID: "dummy-fire", Element: element.Fire, Position: utils.Vec3{X: -8, Y: config.TargetRadius, Z: 8}},
			{ID: "dummy-water", Element: element.Water, Position: utils.Vec3{Y: config.TargetRadius, Z: 10}},
			{ID: "dummy-earth", Element: element.Earth, Position: utils.Vec3{X: 8, Y: config.TargetRadius, Z: 8}},
		},
		Environment: []EnvironmentDefinition{
			{ID: "north", Position: utils.Vec3{Z: h}, HalfExtents: utils.Vec3{X: h, Y: 2, Z: 0.5}},
			{ID: "south", Position: utils.Vec3{Z: -h}, HalfExtents: utils.Vec3{X: h, Y: 2, Z: 0.5}},
			{ID: "east", Position: utils.Vec3{X: h}, HalfExtents: utils.Vec3{X: 0.5, Y: 2, Z: h}},
			{ID: "west", Position: utils.Vec3{X: -h}, HalfExtents: utils.Vec3{X: 0.5, Y: 2, Z: h}},
		},
	}
	for i := range arena.Targets {
		arena.Targets[i].Animation = &AnimationDefinition{Length: 1.2}
		arena.Targets[i].Explosion = &ExplosionDefinition{}
		arena.Targets[i].Billboard = &BillboardDefinition{SmoothSpeed: config.TargetBillboardSmooth}
		arena.Targets[i].Visuals = &Visuals{}
	}
	arena.ApplyDefaults()
	return arena
}

// ApplyDefaults fills zero values from config and adds missing per-element entries.
func (a *ArenaDefinition) ApplyDefaults() {
	p := &a.Player
	if p.Radius == 0 {
		p.Radius = config.PlayerRadius
	}
	if p.MoveSpeed == 0 {
		p.MoveSpeed = config.PlayerMoveSpeed
	}
	if p.TurnSpeed == 0 {
		p.TurnSpeed = config.PlayerTurnSpeed
	}
	if p.DashMultiplier == 0 {
		p.DashMultiplier = config.PlayerDashMultiplier
	}
	if p.DashCooldown == 0 {
		p.DashCooldown = config.PlayerDashCooldown
	}

	for _, e := range element.All {
		if _, ok := a.Projectile(e); !ok {
			a.Projectiles = append(a.Projectiles, ProjectileDefinition{Element: e})
		}
		if _, ok := a.Wall(e); !ok {
			a.Walls = append(a.Walls, WallDefinition{Element: e})
		}
	}

	for i := range a.Projectiles {
		d := &a.Projectiles[i]
		if d.Speed == 0 {
			d.Speed = config.ProjectileSpeed
		}
		if d.SpawnOffset == 0 {
			d.SpawnOffset = config.ProjectileSpawnOffset
		}
		if d.Radius == 0 {
			d.Radius = config.ProjectileRadius
		}
		if d.Cooldown == 0 {
			d.Cooldown = config.ProjectileCooldown
		}
		if d.DefaultLifespan == 0 {
			d.DefaultLifespan = config.ProjectileDefaultLifespan
		}
		if d.BounceLifespan == 0 {
			d.BounceLifespan = config.ProjectileBounceLifespan
		}
		if d.Visuals.Color.A == 0 {
			d.Visuals.Color = ElementColor(d.Element)
		}
		if d.Visuals.Size == (utils.Vec3{}) {
			s := d.Radius * 2
			d.Visuals.Size = utils.Vec3{X: s, Y: s, Z: s}
		}
	}

	for i := range a.Walls {
		d := &a.Walls[i]
		if d.Distance == 0 {
			d.Distance = config.WallSpawnDistance
		}
		if d.Speed == 0 {
			d.Speed = config.WallSpeed
		}
		if d.Lifespan == 0 {
			d.Lifespan = config.WallLifespan
		}
		if d.Cooldown == 0 {
			d.Cooldown = config.WallCooldown
		}
		if d.HalfExtents == (utils.Vec3{}) {
			d.HalfExtents = utils.Vec3{X: config.WallWidth / 2, Y: config.WallHeight / 2, Z: config.WallDepth / 2}
		}
		if d.Visuals.Color.A == 0 {
			d.Visuals.Color = ElementColor(d.Element)
		}
		if d.Visuals.Size == (utils.Vec3{}) {
			d.Visuals.Size = d.HalfExtents.Scale(2)
		}
	}

	for i := range a.Targets {
		d := &a.Targets[i]
		if d.Radius == 0 {
			d.Radius = config.TargetRadius
		}
		if d.Cooldown == 0 {
			d.Cooldown = config.TargetCooldown
		}
		if d.ExplosionSize == 0 {
			d.ExplosionSize = config.TargetExplosionSize
		}
		if d.Explosion != nil {
			if d.Explosion.Duration == 0 {
				d.Explosion.Duration = config.ExplosionDuration
			}
			if d.Explosion.Radius == 0 {
				d.Explosion.Radius = config.ExplosionRadius
			}
			if d.Explosion.Color.A == 0 {
				d.Explosion.Color = config.ExplosionColor
			}
		}
		if d.Visuals != nil {
			if d.Visuals.Color.A == 0 {
				d.Visuals.Color = ElementColor(d.Element)
			}
			if d.Visuals.Size == (utils.Vec3{}) {
				s := d.Radius * 2
				d.Visuals.Size = utils.Vec3{X: s, Y: s * 2, Z: s}
			}
		}
	}
}

// Validate checks the invariants the game relies on.
func (a *ArenaDefinition) Validate() error {
	for _, d := range a.Projectiles {
		if d.Element == element.None {
			return fmt.Errorf("%w: projectile without element", ErrInvalidArena)
		}
		if d.Speed < 0 || d.Cooldown < 0 || d.DefaultLifespan < 0 || d.BounceLifespan < 0 {
			return fmt.Errorf("%w: negative tuning for %s projectile", ErrInvalidArena, d.Element)
		}
	}
	for _, d := range a.Walls {
		if d.Element == element.None {
			return fmt.Errorf("%w: wall without element", ErrInvalidArena)
		}
		if d.Speed <= 0 || d.Lifespan < 0 || d.Cooldown < 0 {
			return fmt.Errorf("%w: bad tuning for %s wall", ErrInvalidArena, d.Element)
		}
	}
	seen := make(map[string]bool, len(a.Targets))
	for _, d := range a.Targets {
		if d.ID == "" {
			return fmt.Errorf("%w: target without id", ErrInvalidArena)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate target id %q", ErrInvalidArena, d.ID)
		}
		seen[d.ID] = true
		if d.Animation != nil && d.Animation.Length < 0 {
			return fmt.Errorf("%w: negative animation length on %q", ErrInvalidArena, d.ID)
		}
	}
	return nil
}

// Projectile returns the projectile tuning for an element.
func (a *ArenaDefinition) Projectile(e element.Element) (ProjectileDefinition, bool) {
	for _, d := range a.Projectiles {
		if d.Element == e {
			return d, true
		}
	}
	return ProjectileDefinition{}, false
}

// Wall returns the wall tuning for an element.
func (a *ArenaDefinition) Wall(e element.Element) (WallDefinition, bool) {
	for _, d := range a.Walls {
		if d.Element == e {
			return d, true
		}
	}
	return WallDefinition{}, false
}

// ElementColor is the material colour of an element.
func ElementColor(e element.Element) color.RGBA {
	switch e {
	case element.Fire:
		return config.FireColor
	case element.Water:
		return config.WaterColor
	case element.Earth:
		return config.EarthColor
	default:
		return config.NoneColor
	}
}
