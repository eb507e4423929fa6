// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"elemental-arena/internal/component"
	"elemental-arena/internal/config"
	"elemental-arena/internal/entity"
	"elemental-arena/internal/types"
	"elemental-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует арену сверху: X вправо, Z вверх по экрану.
type RenderSystem struct {
	ecs     *entity.ECS
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &RenderSystem{ecs: ecs, fillImg: fillImg}
}

// ToScreen projects a world position onto the screen.
func ToScreen(p utils.Vec3) (float32, float32) {
	x := float64(config.ScreenWidth)/2 + p.X*config.PixelsPerUnit
	y := float64(config.ScreenHeight)/2 - p.Z*config.PixelsPerUnit
	return float32(x), float32(y)
}

// Draw renders every visible entity. alpha in [0,1] interpolates bodies that ask
// for it between the previous and the current physics step.
func (s *RenderSystem) Draw(screen *ebiten.Image, alpha float64) {
	screen.Fill(config.BackgroundColor)
	h := config.ArenaHalfSize
	s.fillQuad(screen, utils.Vec3{}, 0, utils.Vec3{X: h, Z: h}, config.GroundColor)

	// Сначала окружение и стены, затем круглые тела, эффекты сверху.
	ids := entity.SortedIDs(s.ecs.Colliders)
	for _, id := range ids {
		col := s.ecs.Colliders[id]
		if col.Shape != component.ShapeBox {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		clr := config.EnvironmentColor
		if r, ok := s.ecs.Renderables[id]; ok {
			if !r.Visible {
				continue
			}
			clr = r.Color
		}
		if wall, ok := s.ecs.Walls[id]; ok && wall.Rising {
			// Поднимающаяся стена полупрозрачна.
			progress := 1 - utils.Distance(tr.Position, wall.TargetPosition)/math.Max(wall.Height, 1e-6)
			clr.A = uint8(80 + 175*clamp(progress, 0, 1))
		}
		s.fillQuad(screen, tr.Position, tr.Yaw, col.HalfExtents, clr)
	}

	for _, id := range entity.SortedIDs(s.ecs.Renderables) {
		if col, ok := s.ecs.Colliders[id]; ok && col.Shape == component.ShapeBox {
			continue
		}
		if _, isExplosion := s.ecs.Explosions[id]; isExplosion {
			continue
		}
		s.drawRound(screen, id, alpha)
	}

	for _, id := range entity.SortedIDs(s.ecs.Explosions) {
		s.drawExplosion(screen, id)
	}
}

func (s *RenderSystem) drawRound(screen *ebiten.Image, id types.EntityID, alpha float64) {
	r := s.ecs.Renderables[id]
	tr, ok := s.ecs.Transforms[id]
	if !ok || !r.Visible {
		return
	}
	pos := tr.Position
	if body, ok := s.ecs.Bodies[id]; ok && body.Interpolate {
		pos = utils.Vec3{
			X: utils.Lerp(body.Previous.X, pos.X, alpha),
			Y: utils.Lerp(body.Previous.Y, pos.Y, alpha),
			Z: utils.Lerp(body.Previous.Z, pos.Z, alpha),
		}
	}
	x, y := ToScreen(pos)
	radius := float32(r.Size.X / 2 * config.PixelsPerUnit)
	if radius < 2 {
		radius = 2
	}
	clr := r.Color
	if target, ok := s.ecs.Targets[id]; ok && target.State == component.TargetDefeated {
		clr.A /= 3
	}
	if r.HasStroke {
		vector.DrawFilledCircle(screen, x, y, radius+2, config.StrokeColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)

	// Направление взгляда у игрока и манекенов.
	if _, isProjectile := s.ecs.Projectiles[id]; !isProjectile {
		tip := pos.Add(tr.Forward().Scale(r.Size.X))
		tx, ty := ToScreen(tip)
		vector.StrokeLine(screen, x, y, tx, ty, 2, config.StrokeColor, true)
	}
}

func (s *RenderSystem) drawExplosion(screen *ebiten.Image, id types.EntityID) {
	explosion := s.ecs.Explosions[id]
	r, okR := s.ecs.Renderables[id]
	tr, okT := s.ecs.Transforms[id]
	if !okR || !okT || explosion.Duration <= 0 {
		return
	}
	progress := clamp(explosion.Timer/explosion.Duration, 0, 1)
	clr := r.Color
	clr.A = uint8(float64(clr.A) * (1 - progress))
	x, y := ToScreen(tr.Position)
	radius := float32(r.Size.X / 2 * config.PixelsPerUnit)
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
}

// fillQuad draws a box footprint rotated by yaw.
func (s *RenderSystem) fillQuad(target *ebiten.Image, center utils.Vec3, yaw float64, half utils.Vec3, clr color.RGBA) {
	corners := [4]utils.Vec3{
		{X: -half.X, Z: -half.Z},
		{X: half.X, Z: -half.Z},
		{X: half.X, Z: half.Z},
		{X: -half.X, Z: half.Z},
	}
	path := vector.Path{}
	for i, c := range corners {
		x, y := ToScreen(center.Add(utils.RotateY(c, yaw)))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].ColorR = float32(clr.R) / 255
		s.fillVs[i].ColorG = float32(clr.G) / 255
		s.fillVs[i].ColorB = float32(clr.B) / 255
		s.fillVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
