// internal/system/billboard.go
package system

import (
	"math"

	"elemental-arena/internal/entity"
	"elemental-arena/internal/utils"
)

// BillboardSystem поворачивает манекены лицом к камере.
type BillboardSystem struct {
	ecs *entity.ECS
}

func NewBillboardSystem(ecs *entity.ECS) *BillboardSystem {
	return &BillboardSystem{ecs: ecs}
}

func (s *BillboardSystem) Update(deltaTime float64) {
	for id, bb := range s.ecs.Billboards {
		if !bb.Enabled {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		cam, ok := s.ecs.Transforms[bb.Camera]
		if !ok {
			continue
		}
		if utils.Distance(utils.Vec3{X: tr.Position.X, Z: tr.Position.Z}, utils.Vec3{X: cam.Position.X, Z: cam.Position.Z}) < 1e-6 {
			continue
		}
		want := utils.YawTowards(tr.Position, cam.Position)
		if bb.SmoothSpeed <= 0 {
			tr.Yaw = want
			continue
		}
		// Экспоненциальное сглаживание, не зависящее от частоты кадров.
		t := 1 - math.Exp(-bb.SmoothSpeed*deltaTime)
		tr.Yaw = utils.LerpAngle(tr.Yaw, want, t)
	}
}
