package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// BreakableSystem 可破坏物系统
// 推进地格的受击去抖计时，并在玩家攻击激活期间把命中盒
// 覆盖到的可破坏地格转换为受击
//
// 单次攻击持续多帧，但去抖窗口长于攻击时长，
// 因此一次挥剑对同一地格至多产生一次有效受击
type BreakableSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EncounterState
}

// NewBreakableSystem 创建可破坏物系统
func NewBreakableSystem(em *ecs.EntityManager, state *game.EncounterState) *BreakableSystem {
	return &BreakableSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 推进去抖计时并结算本帧的地格受击
// 参数：
//   - dt: 时间增量（秒）
func (s *BreakableSystem) Update(dt float64) {
	s.state.Grid.Update(dt)

	player := s.state.PlayerID
	melee, ok := ecs.GetComponent[*components.MeleeAttackComponent](s.entityManager, player)
	if !ok || melee.State != components.AttackActive {
		return
	}

	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, player)
	dir, okDir := ecs.GetComponent[*components.AttackDirectionComponent](s.entityManager, player)
	if !okPos || !okDir {
		return
	}

	ux, uy := dir.Direction.UnitVector()
	offset := melee.HitboxOffset()
	cx := pos.X + ux*offset
	cy := pos.Y + uy*offset
	halfW := melee.HitboxWidth / 2
	halfH := melee.HitboxHeight / 2

	// TilesInAABB 已去重，命中盒跨越多个地格时每格至多结算一次
	for _, coord := range s.state.Grid.TilesInAABB(cx-halfW, cy-halfH, cx+halfW, cy+halfH) {
		if !s.state.Grid.IsBreakable(coord) {
			continue
		}
		accepted, _ := s.state.Grid.HitBreakable(coord)
		if !accepted {
			continue
		}
		tx, ty := s.state.Grid.TileCenter(coord)
		entities.NewEffectEntity(s.entityManager, components.EffectBreakDust, tx, ty, 0, entities.BreakDustDuration)
	}
}
