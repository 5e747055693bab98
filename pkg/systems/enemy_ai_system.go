package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
)

// EnemyAISystem 敌人追击系统
// 每帧为每个存活敌人写入指向目标的移动意图：
//   - 水平轴带死区：|Δx| 小于 DeadZone 时不施加水平意图，避免对齐抖动
//   - 垂直轴无死区：|Δy| > 0 即施加垂直意图
//
// 眩晕和死亡淡出中的敌人跳过 AI tick（意图清空，速度交给阻尼衰减）
type EnemyAISystem struct {
	entityManager *ecs.EntityManager
}

// NewEnemyAISystem 创建敌人追击系统
func NewEnemyAISystem(em *ecs.EntityManager) *EnemyAISystem {
	return &EnemyAISystem{
		entityManager: em,
	}
}

// Update 更新所有敌人的移动意图
// 参数：
//   - dt: 时间增量（秒）
func (s *EnemyAISystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[
		*components.EnemyComponent,
		*components.MoveIntentComponent,
	](s.entityManager)

	for _, entity := range entities {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, entity)
		intent, _ := ecs.GetComponent[*components.MoveIntentComponent](s.entityManager, entity)

		intent.DX = 0
		intent.DY = 0
		intent.Moving = false

		if ecs.HasComponent[*components.StunComponent](s.entityManager, entity) {
			continue
		}
		if ecs.HasComponent[*components.DyingComponent](s.entityManager, entity) {
			continue
		}

		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemy.Target)
		if !ok {
			continue
		}
		// 目标死亡淡出时停止追击
		if ecs.HasComponent[*components.DyingComponent](s.entityManager, enemy.Target) {
			continue
		}

		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		if !ok {
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y

		if dx > enemy.DeadZone {
			intent.DX = 1
		} else if dx < -enemy.DeadZone {
			intent.DX = -1
		}
		if dy > 0 {
			intent.DY = 1
		} else if dy < 0 {
			intent.DY = -1
		}

		intent.Moving = intent.DX != 0 || intent.DY != 0
	}
}
