package entities

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
)

// 效果持续时长常量（秒）
const (
	// SlashEffectDuration 挥剑轨迹的显示时长
	// 与攻击时长一致，扇形扫过 ±挥剑半弧
	SlashEffectDuration = 0.2

	// DeathPuffDuration 敌人死亡烟尘的显示时长
	DeathPuffDuration = 0.5

	// ContactSparkDuration 接触火花的显示时长
	ContactSparkDuration = 0.2

	// BreakDustDuration 可破坏物碎裂尘土的显示时长
	BreakDustDuration = 0.3
)

// NewEffectEntity 创建一次性视觉效果实体
//
// 效果是 fire-and-forget 的：触发方不持有返回的ID，
// LifetimeSystem 到期后自动销毁实体
//
// 参数:
//   - em: 实体管理器
//   - kind: 效果类型
//   - x, y: 效果的世界坐标
//   - angle: 方向性效果的基准角（弧度），无方向的效果传 0
//   - duration: 显示时长（秒）
//
// 返回:
//   - ecs.EntityID: 创建的效果实体ID
func NewEffectEntity(em *ecs.EntityManager, kind components.EffectKind, x, y, angle, duration float64) ecs.EntityID {
	if em == nil {
		return 0
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.EffectComponent{
		Kind:  kind,
		Angle: angle,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: duration,
	})

	return id
}
