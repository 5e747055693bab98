package entities

import (
	"fmt"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
)

// NewEnemyEntity 创建敌人实体
//
// 敌人 = 位置 + 速度 + 移动意图 + 朝向 + 追击行为 + 受击计数 +
// 碰撞盒 + 精灵 + 动画状态
//
// 参数:
//   - em: 实体管理器
//   - ec: 敌人角色配置（必须已通过校验）
//   - target: 追击目标实体ID（通常为玩家）
//   - x, y: 出生世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，失败返回 0
//   - error: 配置缺失等构造错误
func NewEnemyEntity(em *ecs.EntityManager, ec *config.EnemyConfig, target ecs.EntityID, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if ec == nil {
		return 0, fmt.Errorf("enemy config cannot be nil")
	}
	// 纹理和动画键缺失是内容错误，立即失败
	if ec.Texture == "" {
		return 0, fmt.Errorf("enemy texture is required")
	}
	if len(ec.Animations) == 0 {
		return 0, fmt.Errorf("enemy animations are required")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.MoveIntentComponent{})
	em.AddComponent(id, &components.FacingComponent{Horizontal: components.FacingLeft})

	em.AddComponent(id, &components.EnemyComponent{
		Target:      target,
		Speed:       ec.Speed,
		Drag:        ec.Drag,
		StopEpsilon: ec.StopEpsilon,
		DeadZone:    ec.DeadZone,
	})

	em.AddComponent(id, &components.HitCountComponent{
		Threshold: ec.HitThreshold,
	})

	em.AddComponent(id, &components.CollisionComponent{
		Width:  ec.Width,
		Height: ec.Height,
	})

	em.AddComponent(id, &components.SpriteComponent{
		TextureID: ec.Texture,
		Width:     ec.Width,
		Height:    ec.Height,
	})

	em.AddComponent(id, &components.AnimStateComponent{State: components.AnimIdle})

	return id, nil
}
