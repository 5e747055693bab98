package entities

import (
	"fmt"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
//
// 玩家 = 位置 + 速度 + 移动意图 + 朝向 + 攻击方向 + 近战攻击 +
// 生命值 + 碰撞盒 + 精灵 + 动画状态
//
// 参数:
//   - em: 实体管理器
//   - pc: 玩家角色配置（必须已通过校验）
//   - cc: 战斗配置
//   - x, y: 出生世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，失败返回 0
//   - error: 配置缺失等构造错误
func NewPlayerEntity(em *ecs.EntityManager, pc *config.PlayerConfig, cc *config.CombatConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if pc == nil {
		return 0, fmt.Errorf("player config cannot be nil")
	}
	if cc == nil {
		return 0, fmt.Errorf("combat config cannot be nil")
	}
	// 纹理和动画键缺失是内容错误，立即失败
	if pc.Texture == "" {
		return 0, fmt.Errorf("player texture is required")
	}
	if len(pc.Animations) == 0 {
		return 0, fmt.Errorf("player animations are required")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.MoveIntentComponent{})
	em.AddComponent(id, &components.FacingComponent{Horizontal: components.FacingRight})
	em.AddComponent(id, &components.AttackDirectionComponent{Direction: components.DirectionDown})

	em.AddComponent(id, &components.PlayerComponent{
		Speed:       pc.Speed,
		Drag:        pc.Drag,
		StopEpsilon: pc.StopEpsilon,
	})

	em.AddComponent(id, &components.HealthComponent{
		Current: pc.MaxHealth,
		Max:     pc.MaxHealth,
	})

	em.AddComponent(id, &components.MeleeAttackComponent{
		State:        components.AttackIdle,
		Duration:     cc.AttackDuration,
		WeaponOffset: cc.WeaponOffset,
		OffsetScale:  cc.HitboxOffsetScale,
		HitboxWidth:  cc.HitboxWidth,
		HitboxHeight: cc.HitboxHeight,
		SwingArcDeg:  cc.SwingArcDeg,
	})

	em.AddComponent(id, &components.CollisionComponent{
		Width:  pc.Width,
		Height: pc.Height,
	})

	em.AddComponent(id, &components.SpriteComponent{
		TextureID: pc.Texture,
		Width:     pc.Width,
		Height:    pc.Height,
	})

	em.AddComponent(id, &components.AnimStateComponent{State: components.AnimIdle})

	return id, nil
}
