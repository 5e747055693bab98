package systems

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
)

// MovementSystem 移动系统
// 统一处理所有可移动实体（玩家和敌人）的速度计算与位置积分：
//   - 有移动意图：速度 = 意图方向 × 移动速度，对角线两轴各乘 1/√2
//   - 无移动意图：速度按阻尼系数指数衰减，低于停止阈值后吸附到零并切换待机动画
//   - 位置积分逐轴进行，撞墙的轴被取消，另一轴继续滑动
//
// 击退期间输入意图被抑制（由 InputSystem / EnemyAISystem 保证），
// 因此击退速度自然走无意图衰减路径，无需特殊处理
type MovementSystem struct {
	entityManager *ecs.EntityManager
	grid          *game.TileGrid
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, grid *game.TileGrid) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		grid:          grid,
	}
}

// Update 更新所有可移动实体
// 参数：
//   - dt: 时间增量（秒）
func (s *MovementSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.MoveIntentComponent,
	](s.entityManager)

	for _, entity := range entities {
		// 死亡淡出中的实体不再移动
		if ecs.HasComponent[*components.DyingComponent](s.entityManager, entity) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, entity)
		intent, _ := ecs.GetComponent[*components.MoveIntentComponent](s.entityManager, entity)

		speed, drag, stopEpsilon := s.moveParams(entity)

		if intent.Moving {
			vx := intent.DX * speed
			vy := intent.DY * speed
			// 对角线移动归一化，保证任意方向速度模长一致
			if intent.DX != 0 && intent.DY != 0 {
				vx /= math.Sqrt2
				vy /= math.Sqrt2
			}
			vel.VX = vx
			vel.VY = vy

			if anim, ok := ecs.GetComponent[*components.AnimStateComponent](s.entityManager, entity); ok {
				anim.State = components.AnimRun
			}
			// 朝向只跟随水平意图，纯垂直移动和滑行期间保持不变
			if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, entity); ok {
				if intent.DX > 0 {
					facing.Horizontal = components.FacingRight
				} else if intent.DX < 0 {
					facing.Horizontal = components.FacingLeft
				}
			}
		} else {
			// 指数衰减：Pow(drag, dt) 保证衰减速率与帧率无关
			decay := math.Pow(drag, dt)
			vel.VX *= decay
			vel.VY *= decay

			if math.Hypot(vel.VX, vel.VY) < stopEpsilon {
				vel.VX = 0
				vel.VY = 0
				if anim, ok := ecs.GetComponent[*components.AnimStateComponent](s.entityManager, entity); ok {
					anim.State = components.AnimIdle
				}
			}
		}

		s.integrate(entity, pos, vel, dt)
	}
}

// moveParams 返回实体的移动参数（速度、阻尼、停止阈值）
func (s *MovementSystem) moveParams(entity ecs.EntityID) (speed, drag, stopEpsilon float64) {
	if p, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, entity); ok {
		return p.Speed, p.Drag, p.StopEpsilon
	}
	if e, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, entity); ok {
		return e.Speed, e.Drag, e.StopEpsilon
	}
	// 无移动参数的实体退化为纯积分（不产生意图时立即停止）
	return 0, 0, math.MaxFloat64
}

// integrate 逐轴积分位置并做墙体碰撞
// X、Y 两轴独立判定：撞墙的轴取消位移并清零该轴速度，另一轴照常滑动
func (s *MovementSystem) integrate(entity ecs.EntityID, pos *components.PositionComponent, vel *components.VelocityComponent, dt float64) {
	col, hasCol := ecs.GetComponent[*components.CollisionComponent](s.entityManager, entity)
	if !hasCol || s.grid == nil {
		pos.X += vel.VX * dt
		pos.Y += vel.VY * dt
		return
	}

	halfW := col.Width / 2
	halfH := col.Height / 2

	newX := pos.X + vel.VX*dt
	if s.grid.BlockedAABB(newX-halfW, pos.Y-halfH, newX+halfW, pos.Y+halfH) {
		vel.VX = 0
	} else {
		pos.X = newX
	}

	newY := pos.Y + vel.VY*dt
	if s.grid.BlockedAABB(pos.X-halfW, newY-halfH, pos.X+halfW, newY+halfH) {
		vel.VY = 0
	} else {
		pos.Y = newY
	}
}
