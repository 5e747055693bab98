package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 处理键盘输入并转换为玩家的移动意图与攻击请求
//
// 移动：WASD 或方向键，同轴反向键同时按下时互相抵消
// 攻击：空格键，按键边沿触发（按住不重复攻击）
// 击退抑制窗口、死亡终态和遭遇战结束期间输入被忽略
type InputSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EncounterState
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, state *game.EncounterState) *InputSystem {
	return &InputSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 读取键盘状态并写入玩家组件
// 参数:
//   - deltaTime: 时间增量（秒）
func (s *InputSystem) Update(deltaTime float64) {
	var dx, dy float64

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += 1
	}

	attackPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	s.Apply(dx, dy, attackPressed)
}

// Apply 把一帧的输入采样写入玩家组件
// 与键盘读取分离，便于在无窗口环境下驱动输入逻辑
//
// 参数:
//   - dx, dy: 意图方向分量（-1/0/+1，未归一化）
//   - attackPressed: 攻击键本帧是否为按下边沿
func (s *InputSystem) Apply(dx, dy float64, attackPressed bool) {
	player := s.state.PlayerID

	intent, ok := ecs.GetComponent[*components.MoveIntentComponent](s.entityManager, player)
	if !ok {
		return
	}

	suppressed := s.state.Over() ||
		ecs.HasComponent[*components.DyingComponent](s.entityManager, player) ||
		ecs.HasComponent[*components.KnockbackComponent](s.entityManager, player)

	if suppressed {
		intent.DX = 0
		intent.DY = 0
		intent.Moving = false
		return
	}

	intent.DX = dx
	intent.DY = dy
	intent.Moving = dx != 0 || dy != 0

	// 攻击方向跟随当前输入，水平轴优先于垂直轴
	// 独立于左右精灵翻转：可以一边向左滑行一边向上挥剑
	if attackDir, ok := ecs.GetComponent[*components.AttackDirectionComponent](s.entityManager, player); ok {
		if dx > 0 {
			attackDir.Direction = components.DirectionRight
		} else if dx < 0 {
			attackDir.Direction = components.DirectionLeft
		} else if dy > 0 {
			attackDir.Direction = components.DirectionDown
		} else if dy < 0 {
			attackDir.Direction = components.DirectionUp
		}
	}

	if attackPressed {
		if melee, ok := ecs.GetComponent[*components.MeleeAttackComponent](s.entityManager, player); ok {
			melee.TriggerRequested = true
		}
	}
}
