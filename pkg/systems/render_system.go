package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 无敌闪烁的显隐切换周期（秒）
const invincibleBlinkInterval = 0.1

// RenderSystem 渲染系统
// 纯消费者：读取组件状态绘制场地、实体、效果和 HUD，不修改任何逻辑状态
//
// 外观采用矢量图形绘制，按 SpriteComponent.TextureID 选择配色，
// 因此全部逻辑系统都可以在无图形上下文的环境下运行与测试
type RenderSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EncounterState
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, state *game.EncounterState) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		state:         state,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawGrid(screen)
	s.drawEffects(screen)
	s.drawActors(screen)
	s.drawHUD(screen)
	s.drawOverlay(screen)
}

// drawGrid 绘制地格：墙、可破坏物和地板
func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	grid := s.state.Grid
	ts := float32(grid.TileSize())

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			coord := game.TileCoord{Col: col, Row: row}
			x := float32(col) * ts
			y := float32(row) * ts

			switch {
			case grid.IsBreakable(coord):
				clr := color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
				// 受击后变暗提示即将碎裂
				if hits, ok := grid.BreakableHits(coord); ok && hits > 0 {
					clr = color.RGBA{R: 0x5e, G: 0x3c, B: 0x1d, A: 0xff}
				}
				vector.DrawFilledRect(screen, x+1, y+1, ts-2, ts-2, clr, false)
			case grid.IsWall(coord):
				vector.DrawFilledRect(screen, x, y, ts, ts, color.RGBA{R: 0x44, G: 0x44, B: 0x4c, A: 0xff}, false)
			default:
				vector.DrawFilledRect(screen, x, y, ts, ts, color.RGBA{R: 0x1e, G: 0x24, B: 0x1e, A: 0xff}, false)
			}
		}
	}
}

// drawActors 绘制玩家与敌人
func (s *RenderSystem) drawActors(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, entity := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entity)

		alpha := 1.0
		if dying, ok := ecs.GetComponent[*components.DyingComponent](s.entityManager, entity); ok && dying.FadeDuration > 0 {
			alpha = dying.FadeRemaining / dying.FadeDuration
			if alpha < 0 {
				alpha = 0
			}
		}

		// 无敌期间按固定周期显隐闪烁
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, entity); ok && health.Invincible {
			if int(health.BlinkAccumulator/invincibleBlinkInterval)%2 == 1 {
				continue
			}
		}

		clr := actorColor(sprite.TextureID)
		if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity); ok && flash.IsActive {
			clr = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		clr = scaleAlpha(clr, alpha)

		vector.DrawFilledRect(screen,
			float32(pos.X-sprite.Width/2), float32(pos.Y-sprite.Height/2),
			float32(sprite.Width), float32(sprite.Height), clr, false)

		// 朝向标记：身体前侧的小点
		if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, entity); ok {
			fx := pos.X + sprite.Width/4
			if facing.Horizontal == components.FacingLeft {
				fx = pos.X - sprite.Width/4
			}
			vector.DrawFilledCircle(screen, float32(fx), float32(pos.Y-sprite.Height/8), 2,
				scaleAlpha(color.RGBA{A: 0xc0}, alpha), false)
		}

		// 濒死脉冲：生命值恰好为 1 时的红色描边
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, entity); ok && health.CriticalPulse {
			vector.StrokeRect(screen,
				float32(pos.X-sprite.Width/2-2), float32(pos.Y-sprite.Height/2-2),
				float32(sprite.Width+4), float32(sprite.Height+4), 2,
				color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}, false)
		}
	}
}

// drawEffects 绘制一次性视觉效果
// 进度 = 已存活时间 / 总时长，由 LifetimeComponent 提供
func (s *RenderSystem) drawEffects(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[
		*components.EffectComponent,
		*components.PositionComponent,
		*components.LifetimeComponent,
	](s.entityManager)

	for _, entity := range entities {
		effect, _ := ecs.GetComponent[*components.EffectComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, entity)

		progress := 0.0
		if life.MaxLifetime > 0 {
			progress = life.CurrentLifetime / life.MaxLifetime
		}
		if progress > 1 {
			progress = 1
		}

		switch effect.Kind {
		case components.EffectSlash:
			s.drawSlash(screen, pos, effect.Angle, progress)
		case components.EffectDeathPuff:
			r := float32(6 + progress*14)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r,
				scaleAlpha(color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}, 1-progress), false)
		case components.EffectContactSpark:
			r := float32(3 + progress*5)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r,
				scaleAlpha(color.RGBA{R: 0xff, G: 0xd7, B: 0x30, A: 0xff}, 1-progress), false)
		case components.EffectBreakDust:
			r := float32(4 + progress*10)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r,
				scaleAlpha(color.RGBA{R: 0x9a, G: 0x7b, B: 0x55, A: 0xff}, 1-progress), false)
		}
	}
}

// drawSlash 绘制挥剑轨迹
// 剑刃从基准角 -半弧 扫到 +半弧，扫过角度随攻击进度线性推进
func (s *RenderSystem) drawSlash(screen *ebiten.Image, pos *components.PositionComponent, baseAngle, progress float64) {
	melee, ok := ecs.GetComponent[*components.MeleeAttackComponent](s.entityManager, s.state.PlayerID)
	if !ok {
		return
	}

	halfArc := melee.SwingArcDeg * math.Pi / 180
	angle := baseAngle - halfArc + progress*2*halfArc
	length := melee.WeaponOffset * 1.6

	x1 := pos.X + math.Cos(angle)*length
	y1 := pos.Y + math.Sin(angle)*length

	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(x1), float32(y1), 3,
		scaleAlpha(color.RGBA{R: 0xe8, G: 0xe8, B: 0xf8, A: 0xff}, 1-progress*0.5), true)
}

// drawHUD 绘制生命值与波次信息
func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.state.PlayerID); ok {
		for i := 0; i < health.Max; i++ {
			clr := color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
			if i < health.Current {
				clr = color.RGBA{R: 0xe0, G: 0x30, B: 0x40, A: 0xff}
			}
			vector.DrawFilledCircle(screen, float32(12+i*16), 12, 6, clr, true)
		}
	}

	wave := s.state.Wave
	if wave > s.state.MaxWaves {
		wave = s.state.MaxWaves
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wave %d/%d  Enemies %d", wave, s.state.MaxWaves, s.state.AliveCount()),
		8, 22)
}

// drawOverlay 绘制结算与波次间隔提示
func (s *RenderSystem) drawOverlay(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	switch {
	case s.state.Won:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 0x80}, false)
		ebitenutil.DebugPrintAt(screen, "VICTORY  press R to restart", w/2-90, h/2)
	case s.state.Defeat:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{R: 0x40, A: 0x80}, false)
		ebitenutil.DebugPrintAt(screen, "DEFEAT  press R to restart", w/2-90, h/2)
	case s.state.WaveDelayPending:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wave %d incoming...", s.state.Wave+1), w/2-60, h/2-40)
	}
}

// actorColor 按外观标识选择实体配色
func actorColor(textureID string) color.RGBA {
	switch textureID {
	case "hero":
		return color.RGBA{R: 0x40, G: 0x80, B: 0xe0, A: 0xff}
	case "slime":
		return color.RGBA{R: 0x50, G: 0xb0, B: 0x50, A: 0xff}
	default:
		return color.RGBA{R: 0xc0, G: 0x40, B: 0xc0, A: 0xff}
	}
}

// scaleAlpha 按系数缩放颜色的透明度（预乘 alpha）
func scaleAlpha(clr color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return clr
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(clr.R) * alpha),
		G: uint8(float64(clr.G) * alpha),
		B: uint8(float64(clr.B) * alpha),
		A: uint8(float64(clr.A) * alpha),
	}
}
