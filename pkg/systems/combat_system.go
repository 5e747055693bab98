package systems

import (
	"log"
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// CombatSystem 战斗结算系统
// 负责近战攻击生命周期、剑击命中结算、接触伤害结算以及
// 所有战斗相关计时器（受击冷却、眩晕、无敌窗口、击退抑制、死亡淡出）
//
// 结算规则：
//   - 剑击命中走"计数致死"：累计命中次数达到阈值后敌人死亡，
//     名义伤害值不参与击杀判定
//   - 剑击击退沿攻击方向的轴施加（四方向对齐），接触击退沿真实分离角施加
//   - 敌人死亡进入 Dying 终态：移除碰撞、清零速度、播放淡出，
//     淡出结束由本系统销毁实体；存活集合的清理由 WaveSystem 负责
type CombatSystem struct {
	entityManager *ecs.EntityManager
	state         *game.EncounterState
	combatCfg     *config.CombatConfig
	actorsCfg     *config.ActorsConfig
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(em *ecs.EntityManager, state *game.EncounterState, combatCfg *config.CombatConfig, actorsCfg *config.ActorsConfig) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		state:         state,
		combatCfg:     combatCfg,
		actorsCfg:     actorsCfg,
	}
}

// Update 推进战斗计时器并结算本帧的命中
// 参数：
//   - dt: 时间增量（秒）
func (s *CombatSystem) Update(dt float64) {
	s.tickTimers(dt)
	s.updatePlayerAttack(dt)
	s.resolveSwordHits()
	s.resolveContactDamage()
}

// tickTimers 推进所有战斗计时器
// 计时器状态存放在组件上，实体销毁时随组件一起消失，
// 等价于取消所有尚未到期的延迟回调
func (s *CombatSystem) tickTimers(dt float64) {
	// 受击冷却
	for _, entity := range ecs.GetEntitiesWith1[*components.HitCountComponent](s.entityManager) {
		hc, _ := ecs.GetComponent[*components.HitCountComponent](s.entityManager, entity)
		if hc.CooldownRemaining > 0 {
			hc.CooldownRemaining -= dt
			if hc.CooldownRemaining < 0 {
				hc.CooldownRemaining = 0
			}
		}
	}

	// 眩晕
	for _, entity := range ecs.GetEntitiesWith1[*components.StunComponent](s.entityManager) {
		stun, _ := ecs.GetComponent[*components.StunComponent](s.entityManager, entity)
		stun.Remaining -= dt
		if stun.Remaining <= 0 {
			ecs.RemoveComponent[*components.StunComponent](s.entityManager, entity)
		}
	}

	// 击退输入抑制
	for _, entity := range ecs.GetEntitiesWith1[*components.KnockbackComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.KnockbackComponent](s.entityManager, entity)
		kb.Remaining -= dt
		if kb.Remaining <= 0 {
			ecs.RemoveComponent[*components.KnockbackComponent](s.entityManager, entity)
		}
	}

	// 无敌窗口与闪烁累加
	for _, entity := range ecs.GetEntitiesWith1[*components.HealthComponent](s.entityManager) {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, entity)
		if !health.Invincible {
			continue
		}
		health.InvincibleRemaining -= dt
		health.BlinkAccumulator += dt
		if health.InvincibleRemaining <= 0 {
			health.Invincible = false
			health.InvincibleRemaining = 0
			health.BlinkAccumulator = 0
		}
	}

	// 死亡淡出，到期销毁实体
	for _, entity := range ecs.GetEntitiesWith1[*components.DyingComponent](s.entityManager) {
		dying, _ := ecs.GetComponent[*components.DyingComponent](s.entityManager, entity)
		dying.FadeRemaining -= dt
		if dying.FadeRemaining <= 0 {
			s.entityManager.DestroyEntity(entity)
		}
	}
}

// updatePlayerAttack 推进玩家近战状态机
// 触发请求由 InputSystem 在按键边沿置位，本系统消费；
// Active 态结束后回到 Idle，命中盒随之禁用
func (s *CombatSystem) updatePlayerAttack(dt float64) {
	player := s.state.PlayerID
	melee, ok := ecs.GetComponent[*components.MeleeAttackComponent](s.entityManager, player)
	if !ok {
		return
	}

	if melee.State == components.AttackActive {
		melee.Remaining -= dt
		if melee.Remaining <= 0 {
			melee.Remaining = 0
			melee.State = components.AttackIdle
		}
	}

	triggered := melee.TriggerRequested
	melee.TriggerRequested = false

	if !triggered || melee.State != components.AttackIdle {
		return
	}
	if s.state.Over() || ecs.HasComponent[*components.DyingComponent](s.entityManager, player) {
		return
	}

	melee.State = components.AttackActive
	melee.Remaining = melee.Duration

	if cx, cy, angle, ok := s.hitboxCenter(player, melee); ok {
		entities.NewEffectEntity(s.entityManager, components.EffectSlash, cx, cy, angle, melee.Duration)
	}
}

// hitboxCenter 计算当前攻击方向下的命中盒中心与基准角
func (s *CombatSystem) hitboxCenter(player ecs.EntityID, melee *components.MeleeAttackComponent) (cx, cy, angle float64, ok bool) {
	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, player)
	dir, okDir := ecs.GetComponent[*components.AttackDirectionComponent](s.entityManager, player)
	if !okPos || !okDir {
		return 0, 0, 0, false
	}
	ux, uy := dir.Direction.UnitVector()
	offset := melee.HitboxOffset()
	return pos.X + ux*offset, pos.Y + uy*offset, dir.Direction.BaseAngle(), true
}

// resolveSwordHits 结算攻击激活期间命中盒覆盖到的敌人
func (s *CombatSystem) resolveSwordHits() {
	player := s.state.PlayerID
	melee, ok := ecs.GetComponent[*components.MeleeAttackComponent](s.entityManager, player)
	if !ok || melee.State != components.AttackActive {
		return
	}

	cx, cy, _, ok := s.hitboxCenter(player, melee)
	if !ok {
		return
	}
	halfW := melee.HitboxWidth / 2
	halfH := melee.HitboxHeight / 2

	for _, enemy := range ecs.GetEntitiesWith2[
		*components.EnemyComponent,
		*components.HitCountComponent,
	](s.entityManager) {
		if ecs.HasComponent[*components.DyingComponent](s.entityManager, enemy) {
			continue
		}
		pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemy)
		col, okCol := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemy)
		if !okPos || !okCol {
			continue
		}
		if !aabbOverlap(
			cx-halfW, cy-halfH, cx+halfW, cy+halfH,
			pos.X-col.Width/2, pos.Y-col.Height/2, pos.X+col.Width/2, pos.Y+col.Height/2,
		) {
			continue
		}
		s.IntakeHit(enemy, s.combatCfg.SwordDamage)
	}
}

// IntakeHit 让敌人接受一次剑击命中
//
// amount 是名义伤害值，本难度模型下不参与击杀判定：
// 击杀由累计命中次数达到阈值触发（见 HitCountComponent）
//
// 返回:
//   - bool: 命中是否被接受（受击冷却窗口内的命中一律拒绝）
func (s *CombatSystem) IntakeHit(enemy ecs.EntityID, amount int) bool {
	hc, ok := ecs.GetComponent[*components.HitCountComponent](s.entityManager, enemy)
	if !ok {
		return false
	}
	if ecs.HasComponent[*components.DyingComponent](s.entityManager, enemy) {
		return false
	}
	if hc.CooldownRemaining > 0 {
		return false
	}

	hc.Hits++
	hc.CooldownRemaining = s.actorsCfg.Enemy.HitCooldown

	// 受击闪白
	ecs.AddComponent(s.entityManager, enemy, &components.FlashEffectComponent{
		Duration:  s.combatCfg.FlashDuration,
		Intensity: 1.0,
		IsActive:  true,
	})

	// 剑击击退沿攻击方向的轴施加，保持四方向对齐
	if dir, ok := ecs.GetComponent[*components.AttackDirectionComponent](s.entityManager, s.state.PlayerID); ok {
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, enemy); ok {
			ux, uy := dir.Direction.UnitVector()
			vel.VX = ux * s.combatCfg.SwordKnockback
			vel.VY = uy * s.combatCfg.SwordKnockback
		}
	}

	// 已眩晕的敌人不刷新眩晕计时
	if !ecs.HasComponent[*components.StunComponent](s.entityManager, enemy) {
		ecs.AddComponent(s.entityManager, enemy, &components.StunComponent{
			Remaining: s.actorsCfg.Enemy.StunDuration,
		})
	}

	if hc.Hits >= hc.Threshold {
		s.killEnemy(enemy)
	}
	return true
}

// killEnemy 让敌人进入死亡终态
// 终态不可逆：移除碰撞、清零速度、开始淡出，之后不再参与任何交互
func (s *CombatSystem) killEnemy(enemy ecs.EntityID) {
	fade := s.actorsCfg.Enemy.FadeOut

	ecs.AddComponent(s.entityManager, enemy, &components.DyingComponent{
		FadeRemaining: fade,
		FadeDuration:  fade,
	})
	ecs.RemoveComponent[*components.CollisionComponent](s.entityManager, enemy)
	ecs.RemoveComponent[*components.StunComponent](s.entityManager, enemy)

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, enemy); ok {
		vel.VX = 0
		vel.VY = 0
	}
	if anim, ok := ecs.GetComponent[*components.AnimStateComponent](s.entityManager, enemy); ok {
		anim.State = components.AnimDying
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemy); ok {
		entities.NewEffectEntity(s.entityManager, components.EffectDeathPuff, pos.X, pos.Y, 0, entities.DeathPuffDuration)
	}

	log.Printf("[CombatSystem] Enemy %d died", enemy)
}

// resolveContactDamage 结算敌人与玩家的接触伤害
func (s *CombatSystem) resolveContactDamage() {
	player := s.state.PlayerID

	playerPos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, player)
	playerCol, okCol := ecs.GetComponent[*components.CollisionComponent](s.entityManager, player)
	if !okPos || !okCol {
		return
	}
	if ecs.HasComponent[*components.DyingComponent](s.entityManager, player) {
		return
	}

	for _, enemy := range ecs.GetEntitiesWith2[
		*components.EnemyComponent,
		*components.CollisionComponent,
	](s.entityManager) {
		if ecs.HasComponent[*components.DyingComponent](s.entityManager, enemy) {
			continue
		}
		pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemy)
		col, okCol := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemy)
		if !okPos || !okCol {
			continue
		}
		if !aabbOverlap(
			playerPos.X-playerCol.Width/2, playerPos.Y-playerCol.Height/2,
			playerPos.X+playerCol.Width/2, playerPos.Y+playerCol.Height/2,
			pos.X-col.Width/2, pos.Y-col.Height/2,
			pos.X+col.Width/2, pos.Y+col.Height/2,
		) {
			continue
		}

		if !s.DamagePlayer(s.combatCfg.ContactDamage) {
			continue
		}

		ecs.AddComponent(s.entityManager, player, &components.FlashEffectComponent{
			Duration:  s.combatCfg.FlashDuration,
			Intensity: 1.0,
			IsActive:  true,
		})

		// 接触击退沿真实分离角施加（区别于剑击的轴对齐击退）
		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, player); ok {
				vel.VX = dx / dist * s.combatCfg.ContactKnockback
				vel.VY = dy / dist * s.combatCfg.ContactKnockback
			}
		}
		ecs.AddComponent(s.entityManager, player, &components.KnockbackComponent{
			Remaining: s.actorsCfg.Player.KnockbackDuration,
		})

		entities.NewEffectEntity(s.entityManager, components.EffectContactSpark,
			(playerPos.X+pos.X)/2, (playerPos.Y+pos.Y)/2, 0, entities.ContactSparkDuration)
	}
}

// DamagePlayer 对玩家施加伤害
//
// 结算顺序：
//  1. 死亡或无敌窗口内的伤害为空操作
//  2. 生命值扣减后钳制到 [0, Max]
//  3. 归零触发死亡与战败，不再设置无敌窗口
//  4. 存活则开启固定时长无敌窗口
//
// 返回:
//   - bool: 伤害是否被接受
func (s *CombatSystem) DamagePlayer(amount int) bool {
	player := s.state.PlayerID
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, player)
	if !ok {
		return false
	}
	if ecs.HasComponent[*components.DyingComponent](s.entityManager, player) {
		return false
	}
	if health.Invincible {
		return false
	}

	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	health.CriticalPulse = health.Current == 1

	if health.Current == 0 {
		s.killPlayer(player)
		return true
	}

	health.Invincible = true
	health.InvincibleRemaining = s.actorsCfg.Player.Invincibility
	health.BlinkAccumulator = 0
	return true
}

// killPlayer 玩家死亡：进入终态并标记战败
func (s *CombatSystem) killPlayer(player ecs.EntityID) {
	fade := s.actorsCfg.Enemy.FadeOut

	ecs.AddComponent(s.entityManager, player, &components.DyingComponent{
		FadeRemaining: fade,
		FadeDuration:  fade,
	})
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, player); ok {
		vel.VX = 0
		vel.VY = 0
	}
	if anim, ok := ecs.GetComponent[*components.AnimStateComponent](s.entityManager, player); ok {
		anim.State = components.AnimDying
	}

	s.state.Defeat = true
	log.Printf("[CombatSystem] Player died, encounter lost")
}

// aabbOverlap 判定两个轴对齐矩形是否相交（边重合不算相交）
func aabbOverlap(aMinX, aMinY, aMaxX, aMaxY, bMinX, bMinY, bMaxX, bMaxY float64) bool {
	return aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY
}
