package entities

import (
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
)

// TestNewPlayerEntity 测试玩家实体创建
func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	actors := config.DefaultActorsConfig()
	combat := config.DefaultCombatConfig()

	playerID, err := NewPlayerEntity(em, &actors.Player, combat, 100, 200)
	if err != nil {
		t.Fatalf("NewPlayerEntity() error = %v", err)
	}
	if playerID == 0 {
		t.Fatal("Expected valid entity ID, got 0")
	}

	// 位置组件
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if !ok {
		t.Fatal("Player should have a PositionComponent")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Expected position (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 生命值初始化为满
	health, ok := ecs.GetComponent[*components.HealthComponent](em, playerID)
	if !ok {
		t.Fatal("Player should have a HealthComponent")
	}
	if health.Current != actors.Player.MaxHealth || health.Max != actors.Player.MaxHealth {
		t.Errorf("Expected full health %d/%d, got %d/%d",
			actors.Player.MaxHealth, actors.Player.MaxHealth, health.Current, health.Max)
	}

	// 近战组件来自战斗配置
	melee, ok := ecs.GetComponent[*components.MeleeAttackComponent](em, playerID)
	if !ok {
		t.Fatal("Player should have a MeleeAttackComponent")
	}
	if melee.State != components.AttackIdle {
		t.Errorf("Expected initial AttackIdle, got %v", melee.State)
	}
	if melee.Duration != combat.AttackDuration {
		t.Errorf("Expected attack duration %f, got %f", combat.AttackDuration, melee.Duration)
	}

	// 默认攻击方向为下
	ad, ok := ecs.GetComponent[*components.AttackDirectionComponent](em, playerID)
	if !ok {
		t.Fatal("Player should have an AttackDirectionComponent")
	}
	if ad.Direction != components.DirectionDown {
		t.Errorf("Expected initial attack direction Down, got %v", ad.Direction)
	}
}

// TestNewPlayerEntity_MissingTexture 测试纹理缺失时构造失败
// 这是内容配置错误，必须立即失败而不是静默降级
func TestNewPlayerEntity_MissingTexture(t *testing.T) {
	em := ecs.NewEntityManager()
	actors := config.DefaultActorsConfig()
	combat := config.DefaultCombatConfig()

	pc := actors.Player
	pc.Texture = ""

	if _, err := NewPlayerEntity(em, &pc, combat, 0, 0); err == nil {
		t.Error("Expected error for missing texture, got nil")
	}
}

// TestNewEnemyEntity 测试敌人实体创建
func TestNewEnemyEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	actors := config.DefaultActorsConfig()

	target := em.CreateEntity()
	enemyID, err := NewEnemyEntity(em, &actors.Enemy, target, 300, 400)
	if err != nil {
		t.Fatalf("NewEnemyEntity() error = %v", err)
	}

	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
	if !ok {
		t.Fatal("Enemy should have an EnemyComponent")
	}
	if enemy.Target != target {
		t.Errorf("Expected target %d, got %d", target, enemy.Target)
	}
	if enemy.DeadZone != actors.Enemy.DeadZone {
		t.Errorf("Expected dead zone %f, got %f", actors.Enemy.DeadZone, enemy.DeadZone)
	}

	// 受击计数从零开始，阈值来自配置
	hits, ok := ecs.GetComponent[*components.HitCountComponent](em, enemyID)
	if !ok {
		t.Fatal("Enemy should have a HitCountComponent")
	}
	if hits.Hits != 0 {
		t.Errorf("Expected 0 initial hits, got %d", hits.Hits)
	}
	if hits.Threshold != actors.Enemy.HitThreshold {
		t.Errorf("Expected threshold %d, got %d", actors.Enemy.HitThreshold, hits.Threshold)
	}
}

// TestNewEnemyEntity_MissingAnimations 测试动画键缺失时构造失败
func TestNewEnemyEntity_MissingAnimations(t *testing.T) {
	em := ecs.NewEntityManager()
	actors := config.DefaultActorsConfig()

	ec := actors.Enemy
	ec.Animations = nil

	if _, err := NewEnemyEntity(em, &ec, 0, 0, 0); err == nil {
		t.Error("Expected error for missing animations, got nil")
	}
}

// TestNewEffectEntity 测试效果实体创建
func TestNewEffectEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewEffectEntity(em, components.EffectDeathPuff, 50, 60, 0, DeathPuffDuration)
	if id == 0 {
		t.Fatal("Expected valid entity ID, got 0")
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok {
		t.Fatal("Effect should have a LifetimeComponent")
	}
	if lifetime.MaxLifetime != DeathPuffDuration {
		t.Errorf("Expected lifetime %f, got %f", DeathPuffDuration, lifetime.MaxLifetime)
	}
}
