package systems

import (
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
)

// TestInputApplyWritesIntent 验证输入采样写入移动意图，水平轴主导攻击方向
func TestInputApplyWritesIntent(t *testing.T) {
	w := newTestWorld(t)
	is := NewInputSystem(w.em, w.state)

	is.Apply(1, -1, false)

	intent, _ := ecs.GetComponent[*components.MoveIntentComponent](w.em, w.player)
	if intent.DX != 1 || intent.DY != -1 || !intent.Moving {
		t.Errorf("Expected intent (1, -1) moving, got (%.0f, %.0f) moving=%v", intent.DX, intent.DY, intent.Moving)
	}

	dir, _ := ecs.GetComponent[*components.AttackDirectionComponent](w.em, w.player)
	if dir.Direction != components.DirectionRight {
		t.Errorf("Expected DirectionRight (horizontal dominant), got %v", dir.Direction)
	}
}

// TestInputVerticalAttackDirection 验证纯垂直输入更新攻击方向
func TestInputVerticalAttackDirection(t *testing.T) {
	w := newTestWorld(t)
	is := NewInputSystem(w.em, w.state)

	is.Apply(0, -1, false)

	dir, _ := ecs.GetComponent[*components.AttackDirectionComponent](w.em, w.player)
	if dir.Direction != components.DirectionUp {
		t.Errorf("Expected DirectionUp, got %v", dir.Direction)
	}

	// 无输入时攻击方向保持不变
	is.Apply(0, 0, false)
	if dir.Direction != components.DirectionUp {
		t.Errorf("Expected DirectionUp preserved without input, got %v", dir.Direction)
	}
}

// TestInputAttackEdgeSetsTrigger 验证攻击边沿置位触发请求
func TestInputAttackEdgeSetsTrigger(t *testing.T) {
	w := newTestWorld(t)
	is := NewInputSystem(w.em, w.state)

	is.Apply(0, 0, true)

	melee, _ := ecs.GetComponent[*components.MeleeAttackComponent](w.em, w.player)
	if !melee.TriggerRequested {
		t.Error("Expected attack trigger requested")
	}
}

// TestInputSuppressedDuringKnockback 验证击退窗口内输入被忽略
func TestInputSuppressedDuringKnockback(t *testing.T) {
	w := newTestWorld(t)
	is := NewInputSystem(w.em, w.state)

	ecs.AddComponent(w.em, w.player, &components.KnockbackComponent{Remaining: 0.3})

	is.Apply(1, 0, true)

	intent, _ := ecs.GetComponent[*components.MoveIntentComponent](w.em, w.player)
	if intent.Moving || intent.DX != 0 {
		t.Errorf("Expected intent suppressed during knockback, got DX=%.0f moving=%v", intent.DX, intent.Moving)
	}
	melee, _ := ecs.GetComponent[*components.MeleeAttackComponent](w.em, w.player)
	if melee.TriggerRequested {
		t.Error("Expected attack trigger suppressed during knockback")
	}
}

// TestInputSuppressedWhenEncounterOver 验证结算后输入被忽略
func TestInputSuppressedWhenEncounterOver(t *testing.T) {
	w := newTestWorld(t)
	is := NewInputSystem(w.em, w.state)

	w.state.Defeat = true
	is.Apply(1, 1, true)

	intent, _ := ecs.GetComponent[*components.MoveIntentComponent](w.em, w.player)
	if intent.Moving {
		t.Error("Expected intent suppressed after encounter over")
	}
}
