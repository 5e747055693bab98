package systems

import (
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
)

// TestEnemyChasesTarget 验证敌人意图指向目标方向
func TestEnemyChasesTarget(t *testing.T) {
	w := newTestWorld(t)
	ai := NewEnemyAISystem(w.em)

	// 玩家在 (320, 192)，敌人在左上方
	enemy := w.spawnEnemy(t, 200, 100)

	ai.Update(1.0 / 60.0)

	intent, _ := ecs.GetComponent[*components.MoveIntentComponent](w.em, enemy)
	if intent.DX != 1 || intent.DY != 1 {
		t.Errorf("Expected intent (1, 1) towards player, got (%.0f, %.0f)", intent.DX, intent.DY)
	}
	if !intent.Moving {
		t.Error("Expected Moving true while chasing")
	}
}

// TestEnemyHorizontalDeadZone 验证水平死区内不施加水平意图，垂直轴不受影响
func TestEnemyHorizontalDeadZone(t *testing.T) {
	w := newTestWorld(t)
	ai := NewEnemyAISystem(w.em)

	// |Δx| = 3 < 死区 5，|Δy| = 50
	enemy := w.spawnEnemy(t, 323, 142)

	ai.Update(1.0 / 60.0)

	intent, _ := ecs.GetComponent[*components.MoveIntentComponent](w.em, enemy)
	if intent.DX != 0 {
		t.Errorf("Expected DX 0 inside dead zone, got %.0f", intent.DX)
	}
	if intent.DY != 1 {
		t.Errorf("Expected DY 1, got %.0f", intent.DY)
	}
}

// TestEnemyStunnedSkipsChase 验证眩晕中的敌人清空意图
func TestEnemyStunnedSkipsChase(t *testing.T) {
	w := newTestWorld(t)
	ai := NewEnemyAISystem(w.em)

	enemy := w.spawnEnemy(t, 100, 100)
	ecs.AddComponent(w.em, enemy, &components.StunComponent{Remaining: 0.5})

	ai.Update(1.0 / 60.0)

	intent, _ := ecs.GetComponent[*components.MoveIntentComponent](w.em, enemy)
	if intent.Moving || intent.DX != 0 || intent.DY != 0 {
		t.Errorf("Expected cleared intent while stunned, got (%.0f, %.0f) moving=%v", intent.DX, intent.DY, intent.Moving)
	}
}

// TestEnemyStopsWhenTargetDying 验证目标死亡淡出时停止追击
func TestEnemyStopsWhenTargetDying(t *testing.T) {
	w := newTestWorld(t)
	ai := NewEnemyAISystem(w.em)

	enemy := w.spawnEnemy(t, 100, 100)
	ecs.AddComponent(w.em, w.player, &components.DyingComponent{FadeRemaining: 0.5, FadeDuration: 0.5})

	ai.Update(1.0 / 60.0)

	intent, _ := ecs.GetComponent[*components.MoveIntentComponent](w.em, enemy)
	if intent.Moving {
		t.Error("Expected no chase intent towards dying target")
	}
}
