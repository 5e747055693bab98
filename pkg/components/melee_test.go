package components

import "testing"

// TestMeleeAttackComponent_FieldInitialization 测试组件零值
func TestMeleeAttackComponent_FieldInitialization(t *testing.T) {
	melee := &MeleeAttackComponent{}

	if melee.State != AttackIdle {
		t.Errorf("Expected State = AttackIdle, got %v", melee.State)
	}
	if melee.TriggerRequested {
		t.Error("Expected TriggerRequested = false")
	}
	if melee.Remaining != 0 {
		t.Errorf("Expected Remaining = 0, got %f", melee.Remaining)
	}
}

// TestMeleeAttackComponent_HitboxOffset 测试命中盒偏移为视觉偏移的固定倍数
func TestMeleeAttackComponent_HitboxOffset(t *testing.T) {
	melee := &MeleeAttackComponent{
		WeaponOffset: 20,
		OffsetScale:  1.5,
	}

	if got := melee.HitboxOffset(); got != 30 {
		t.Errorf("Expected HitboxOffset = 30, got %f", got)
	}
}

// TestCardinalDirection_UnitVector 测试四方向单位向量
func TestCardinalDirection_UnitVector(t *testing.T) {
	cases := []struct {
		dir    CardinalDirection
		dx, dy float64
	}{
		{DirectionRight, 1, 0},
		{DirectionLeft, -1, 0},
		{DirectionUp, 0, -1},
		{DirectionDown, 0, 1},
	}

	for _, c := range cases {
		dx, dy := c.dir.UnitVector()
		if dx != c.dx || dy != c.dy {
			t.Errorf("Direction %v: expected (%v, %v), got (%v, %v)", c.dir, c.dx, c.dy, dx, dy)
		}
	}
}
