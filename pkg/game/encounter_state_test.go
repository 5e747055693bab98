package game

import (
	"testing"

	"github.com/gonewx/arena/pkg/ecs"
)

// TestEncounterState_AliveSet 测试存活集合的注册/注销语义
func TestEncounterState_AliveSet(t *testing.T) {
	em := ecs.NewEntityManager()
	es := NewEncounterState(em, testGrid(t), 5, 1)

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	es.RegisterEnemy(id1)
	es.RegisterEnemy(id2)
	if es.AliveCount() != 2 {
		t.Errorf("Expected 2 alive enemies, got %d", es.AliveCount())
	}
	if !es.IsEnemyAlive(id1) {
		t.Error("Expected id1 to be alive")
	}

	es.DeregisterEnemy(id1)
	if es.AliveCount() != 1 {
		t.Errorf("Expected 1 alive enemy, got %d", es.AliveCount())
	}

	// 重复注销是空操作
	es.DeregisterEnemy(id1)
	if es.AliveCount() != 1 {
		t.Errorf("Expected deregister to be idempotent, got %d", es.AliveCount())
	}
}

// TestEncounterState_Terminal 测试终态判定
func TestEncounterState_Terminal(t *testing.T) {
	em := ecs.NewEntityManager()
	es := NewEncounterState(em, testGrid(t), 5, 1)

	if es.Over() {
		t.Error("New encounter should not be over")
	}

	es.Won = true
	if !es.Over() {
		t.Error("Won encounter should be over")
	}
}
