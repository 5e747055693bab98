package scenes

import (
	"testing"

	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/game"
)

// newTestScene 用默认配置和固定种子创建场景
func newTestScene(t *testing.T) *BattleScene {
	t.Helper()

	s, err := NewBattleScene(
		config.DefaultActorsConfig(),
		config.DefaultCombatConfig(),
		config.DefaultEncounterConfig(),
		1,
	)
	if err != nil {
		t.Fatalf("Failed to create battle scene: %v", err)
	}
	return s
}

// TestBattleSceneStartsFirstWave 验证场景初始化后第一波已开启
func TestBattleSceneStartsFirstWave(t *testing.T) {
	game.ResetGameState()
	s := newTestScene(t)

	if s.State().Wave != 1 {
		t.Errorf("Expected wave 1 at start, got %d", s.State().Wave)
	}
	if s.State().AliveCount() != 1 {
		t.Errorf("Expected 1 enemy in wave 1, got %d", s.State().AliveCount())
	}
	if s.PlayerHealth() != config.DefaultActorsConfig().Player.MaxHealth {
		t.Errorf("Expected full player health, got %d", s.PlayerHealth())
	}
}

// TestBattleSceneUpdateRunsPipeline 验证系统管线可以连续推进多帧
func TestBattleSceneUpdateRunsPipeline(t *testing.T) {
	game.ResetGameState()
	s := newTestScene(t)

	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60.0)
	}

	if s.State().Wave != 1 {
		t.Errorf("Expected still wave 1 with enemy alive, got %d", s.State().Wave)
	}
	if !s.State().IsEnemyAlive(s.State().AliveEnemies()[0]) {
		t.Error("Expected wave 1 enemy still alive")
	}
}

// TestBattleSceneRecordsResult 验证结算后结果被写入全局状态（只写一次）
func TestBattleSceneRecordsResult(t *testing.T) {
	game.ResetGameState()
	s := newTestScene(t)

	s.State().Won = true
	s.Update(1.0 / 60.0)
	s.Update(1.0 / 60.0)

	gs := game.GetGameState()
	if gs.LastResult != game.ResultVictory {
		t.Errorf("Expected ResultVictory recorded, got %v", gs.LastResult)
	}
	if gs.LastWaveReached != 1 {
		t.Errorf("Expected wave 1 recorded, got %d", gs.LastWaveReached)
	}
}
