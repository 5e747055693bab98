package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestProgressStore_DegradedMode 测试 nil 管理器的降级模式
// 无持久化后端时进度只存内存，不报错
func TestProgressStore_DegradedMode(t *testing.T) {
	ps := NewProgressStore(nil)

	if ps.BestWave() != 0 {
		t.Errorf("Expected bestWave = 0, got %d", ps.BestWave())
	}

	ps.RecordWave(3, false)
	if ps.BestWave() != 3 {
		t.Errorf("Expected bestWave = 3, got %d", ps.BestWave())
	}

	// 较低的波次不回退最高纪录
	ps.RecordWave(2, false)
	if ps.BestWave() != 3 {
		t.Errorf("Expected bestWave to stay 3, got %d", ps.BestWave())
	}

	ps.RecordWave(5, true)
	if ps.Victories() != 1 {
		t.Errorf("Expected 1 victory, got %d", ps.Victories())
	}

	if err := ps.Save(); err != nil {
		t.Errorf("Save in degraded mode should not error: %v", err)
	}
}

// TestProgressStore_Persistence 测试进度经 gdata 往返保存
func TestProgressStore_Persistence(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	manager, err := gdata.Open(gdata.Config{
		AppName: "test_arena_progress",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	ps := NewProgressStore(manager)
	ps.RecordWave(4, true)

	// 新实例从同一后端加载
	ps2 := NewProgressStore(manager)
	if ps2.BestWave() != 4 {
		t.Errorf("Expected loaded bestWave = 4, got %d", ps2.BestWave())
	}
	if ps2.Victories() != 1 {
		t.Errorf("Expected loaded victories = 1, got %d", ps2.Victories())
	}
}

// TestGameState_RecordEncounterResult 测试结果记录联动进度存储
func TestGameState_RecordEncounterResult(t *testing.T) {
	ResetGameState()
	gs := GetGameState()
	gs.SetProgressStore(NewProgressStore(nil))

	gs.RecordEncounterResult(ResultVictory, 5)

	if gs.LastResult != ResultVictory {
		t.Errorf("Expected LastResult = ResultVictory, got %v", gs.LastResult)
	}
	if gs.LastWaveReached != 5 {
		t.Errorf("Expected LastWaveReached = 5, got %d", gs.LastWaveReached)
	}
	if gs.GetProgressStore().BestWave() != 5 {
		t.Errorf("Expected progress bestWave = 5, got %d", gs.GetProgressStore().BestWave())
	}
}
