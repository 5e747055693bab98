package config

import "testing"

// TestDefaultEncounterConfig 测试内置默认遭遇战配置
func TestDefaultEncounterConfig(t *testing.T) {
	cfg := DefaultEncounterConfig()

	if cfg.MaxWaves != 5 {
		t.Errorf("Expected maxWaves = 5, got %d", cfg.MaxWaves)
	}
	if cfg.SpawnAttempts != 50 {
		t.Errorf("Expected spawnAttempts = 50, got %d", cfg.SpawnAttempts)
	}
	if cfg.MinPlayerDistance != 100 {
		t.Errorf("Expected minPlayerDistance = 100, got %f", cfg.MinPlayerDistance)
	}
	if cfg.FallbackRadius != 150 {
		t.Errorf("Expected fallbackRadius = 150, got %f", cfg.FallbackRadius)
	}
	if cfg.BreakableMaxHits != 2 {
		t.Errorf("Expected breakableMaxHits = 2, got %d", cfg.BreakableMaxHits)
	}

	if err := validateEncounterConfig(cfg); err != nil {
		t.Errorf("Default encounter config should be valid: %v", err)
	}
}

// TestLoadEncounterConfig_InvalidTileChar 测试非法场地字符立即失败
func TestLoadEncounterConfig_InvalidTileChar(t *testing.T) {
	path := writeTempConfig(t, "encounter.yaml", `
rows:
  - "####"
  - "#.X#"
  - "####"
`)

	if _, err := LoadEncounterConfig(path); err == nil {
		t.Error("Expected error for invalid tile char 'X', got nil")
	}
}

// TestLoadEncounterConfig_RaggedRows 测试行长度不一致立即失败
func TestLoadEncounterConfig_RaggedRows(t *testing.T) {
	path := writeTempConfig(t, "encounter.yaml", `
rows:
  - "####"
  - "#.#"
  - "####"
`)

	if _, err := LoadEncounterConfig(path); err == nil {
		t.Error("Expected error for ragged rows, got nil")
	}
}

// TestLoadEncounterConfig_Defaults 测试缺失字段回落到默认值
func TestLoadEncounterConfig_Defaults(t *testing.T) {
	path := writeTempConfig(t, "encounter.yaml", `
maxWaves: 3
rows:
  - "###"
  - "#.#"
  - "###"
`)

	cfg, err := LoadEncounterConfig(path)
	if err != nil {
		t.Fatalf("LoadEncounterConfig failed: %v", err)
	}
	if cfg.MaxWaves != 3 {
		t.Errorf("Expected maxWaves = 3, got %d", cfg.MaxWaves)
	}
	if cfg.InterWaveDelay != 1.0 {
		t.Errorf("Expected default interWaveDelay = 1.0, got %f", cfg.InterWaveDelay)
	}
	if cfg.TileSize != 32 {
		t.Errorf("Expected default tileSize = 32, got %f", cfg.TileSize)
	}
}
