package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CombatConfig 战斗结算配置（data/combat.yaml）
// 枚举了近战命中结算识别的全部字段及其默认值
type CombatConfig struct {
	AttackDuration    float64 `yaml:"attackDuration"`    // 单次攻击时长（秒），默认 0.2
	WeaponOffset      float64 `yaml:"weaponOffset"`      // 武器视觉偏移（像素），默认 20
	HitboxOffsetScale float64 `yaml:"hitboxOffsetScale"` // 命中盒偏移倍数，默认 1.5
	HitboxWidth       float64 `yaml:"hitboxWidth"`       // 命中盒宽（像素），默认 28
	HitboxHeight      float64 `yaml:"hitboxHeight"`      // 命中盒高（像素），默认 28
	SwingArcDeg       float64 `yaml:"swingArcDeg"`       // 挥剑半弧（度），绕基准角 ±该值，默认 60
	SwordKnockback    float64 `yaml:"swordKnockback"`    // 剑击击退速度大小（像素/秒），默认 200
	ContactKnockback  float64 `yaml:"contactKnockback"`  // 接触击退速度大小（像素/秒），默认 200
	ContactDamage     int     `yaml:"contactDamage"`     // 敌人接触玩家造成的伤害，默认 1
	SwordDamage       int     `yaml:"swordDamage"`       // 剑击名义伤害值（不参与击杀判定），默认 1
	FlashDuration     float64 `yaml:"flashDuration"`     // 受击闪白时长（秒），默认 0.15
}

// DefaultCombatConfig 返回内置默认战斗配置
func DefaultCombatConfig() *CombatConfig {
	return &CombatConfig{
		AttackDuration:    0.2,
		WeaponOffset:      20,
		HitboxOffsetScale: 1.5,
		HitboxWidth:       28,
		HitboxHeight:      28,
		SwingArcDeg:       60,
		SwordKnockback:    200,
		ContactKnockback:  200,
		ContactDamage:     1,
		SwordDamage:       1,
		FlashDuration:     0.15,
	}
}

// LoadCombatConfig 从YAML文件加载战斗配置
func LoadCombatConfig(filepath string) (*CombatConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read combat config file %s: %w", filepath, err)
	}

	var cfg CombatConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse combat config YAML from %s: %w", filepath, err)
	}

	applyCombatDefaults(&cfg)

	if err := validateCombatConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid combat config in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// applyCombatDefaults 为缺失字段设置默认值
func applyCombatDefaults(cfg *CombatConfig) {
	def := DefaultCombatConfig()

	if cfg.AttackDuration <= 0 {
		cfg.AttackDuration = def.AttackDuration
	}
	if cfg.WeaponOffset <= 0 {
		cfg.WeaponOffset = def.WeaponOffset
	}
	if cfg.HitboxOffsetScale <= 0 {
		cfg.HitboxOffsetScale = def.HitboxOffsetScale
	}
	if cfg.HitboxWidth <= 0 {
		cfg.HitboxWidth = def.HitboxWidth
	}
	if cfg.HitboxHeight <= 0 {
		cfg.HitboxHeight = def.HitboxHeight
	}
	if cfg.SwingArcDeg <= 0 {
		cfg.SwingArcDeg = def.SwingArcDeg
	}
	if cfg.SwordKnockback <= 0 {
		cfg.SwordKnockback = def.SwordKnockback
	}
	if cfg.ContactKnockback <= 0 {
		cfg.ContactKnockback = def.ContactKnockback
	}
	if cfg.ContactDamage <= 0 {
		cfg.ContactDamage = def.ContactDamage
	}
	if cfg.SwordDamage <= 0 {
		cfg.SwordDamage = def.SwordDamage
	}
	if cfg.FlashDuration <= 0 {
		cfg.FlashDuration = def.FlashDuration
	}
}

// validateCombatConfig 校验战斗配置的合理范围
func validateCombatConfig(cfg *CombatConfig) error {
	if cfg.SwingArcDeg >= 180 {
		return fmt.Errorf("swingArcDeg must be < 180, got %.1f", cfg.SwingArcDeg)
	}
	return nil
}
