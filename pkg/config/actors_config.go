package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlayerConfig 玩家角色配置
// 枚举了玩家实体识别的全部字段及其默认值
type PlayerConfig struct {
	Speed             float64  `yaml:"speed"`             // 移动速度（像素/秒），默认 160
	Drag              float64  `yaml:"drag"`              // 无输入时速度衰减系数（每秒），默认 0.0001
	StopEpsilon       float64  `yaml:"stopEpsilon"`       // 速度吸附到零的阈值（像素/秒），默认 5
	MaxHealth         int      `yaml:"maxHealth"`         // 最大生命值，默认 5
	Invincibility     float64  `yaml:"invincibility"`     // 受击后无敌窗口（秒），默认 1.0
	KnockbackDuration float64  `yaml:"knockbackDuration"` // 击退输入抑制窗口（秒），默认 0.3
	Width             float64  `yaml:"width"`             // 碰撞盒宽（像素），默认 24
	Height            float64  `yaml:"height"`            // 碰撞盒高（像素），默认 28
	Texture           string   `yaml:"texture"`           // 外观标识，必填
	Animations        []string `yaml:"animations"`        // 动画键列表，必须包含 idle 和 run
}

// EnemyConfig 敌人角色配置
// 枚举了敌人实体识别的全部字段及其默认值
type EnemyConfig struct {
	Speed        float64  `yaml:"speed"`        // 追击速度（像素/秒），默认 90
	Drag         float64  `yaml:"drag"`         // 无意图时速度衰减系数（每秒），默认 0.0001
	StopEpsilon  float64  `yaml:"stopEpsilon"`  // 速度吸附到零的阈值（像素/秒），默认 5
	DeadZone     float64  `yaml:"deadZone"`     // 水平追击死区（像素），默认 5
	HitThreshold int      `yaml:"hitThreshold"` // 致死命中次数，默认 3
	HitCooldown  float64  `yaml:"hitCooldown"`  // 受击冷却窗口（秒），默认 0.5
	StunDuration float64  `yaml:"stunDuration"` // 受击眩晕时长（秒），默认 0.5
	FadeOut      float64  `yaml:"fadeOut"`      // 死亡淡出时长（秒），默认 0.5
	Width        float64  `yaml:"width"`        // 碰撞盒宽（像素），默认 24
	Height       float64  `yaml:"height"`       // 碰撞盒高（像素），默认 28
	Texture      string   `yaml:"texture"`      // 外观标识，必填
	Animations   []string `yaml:"animations"`   // 动画键列表，必须包含 idle、run 和 die
}

// ActorsConfig 角色配置集合（data/actors.yaml）
type ActorsConfig struct {
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
}

// DefaultActorsConfig 返回内置默认角色配置
// 测试和降级模式使用；加载 YAML 时缺失字段也回落到这些值
func DefaultActorsConfig() *ActorsConfig {
	return &ActorsConfig{
		Player: PlayerConfig{
			Speed:             160,
			Drag:              0.0001,
			StopEpsilon:       5,
			MaxHealth:         5,
			Invincibility:     1.0,
			KnockbackDuration: 0.3,
			Width:             24,
			Height:            28,
			Texture:           "hero",
			Animations:        []string{"idle", "run"},
		},
		Enemy: EnemyConfig{
			Speed:        90,
			Drag:         0.0001,
			StopEpsilon:  5,
			DeadZone:     5,
			HitThreshold: 3,
			HitCooldown:  0.5,
			StunDuration: 0.5,
			FadeOut:      0.5,
			Width:        24,
			Height:       28,
			Texture:      "slime",
			Animations:   []string{"idle", "run", "die"},
		},
	}
}

// LoadActorsConfig 从YAML文件加载角色配置
// 参数：
//
//	filepath - 配置文件路径
//
// 返回：
//
//	*ActorsConfig - 解析后的配置对象
//	error - 文件读取、解析或校验失败时返回错误
func LoadActorsConfig(filepath string) (*ActorsConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read actors config file %s: %w", filepath, err)
	}

	var cfg ActorsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse actors config YAML from %s: %w", filepath, err)
	}

	applyActorsDefaults(&cfg)

	if err := ValidateActorsConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid actors config in %s: %w", filepath, err)
	}

	return &cfg, nil
}

// applyActorsDefaults 为缺失的可选字段设置默认值
// 纹理和动画键是必填项，不在这里补默认值（缺失属于内容错误，必须失败）
func applyActorsDefaults(cfg *ActorsConfig) {
	def := DefaultActorsConfig()

	if cfg.Player.Speed <= 0 {
		cfg.Player.Speed = def.Player.Speed
	}
	if cfg.Player.Drag <= 0 {
		cfg.Player.Drag = def.Player.Drag
	}
	if cfg.Player.StopEpsilon <= 0 {
		cfg.Player.StopEpsilon = def.Player.StopEpsilon
	}
	if cfg.Player.MaxHealth <= 0 {
		cfg.Player.MaxHealth = def.Player.MaxHealth
	}
	if cfg.Player.Invincibility <= 0 {
		cfg.Player.Invincibility = def.Player.Invincibility
	}
	if cfg.Player.KnockbackDuration <= 0 {
		cfg.Player.KnockbackDuration = def.Player.KnockbackDuration
	}
	if cfg.Player.Width <= 0 {
		cfg.Player.Width = def.Player.Width
	}
	if cfg.Player.Height <= 0 {
		cfg.Player.Height = def.Player.Height
	}

	if cfg.Enemy.Speed <= 0 {
		cfg.Enemy.Speed = def.Enemy.Speed
	}
	if cfg.Enemy.Drag <= 0 {
		cfg.Enemy.Drag = def.Enemy.Drag
	}
	if cfg.Enemy.StopEpsilon <= 0 {
		cfg.Enemy.StopEpsilon = def.Enemy.StopEpsilon
	}
	if cfg.Enemy.DeadZone <= 0 {
		cfg.Enemy.DeadZone = def.Enemy.DeadZone
	}
	if cfg.Enemy.HitThreshold <= 0 {
		cfg.Enemy.HitThreshold = def.Enemy.HitThreshold
	}
	if cfg.Enemy.HitCooldown <= 0 {
		cfg.Enemy.HitCooldown = def.Enemy.HitCooldown
	}
	if cfg.Enemy.StunDuration <= 0 {
		cfg.Enemy.StunDuration = def.Enemy.StunDuration
	}
	if cfg.Enemy.FadeOut <= 0 {
		cfg.Enemy.FadeOut = def.Enemy.FadeOut
	}
	if cfg.Enemy.Width <= 0 {
		cfg.Enemy.Width = def.Enemy.Width
	}
	if cfg.Enemy.Height <= 0 {
		cfg.Enemy.Height = def.Enemy.Height
	}
}

// ValidateActorsConfig 校验角色配置的必填字段
//
// 纹理标识和动画键集合缺失属于内容配置错误，立即失败（fail fast），
// 而不是留到运行时变成难以定位的异常
func ValidateActorsConfig(cfg *ActorsConfig) error {
	if cfg.Player.Texture == "" {
		return fmt.Errorf("player texture is required")
	}
	if err := requireAnimations("player", cfg.Player.Animations, "idle", "run"); err != nil {
		return err
	}

	if cfg.Enemy.Texture == "" {
		return fmt.Errorf("enemy texture is required")
	}
	if err := requireAnimations("enemy", cfg.Enemy.Animations, "idle", "run", "die"); err != nil {
		return err
	}

	return nil
}

// requireAnimations 检查动画键列表是否包含全部必需项
func requireAnimations(actor string, keys []string, required ...string) error {
	if len(keys) == 0 {
		return fmt.Errorf("%s animations are required", actor)
	}

	have := make(map[string]bool, len(keys))
	for _, k := range keys {
		have[k] = true
	}

	for _, r := range required {
		if !have[r] {
			return fmt.Errorf("%s animations missing required key %q", actor, r)
		}
	}
	return nil
}
