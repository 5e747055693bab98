package game

import (
	"math/rand"

	"github.com/gonewx/arena/pkg/ecs"
)

// EncounterState 一场遭遇战的聚合状态
//
// 架构说明：
//   - 每个战斗场景构造一次，场景结束时随场景销毁
//   - 波次系统和战斗系统通过显式引用访问，不存在隐式的
//     场景全局可变状态
//   - 存活敌人集合只由 WaveSystem 修改（注册/注销）
//
// 快照一致性：实体删除是延迟的（EntityManager 帧末统一清理），
// 因此同一帧内波次推进检查和命中结算看到一致的存活集合
type EncounterState struct {
	EM   *ecs.EntityManager
	Grid *TileGrid

	PlayerID ecs.EntityID

	// Wave 当前波次（1-indexed），0 表示尚未开始
	Wave int
	// MaxWaves 总波数，超过后进入胜利终态
	MaxWaves int

	// alive 当前存活的敌人集合（无序，按成员测试）
	alive map[ecs.EntityID]struct{}

	// WaveDelayRemaining 清场后到下一波开始的剩余延迟（秒）
	// 仅在 WaveDelayPending 为真时有意义
	WaveDelayRemaining float64
	WaveDelayPending   bool

	// Won 胜利终态：波次超过 MaxWaves，不再生成敌人
	Won bool
	// Defeat 失败终态：玩家生命归零
	Defeat bool

	// Rng 出生点搜索使用的随机源（可注入种子以便测试复现）
	Rng *rand.Rand
}

// NewEncounterState 创建遭遇战聚合状态
func NewEncounterState(em *ecs.EntityManager, grid *TileGrid, maxWaves int, seed int64) *EncounterState {
	return &EncounterState{
		EM:       em,
		Grid:     grid,
		MaxWaves: maxWaves,
		alive:    make(map[ecs.EntityID]struct{}),
		Rng:      rand.New(rand.NewSource(seed)),
	}
}

// RegisterEnemy 将敌人加入存活集合
func (es *EncounterState) RegisterEnemy(id ecs.EntityID) {
	es.alive[id] = struct{}{}
}

// DeregisterEnemy 将敌人移出存活集合
// 对不在集合中的ID调用是空操作
func (es *EncounterState) DeregisterEnemy(id ecs.EntityID) {
	delete(es.alive, id)
}

// IsEnemyAlive 检查敌人是否在存活集合中
func (es *EncounterState) IsEnemyAlive(id ecs.EntityID) bool {
	_, ok := es.alive[id]
	return ok
}

// AliveCount 返回当前存活敌人数量
func (es *EncounterState) AliveCount() int {
	return len(es.alive)
}

// AliveEnemies 返回存活敌人ID列表（快照副本，调用方可安全遍历）
func (es *EncounterState) AliveEnemies() []ecs.EntityID {
	result := make([]ecs.EntityID, 0, len(es.alive))
	for id := range es.alive {
		result = append(result, id)
	}
	return result
}

// Over 检查遭遇战是否已进入任一终态
func (es *EncounterState) Over() bool {
	return es.Won || es.Defeat
}
