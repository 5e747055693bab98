package game

// EncounterResult 遭遇战结果
type EncounterResult int

const (
	// ResultNone 尚无结果（进行中或未开始）
	ResultNone EncounterResult = iota
	// ResultVictory 胜利：守过全部波次
	ResultVictory
	// ResultDefeat 失败：玩家生命归零
	ResultDefeat
)

// GameState 存储跨场景的全局游戏状态
// 这是一个单例，用于管理场景之间传递的会话数据
type GameState struct {
	// LastResult 最近一场遭遇战的结果
	LastResult EncounterResult
	// LastWaveReached 最近一场到达的波次
	LastWaveReached int

	progress *ProgressStore
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// ResetGameState 重置全局单例（仅测试使用）
func ResetGameState() {
	globalGameState = nil
}

// SetProgressStore 注入进度存储
func (gs *GameState) SetProgressStore(ps *ProgressStore) {
	gs.progress = ps
}

// GetProgressStore 返回进度存储，可能为 nil（未注入时）
func (gs *GameState) GetProgressStore() *ProgressStore {
	return gs.progress
}

// RecordEncounterResult 记录一场遭遇战的结果并更新持久化进度
func (gs *GameState) RecordEncounterResult(result EncounterResult, waveReached int) {
	gs.LastResult = result
	gs.LastWaveReached = waveReached

	if gs.progress != nil {
		gs.progress.RecordWave(waveReached, result == ResultVictory)
	}
}
