// internal/event/types.go
package event

const (
	TurnStarted   EventType = "TurnStarted"   // registry update begins
	EnemyAttacked EventType = "EnemyAttacked" // enemy ran Attack
	EnemyMoved    EventType = "EnemyMoved"    // enemy ran Move
	EnemyWaited   EventType = "EnemyWaited"   // enemy ran Wait
	EnemyReported EventType = "EnemyReported" // enemy ran ReportState
	TurnEnded     EventType = "TurnEnded"     // registry update finished
)

// EnemyActions lists the per-enemy events in the order a turn emits them.
var EnemyActions = []EventType{EnemyAttacked, EnemyMoved, EnemyWaited, EnemyReported}
