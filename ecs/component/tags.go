package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type BossTag struct{}

var BossTagComponent = NewComponent[BossTag]()

// FinalBossTag marks the boss whose defeat ends the game.
type FinalBossTag struct{}

var FinalBossTagComponent = NewComponent[FinalBossTag]()

type FloorTag struct{}

var FloorTagComponent = NewComponent[FloorTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

type CorpseTag struct{}

var CorpseTagComponent = NewComponent[CorpseTag]()
