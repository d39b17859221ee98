package models

import (
	"gorm.io/gorm"
)

// MatchRecord は決着したゲームの記録。進行中のセッション状態は永続化しない
type MatchRecord struct {
	gorm.Model
	GameID       string `gorm:"index;not null"` // セッションのUUID
	RedUserID    uint   `gorm:"not null"`
	YellowUserID uint   `gorm:"not null"`
	Winner       string // "red"、"yellow"、引き分けの場合は空文字
	IsDraw       bool
	MoveCount    int
}
