package models

import (
	"gorm.io/gorm"
)

// User モデルの定義。匿名ユーザーにオートインクリメントのIDを払い出す
type User struct {
	gorm.Model
	NickName string `gorm:"not null"`
}
