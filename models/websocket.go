package models

import (
	"github.com/gorilla/websocket"
)

// Websocketクライアントを定義
type Client struct {
	Conn     *websocket.Conn
	UserID   uint // JWTから抽出したユーザーID
	NickName string
}
