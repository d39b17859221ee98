package actions

import (
	"encoding/json"
	"time"

	"saboserver/models"
	"saboserver/sabotage/game"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// チャットメッセージを処理する関数。同じゲームの両プレイヤーへ中継する
func handleChatMessage(client *models.Client, msg map[string]interface{}, registry *game.Registry, logger *zap.Logger) {
	chatMessage, ok := msg["message"].(string)
	if !ok || chatMessage == "" {
		return
	}

	_, session, found := registry.FindByParticipant(client.UserID)
	if !found {
		sendErrorMessage(client, "Game not found")
		return
	}

	// 現在のタイムスタンプを取得
	timestamp := time.Now().Format(time.RFC3339)

	logger.Info("Received chat message",
		zap.String("message", chatMessage),
		zap.Uint("from", client.UserID),
		zap.String("timestamp", timestamp),
	)

	message := map[string]interface{}{
		"type":      "chatMessage",
		"message":   chatMessage,
		"from":      client.UserID, // 送信者の識別子
		"timestamp": timestamp,     // メッセージのタイムスタンプ
	}
	messageJSON, _ := json.Marshal(message)

	for _, player := range session.Players {
		if player == nil || player.Conn == nil {
			continue
		}
		if err := player.Conn.WriteMessage(websocket.TextMessage, messageJSON); err != nil {
			logger.Error("Failed to send chat message",
				zap.Uint("to", player.ID),
				zap.Error(err),
			)
		}
	}
}
