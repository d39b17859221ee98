package actions

import (
	"encoding/json"
	"sync"

	"saboserver/models"
	"saboserver/sabotage/game"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 全クライアントのアクションを直列化するためのロック。
// 1つのアクションが状態変更とブロードキャストを終えるまで次のアクションは処理されない
var mu sync.Mutex

// Helper function to send error message to the client via WebSocket
func sendErrorMessage(client *models.Client, errorMessage string) {
	errorResponse := map[string]string{"type": "gameError", "message": errorMessage}
	errorJSON, _ := json.Marshal(errorResponse)
	client.Conn.WriteMessage(websocket.TextMessage, errorJSON) // Ignoring error for simplicity
}

// クライアント個人宛のメッセージ送信ヘルパー
func sendMessage(client *models.Client, payload map[string]interface{}, logger *zap.Logger) {
	messageJSON, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal message", zap.Error(err))
		return
	}
	if err := client.Conn.WriteMessage(websocket.TextMessage, messageJSON); err != nil {
		logger.Error("Failed to send message", zap.Uint("to", client.UserID), zap.Error(err))
	}
}

// メッセージからゲームIDを取り出してセッションを解決するヘルパー
func resolveSession(client *models.Client, msg map[string]interface{}, registry *game.Registry) (*game.Session, bool) {
	gameID, ok := msg["gameId"].(string)
	if !ok || gameID == "" {
		sendErrorMessage(client, "Game ID is required")
		return nil, false
	}
	session, ok := registry.Get(gameID)
	if !ok {
		sendErrorMessage(client, "Game not found")
		return nil, false
	}
	return session, true
}

// HandleClient はクライアントごとにメッセージ読み取りするゴルーチン。
// 読み取りループの終了（切断）は退出と同じ扱いでセッションを破棄する
func HandleClient(client *models.Client, clients map[*models.Client]bool, registry *game.Registry, db *gorm.DB, logger *zap.Logger) {
	mu.Lock()
	clients[client] = true // クライアントリストに新規クライアントを追加
	mu.Unlock()

	defer func() {
		client.Conn.Close() // クライアントの接続を閉じる
		mu.Lock()
		delete(clients, client) // クライアントリストからこのクライアントを削除
		handleLeave(client, registry, logger)
		mu.Unlock()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket error", zap.Error(err))
			}
			break
		}

		// 受信したメッセージをJSON形式でデコード
		var msg map[string]interface{}
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Error("Error decoding message", zap.Error(err))
			continue
		}

		msgType, _ := msg["type"].(string)

		// メッセージタイプに基づいて適切なアクションを実行
		mu.Lock()
		switch msgType {
		case "createGame":
			handleCreateGame(client, registry, logger)
		case "joinGame":
			handleJoinGame(client, msg, registry, logger)
		case "selectSabotage":
			handleSelectSabotage(client, msg, registry, logger)
		case "makeMove":
			handleMakeMove(client, msg, registry, db, logger)
		case "requestRematch":
			handleRequestRematch(client, msg, registry, logger)
		case "leaveGame":
			handleLeave(client, registry, logger)
		case "chatMessage":
			handleChatMessage(client, msg, registry, logger)
		default:
			logger.Info("Received unknown message type", zap.Any("message", msg))
		}
		mu.Unlock()
	}
}
