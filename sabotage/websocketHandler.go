package sabotage

import (
	"context"
	"net/http"

	"saboserver/models"
	"saboserver/sabotage/actions"
	"saboserver/sabotage/connection"
	sabodb "saboserver/sabotage/database"
	"saboserver/sabotage/game"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
)

// HandleConnections はWebSocket接続へのアップグレードを行う関数
func HandleConnections(ctx context.Context, w http.ResponseWriter, r *http.Request, db *gorm.DB, rdb *redis.Client, logger *zap.Logger, clients map[*models.Client]bool, registry *game.Registry, upgrader websocket.Upgrader) {
	// ユーザーコンテキストの取得
	clientContext, err := connection.FetchClientContext(ctx, r, db, logger)
	if err != nil {
		logger.Error("Error fetching client context", zap.Error(err))
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// WebSocket接続へのアップグレードと確立
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Error upgrading WebSocket", zap.Error(err))
		return
	}

	client := &models.Client{
		Conn:     conn,
		UserID:   clientContext.UserID,
		NickName: clientContext.NickName,
	}

	// セッションIDの検証と復元
	sessionID := r.Header.Get("SessionID") // クライアントが送るセッションID
	if sessionID != "" {
		if restored := sabodb.RestoreSession(ctx, rdb, sessionID, logger); restored != nil {
			// セッション情報に基づいてクライアント情報を復元し、旧セッションを破棄
			client.UserID = restored.UserID
			if restored.NickName != "" {
				client.NickName = restored.NickName
			}
			rdb.Del(ctx, "session:"+sessionID)
		}
	}

	logger.Info("New client connected", zap.Uint("UserID", client.UserID), zap.String("NickName", client.NickName))

	// WebSocketのCloseHandlerを設定
	client.Conn.SetCloseHandler(func(code int, text string) error {
		logger.Info("WebSocket closed", zap.Int("code", code), zap.String("reason", text))
		return nil
	})

	// クライアントごとにメッセージ読み取りゴルーチンを起動
	go actions.HandleClient(client, clients, registry, db, logger)

	// Ping/Pongを管理するゴルーチンを起動
	go connection.MaintainWebSocketConnection(client, logger)

	// セッションIDを発行してクライアントへ送り返す
	if err := sabodb.GenerateAndStoreSessionID(ctx, client, rdb, logger); err != nil {
		logger.Error("Failed to generate or store session ID", zap.Error(err))
	}
}
