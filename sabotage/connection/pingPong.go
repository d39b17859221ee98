package connection

import (
	"time"

	"saboserver/models"

	"go.uber.org/zap"

	"github.com/gorilla/websocket"
)

// MaintainWebSocketConnection はクライアントのWebSocket接続を維持し、Ping/Pongメッセージで接続をチェックします。
// Pingの送信に失敗したら接続を閉じるだけにとどめる。
// クライアントリストの削除とセッションの後始末は読み取りループの終了処理が行う
func MaintainWebSocketConnection(c *models.Client, logger *zap.Logger) {
	defer func() {
		c.Conn.Close() // ゴルーチンが終了する時にWebSocket接続を閉じる
		logger.Info("Client connection closed", zap.Uint("UserID", c.UserID))
	}()

	// Pongハンドラの設定: Pongメッセージを受信したら読み取りデッドラインを更新
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second)) // 60秒の読み取りデッドライン
		return nil
	})
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	// Pingの送信間隔を設定
	pingPeriod := 10 * time.Second // 10秒ごとにPingを送信
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			logger.Error("Error sending ping", zap.Error(err))
			return // エラーが発生した場合はゴルーチンを終了
		}
	}
}
