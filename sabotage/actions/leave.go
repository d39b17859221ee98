package actions

import (
	"saboserver/models"
	"saboserver/sabotage/broadcast"
	"saboserver/sabotage/game"

	"go.uber.org/zap"
)

// 明示的な退出と切断は同じ扱い。相手に通知した上でセッションを無条件に破棄する
func handleLeave(client *models.Client, registry *game.Registry, logger *zap.Logger) {
	gameID, session, ok := registry.FindByParticipant(client.UserID)
	if !ok {
		return // 参加中のゲームがなければ何もしない
	}

	broadcast.NotifyOpponentLeft(session, client.UserID, logger)
	registry.Remove(gameID)
	logger.Info("Session removed after leave",
		zap.String("GameID", gameID),
		zap.Uint("UserID", client.UserID),
	)
}
