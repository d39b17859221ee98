package actions

import (
	"errors"

	"saboserver/models"
	"saboserver/sabotage/broadcast"
	"saboserver/sabotage/game"

	"go.uber.org/zap"
)

// サボタージュマスの選択を処理する
func handleSelectSabotage(client *models.Client, msg map[string]interface{}, registry *game.Registry, logger *zap.Logger) {
	session, ok := resolveSession(client, msg, registry)
	if !ok {
		return
	}

	// msgからセルの位置を取得
	rowFloat, okRow := msg["row"].(float64)
	colFloat, okCol := msg["col"].(float64)
	if !okRow || !okCol {
		sendErrorMessage(client, "Invalid cell coordinates")
		logger.Error("Invalid cell coordinates - type assertion failed", zap.Any("row", msg["row"]), zap.Any("col", msg["col"]))
		return
	}
	row := int(rowFloat)
	col := int(colFloat)

	if err := session.SelectSabotage(client.UserID, row, col); err != nil {
		// 参加者を特定できない場合は黙って無視する
		if errors.Is(err, game.ErrUnknownParticipant) {
			logger.Info("Select from unknown participant ignored", zap.Uint("UserID", client.UserID))
			return
		}
		logger.Info("Select rejected",
			zap.Uint("UserID", client.UserID),
			zap.Int("row", row),
			zap.Int("col", col),
			zap.Error(err),
		)
		sendErrorMessage(client, err.Error())
		return
	}

	logger.Info("Sabotage spot selected",
		zap.String("GameID", session.ID),
		zap.Uint("UserID", client.UserID),
		zap.Int("row", row),
		zap.Int("col", col),
	)
	broadcast.BroadcastGameState(session, logger)
}
