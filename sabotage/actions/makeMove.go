package actions

import (
	"errors"

	"saboserver/models"
	"saboserver/sabotage/broadcast"
	"saboserver/sabotage/game"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 駒の投下を処理する。繰り延べ再選択を抱えた手番の転換もここを通る
func handleMakeMove(client *models.Client, msg map[string]interface{}, registry *game.Registry, db *gorm.DB, logger *zap.Logger) {
	session, ok := resolveSession(client, msg, registry)
	if !ok {
		return
	}

	colFloat, okCol := msg["col"].(float64)
	if !okCol {
		sendErrorMessage(client, "Invalid column")
		logger.Error("Invalid column - type assertion failed", zap.Any("col", msg["col"]))
		return
	}
	col := int(colFloat)

	if err := session.MakeMove(client.UserID, col); err != nil {
		if errors.Is(err, game.ErrUnknownParticipant) {
			logger.Info("Move from unknown participant ignored", zap.Uint("UserID", client.UserID))
			return
		}
		logger.Info("Move rejected",
			zap.Uint("UserID", client.UserID),
			zap.Int("col", col),
			zap.Error(err),
		)
		sendErrorMessage(client, err.Error())
		return
	}

	logger.Info("Move applied",
		zap.String("GameID", session.ID),
		zap.Uint("UserID", client.UserID),
		zap.Int("col", col),
		zap.String("phase", string(session.Phase)),
	)

	// 決着したら対戦記録を残す
	if session.Phase == game.PhaseGameOver {
		saveMatchRecord(session, db, logger)
	}

	broadcast.BroadcastGameState(session, logger)
}

// 決着したゲームの記録をデータベースに保存する
func saveMatchRecord(session *game.Session, db *gorm.DB, logger *zap.Logger) {
	red := session.PlayerByColor(game.Red)
	yellow := session.PlayerByColor(game.Yellow)
	if red == nil || yellow == nil {
		return
	}

	record := models.MatchRecord{
		GameID:       session.ID,
		RedUserID:    red.ID,
		YellowUserID: yellow.ID,
		Winner:       string(session.Winner),
		IsDraw:       session.IsDraw,
		MoveCount:    session.MoveCount,
	}
	if err := db.Create(&record).Error; err != nil {
		logger.Error("Failed to save match record", zap.String("GameID", session.ID), zap.Error(err))
	} else {
		logger.Info("Match record saved", zap.String("GameID", session.ID), zap.String("winner", record.Winner))
	}
}
