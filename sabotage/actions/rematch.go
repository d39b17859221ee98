package actions

import (
	"errors"

	"saboserver/models"
	"saboserver/sabotage/broadcast"
	"saboserver/sabotage/game"

	"go.uber.org/zap"
)

// 再戦リクエストを処理する。両者が揃えば色を入れ替えてセッションがリセットされる
func handleRequestRematch(client *models.Client, msg map[string]interface{}, registry *game.Registry, logger *zap.Logger) {
	session, ok := resolveSession(client, msg, registry)
	if !ok {
		return
	}

	if err := session.RequestRematch(client.UserID); err != nil {
		if errors.Is(err, game.ErrUnknownParticipant) {
			logger.Info("Rematch request from unknown participant ignored", zap.Uint("UserID", client.UserID))
			return
		}
		logger.Info("Rematch request rejected", zap.Uint("UserID", client.UserID), zap.Error(err))
		sendErrorMessage(client, err.Error())
		return
	}

	if session.Phase == game.PhaseInitSelectRed {
		logger.Info("Rematch accepted, session reset", zap.String("GameID", session.ID))
	} else {
		logger.Info("Rematch requested", zap.String("GameID", session.ID), zap.Uint("UserID", client.UserID))
	}
	broadcast.BroadcastGameState(session, logger)
}
