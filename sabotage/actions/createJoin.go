package actions

import (
	"errors"

	"saboserver/models"
	"saboserver/sabotage/broadcast"
	"saboserver/sabotage/game"

	"go.uber.org/zap"
)

// 新しいゲームを作成し、作成者をRedとして割り当てる
func handleCreateGame(client *models.Client, registry *game.Registry, logger *zap.Logger) {
	// 既に別のゲームに参加中なら作成させない。切断時の逆引きを一意に保つため
	if id, _, ok := registry.FindByParticipant(client.UserID); ok {
		logger.Info("Create rejected, already in a game", zap.Uint("UserID", client.UserID), zap.String("GameID", id))
		sendErrorMessage(client, "Already in a game")
		return
	}

	player := &game.Player{ID: client.UserID, NickName: client.NickName, Conn: client.Conn}
	gameID, session := registry.Create(player)
	logger.Info("Game created", zap.String("GameID", gameID), zap.Uint("UserID", client.UserID))

	sendMessage(client, map[string]interface{}{
		"type":   "gameCreated",
		"gameId": gameID,
		"color":  game.Red,
	}, logger)
	broadcast.BroadcastGameState(session, logger)
}

// 既存のゲームに2人目のプレイヤーとして参加する
func handleJoinGame(client *models.Client, msg map[string]interface{}, registry *game.Registry, logger *zap.Logger) {
	gameID, ok := msg["gameId"].(string)
	if !ok || gameID == "" {
		sendMessage(client, map[string]interface{}{
			"type":    "joinError",
			"message": "Game ID is required",
		}, logger)
		return
	}

	if id, _, ok := registry.FindByParticipant(client.UserID); ok && id != gameID {
		sendMessage(client, map[string]interface{}{
			"type":    "joinError",
			"message": "Already in a game",
		}, logger)
		return
	}

	player := &game.Player{ID: client.UserID, NickName: client.NickName, Conn: client.Conn}
	session, err := registry.Join(gameID, player)
	if err != nil {
		// 自分のゲームへの参加は黙って無視する。状態は変化しない
		if errors.Is(err, game.ErrSelfJoin) {
			logger.Info("Self join ignored", zap.String("GameID", gameID), zap.Uint("UserID", client.UserID))
			return
		}
		logger.Info("Join rejected", zap.String("GameID", gameID), zap.Uint("UserID", client.UserID), zap.Error(err))
		sendMessage(client, map[string]interface{}{
			"type":    "joinError",
			"message": err.Error(),
		}, logger)
		return
	}

	logger.Info("Second player joined the game", zap.String("GameID", gameID), zap.Uint("UserID", client.UserID))
	sendMessage(client, map[string]interface{}{
		"type":   "gameJoined",
		"gameId": gameID,
		"color":  game.Yellow,
	}, logger)
	broadcast.BroadcastGameState(session, logger)
}
