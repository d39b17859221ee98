package broadcast

import (
	"encoding/json"

	"saboserver/sabotage/game"

	"go.uber.org/zap"

	"github.com/gorilla/websocket"
)

// BroadcastGameState はセッションの全量スナップショットを両プレイヤーへ送信します。
// クライアントは毎回のgameStateを差分ではなく完全な正規状態として扱う
func BroadcastGameState(session *game.Session, logger *zap.Logger) {
	playersInfo := make([]map[string]interface{}, 0, len(session.Players))
	colorToUser := make(map[string]uint)
	for _, player := range session.Players {
		if player == nil {
			continue
		}
		playersInfo = append(playersInfo, map[string]interface{}{
			"id":       player.ID,
			"nickName": player.NickName,
			"color":    player.Color,
		})
		colorToUser[string(player.Color)] = player.ID
	}

	gameState := map[string]interface{}{
		"type":                 "gameState",
		"gameId":               session.ID,
		"board":                session.Board,
		"playersInfo":          playersInfo,
		"colorToUser":          colorToUser,
		"currentPlayer":        session.CurrentPlayer,
		"phase":                session.Phase,
		"winner":               session.Winner,
		"isDraw":               session.IsDraw,
		"redSabotage":          session.RedSabotage,
		"yellowSabotage":       session.YellowSabotage,
		"overlapTrigger":       session.OverlapTrigger,
		"sabotageTriggerCause": session.SabotageTriggerCause,
		"rematchRequested": map[string]bool{
			string(game.Red):    session.RematchRequested[game.Red],
			string(game.Yellow): session.RematchRequested[game.Yellow],
		},
		"pendingReselect": map[string]bool{
			string(game.Red):    session.PendingReselect[game.Red],
			string(game.Yellow): session.PendingReselect[game.Yellow],
		},
	}
	messageJSON, _ := json.Marshal(gameState)

	for _, player := range session.Players {
		if player != nil && player.Conn != nil {
			if err := player.Conn.WriteMessage(websocket.TextMessage, messageJSON); err != nil {
				logger.Error("Failed to broadcast game state", zap.Error(err))
			}
		}
	}
}

// NotifyOpponentLeft は退出者以外の参加者へ対戦相手の離脱を通知します。
func NotifyOpponentLeft(session *game.Session, leaverID uint, logger *zap.Logger) {
	message := map[string]interface{}{
		"type": "opponentLeft",
	}
	messageJSON, err := json.Marshal(message)
	if err != nil {
		logger.Error("Failed to marshal opponent left message", zap.Error(err))
		return
	}

	for _, player := range session.Players {
		if player == nil || player.ID == leaverID || player.Conn == nil {
			continue
		}
		if err := player.Conn.WriteMessage(websocket.TextMessage, messageJSON); err != nil {
			logger.Error("Failed to send opponent left message",
				zap.Uint("to", player.ID),
				zap.Error(err),
			)
		} else {
			logger.Info("Opponent left notification sent", zap.Uint("to", player.ID))
		}
	}
}
