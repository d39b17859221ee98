package game

import "errors"

// アクション拒否時のエラー。全てハンドラ内で処理し、相手側へは通知しない
var (
	ErrNotFound           = errors.New("game not found")
	ErrFull               = errors.New("game is full")
	ErrSelfJoin           = errors.New("cannot join your own game")
	ErrUnknownParticipant = errors.New("participant is not part of this game")
	ErrIllegalAction      = errors.New("action is not allowed now")
	ErrWrongPhase         = errors.New("wrong game phase")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrInvalidCoordinates = errors.New("invalid cell coordinates")
	ErrInvalidColumn      = errors.New("invalid column")
	ErrColumnFull         = errors.New("column is full")
)
