package game

import (
	"github.com/gorilla/websocket"
)

// ゲームの進行フェーズ
type Phase string

const (
	PhaseWaitingForOpponent   Phase = "waiting_for_opponent"
	PhaseInitSelectRed        Phase = "init_select_red"
	PhaseInitSelectYellow     Phase = "init_select_yellow"
	PhasePlaying              Phase = "playing"
	PhaseSabotageSelectRed    Phase = "sabotage_select_red"
	PhaseSabotageSelectYellow Phase = "sabotage_select_yellow"
	PhaseGameOver             Phase = "game_over"
)

// Spot はサボタージュマスの座標
type Spot struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlayerはUserに紐づく
type Player struct {
	ID       uint
	Color    Color
	NickName string
	Conn     *websocket.Conn
}

// Session は1対戦分のゲームインスタンス。
// サーバーが唯一の正であり、クライアントは毎回の全量ブロードキャストで状態を再構築する
type Session struct {
	ID                   string
	Board                Board
	Players              [2]*Player // [0]は作成者。色はリマッチごとに入れ替わる
	CurrentPlayer        Color      // 次に行動すべき色。対戦相手待ちの間はNone
	Phase                Phase
	Winner               Color // 勝者の色。未決着ならNone
	IsDraw               bool
	RedSabotage          *Spot
	YellowSabotage       *Spot
	OverlapTrigger       Color          // 両者のサボタージュマスが重なった着地を起こした色
	SabotageTriggerCause Color          // 現在保留中の再選択を引き起こした色。再選択後の手番決定に使う
	RematchRequested     map[Color]bool // キー: 色, 値: 再戦リクエストの有無
	PendingReselect      map[Color]bool // キー: 色, 値: 次の自分の手番まで繰り延べた再選択の有無
	MoveCount            int
}

// NewSession はルーム作成者をRedとして新しいセッションを生成します
func NewSession(id string, creator *Player) *Session {
	creator.Color = Red
	return &Session{
		ID:               id,
		Players:          [2]*Player{creator, nil},
		Phase:            PhaseWaitingForOpponent,
		CurrentPlayer:    None,
		RematchRequested: make(map[Color]bool),
		PendingReselect:  make(map[Color]bool),
	}
}

// Join は2人目のプレイヤーをYellowとして参加させ、初期サボタージュ選択へ移行します
func (s *Session) Join(p *Player) error {
	if s.Players[0] != nil && s.Players[0].ID == p.ID {
		return ErrSelfJoin
	}
	if s.Players[1] != nil {
		return ErrFull
	}
	p.Color = Yellow
	s.Players[1] = p
	s.Phase = PhaseInitSelectRed
	s.CurrentPlayer = Red
	return nil
}

// PlayerColor は参加者IDから色を解決します
func (s *Session) PlayerColor(userID uint) (Color, error) {
	for _, player := range s.Players {
		if player != nil && player.ID == userID {
			return player.Color, nil
		}
	}
	return None, ErrUnknownParticipant
}

// PlayerByColor は指定色のプレイヤーを返します。未参加ならnil
func (s *Session) PlayerByColor(c Color) *Player {
	for _, player := range s.Players {
		if player != nil && player.Color == c {
			return player
		}
	}
	return nil
}

// HasPlayer は参加者IDがこのセッションに属しているかを返します
func (s *Session) HasPlayer(userID uint) bool {
	_, err := s.PlayerColor(userID)
	return err == nil
}

func (s *Session) spotOf(c Color) *Spot {
	if c == Red {
		return s.RedSabotage
	}
	return s.YellowSabotage
}

func (s *Session) setSpot(c Color, spot *Spot) {
	if c == Red {
		s.RedSabotage = spot
	} else {
		s.YellowSabotage = spot
	}
}

// 指定色の明示的なサボタージュ選択フェーズ
func selectPhaseFor(c Color) Phase {
	if c == Red {
		return PhaseSabotageSelectRed
	}
	return PhaseSabotageSelectYellow
}

// 指定色の初期選択フェーズ
func initPhaseFor(c Color) Phase {
	if c == Red {
		return PhaseInitSelectRed
	}
	return PhaseInitSelectYellow
}

// SelectSabotage はサボタージュマスの選択を処理します。
// 自分の選択フェーズかつ自分の手番であるか、プレイ中で繰り延べ再選択を抱えている場合のみ合法
func (s *Session) SelectSabotage(userID uint, row, col int) error {
	color, err := s.PlayerColor(userID)
	if err != nil {
		return err
	}

	inOwnWindow := (s.Phase == initPhaseFor(color) || s.Phase == selectPhaseFor(color)) && s.CurrentPlayer == color
	inDeferred := s.Phase == PhasePlaying && s.CurrentPlayer == color && s.PendingReselect[color]
	if !inOwnWindow && !inDeferred {
		return ErrIllegalAction
	}
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return ErrInvalidCoordinates
	}

	s.setSpot(color, &Spot{Row: row, Col: col})
	// 新しいマスを選んだ時点で、繰り延べていた再選択は消化済み
	delete(s.PendingReselect, color)

	// 選択後のフェーズ遷移
	switch s.Phase {
	case PhaseInitSelectRed:
		s.Phase = PhaseInitSelectYellow
		s.CurrentPlayer = Yellow
	case PhaseInitSelectYellow:
		s.Phase = PhasePlaying
		s.CurrentPlayer = Red
	default:
		if s.OverlapTrigger == color {
			// 重複を起こした側が先に選び直し、次は相手の選択フェーズへ
			s.Phase = selectPhaseFor(color.Opponent())
			s.CurrentPlayer = color.Opponent()
			return nil
		}
		// 自分の罠を踏んだ側はテンポを失い、相手の罠を踏ませた場合は手番を保つ
		next := color
		if s.SabotageTriggerCause == color {
			next = color.Opponent()
		}
		s.Phase = PhasePlaying
		s.CurrentPlayer = next
		s.OverlapTrigger = None
		s.SabotageTriggerCause = None
	}
	return nil
}

// MakeMove は駒の投下を処理します。
// 繰り延べ再選択を抱えた手番の場合は、提出された列を破棄して再選択フェーズへ転換します
func (s *Session) MakeMove(userID uint, col int) error {
	color, err := s.PlayerColor(userID)
	if err != nil {
		return err
	}

	// 自分の罠を踏んだ代償は、次の自分の手番の冒頭で支払う
	if s.Phase == PhasePlaying && s.CurrentPlayer == color && s.PendingReselect[color] {
		s.setSpot(color, nil)
		delete(s.PendingReselect, color)
		s.Phase = selectPhaseFor(color)
		return nil
	}

	if s.Phase != PhasePlaying {
		return ErrWrongPhase
	}
	if s.CurrentPlayer != color {
		return ErrNotYourTurn
	}
	if col < 0 || col >= Cols {
		return ErrInvalidColumn
	}
	row := s.Board.DropRow(col)
	if row < 0 {
		return ErrColumnFull
	}

	opponent := color.Opponent()
	moverSpot := s.spotOf(color)
	opponentSpot := s.spotOf(opponent)
	hitOwn := moverSpot != nil && moverSpot.Row == row && moverSpot.Col == col
	hitOpponent := opponentSpot != nil && opponentSpot.Row == row && opponentSpot.Col == col

	// 相手のマスを単独で踏んだ場合のみ駒の色が相手に奪われる。重複時は自分の色のまま
	placed := color
	if hitOpponent && !hitOwn {
		placed = opponent
	}
	s.Board[row][col] = placed
	s.MoveCount++

	// 勝敗が決まればサボタージュ解決は行わない
	if CheckWin(s.Board, placed, row, col) {
		s.Winner = placed
		s.Phase = PhaseGameOver
		return nil
	}
	if CheckDraw(s.Board) {
		s.IsDraw = true
		s.Phase = PhaseGameOver
		return nil
	}

	switch {
	case hitOwn && hitOpponent:
		// 重複: 両者のマスを消し、踏んだ側から選び直す
		s.RedSabotage = nil
		s.YellowSabotage = nil
		delete(s.PendingReselect, Red)
		delete(s.PendingReselect, Yellow)
		s.OverlapTrigger = color
		s.Phase = selectPhaseFor(color)
	case hitOpponent:
		// 相手の罠: 駒を献上し、相手は即座に選び直す
		s.setSpot(opponent, nil)
		s.SabotageTriggerCause = color
		s.Phase = selectPhaseFor(opponent)
		s.CurrentPlayer = opponent
	case hitOwn:
		// 自分の罠: 再選択を次の自分の手番まで繰り延べる。古いマスは再選択まで残す
		s.PendingReselect[color] = true
		s.SabotageTriggerCause = color
		s.CurrentPlayer = opponent
	default:
		s.CurrentPlayer = opponent
		s.OverlapTrigger = None
		// 繰り延べ再選択が残っている間は、手番決定に使う原因記録を消さない
		if !s.PendingReselect[Red] && !s.PendingReselect[Yellow] {
			s.SabotageTriggerCause = None
		}
	}
	return nil
}

// RequestRematch は再戦リクエストを処理します。両者が揃ったらセッションをその場でリセット
func (s *Session) RequestRematch(userID uint) error {
	color, err := s.PlayerColor(userID)
	if err != nil {
		return err
	}
	if s.Phase != PhaseGameOver {
		return ErrWrongPhase
	}
	s.RematchRequested[color] = true
	if s.RematchRequested[Red] && s.RematchRequested[Yellow] {
		s.resetForRematch()
	}
	return nil
}

// リマッチ用のリセット。色を入れ替え、前回のYellowがRedとして先手になる
func (s *Session) resetForRematch() {
	s.Board.Reset()
	for _, player := range s.Players {
		if player != nil {
			player.Color = player.Color.Opponent()
		}
	}
	s.Winner = None
	s.IsDraw = false
	s.RedSabotage = nil
	s.YellowSabotage = nil
	s.OverlapTrigger = None
	s.SabotageTriggerCause = None
	s.RematchRequested = make(map[Color]bool)
	s.PendingReselect = make(map[Color]bool)
	s.MoveCount = 0
	s.Phase = PhaseInitSelectRed
	s.CurrentPlayer = Red
}
