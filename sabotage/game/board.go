package game

// 盤面のサイズは6行×7列で固定。行0が最上段で、駒は各列の下から積み上がる
const (
	Rows = 6
	Cols = 7
)

// プレイヤーの色。空きマスはNone（空文字）で表す
type Color string

const (
	Red    Color = "red"
	Yellow Color = "yellow"
	None   Color = ""
)

// Opponent は相手の色を返します。Noneの場合はNoneのまま
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return None
}

// Board はゲームの盤面
type Board [Rows][Cols]Color

// DropRow は指定列に駒を落とした場合の着地行を返します。列が満杯なら-1
func (b *Board) DropRow(col int) int {
	for row := Rows - 1; row >= 0; row-- {
		if b[row][col] == None {
			return row
		}
	}
	return -1
}

// Reset は盤面を全て空に戻します
func (b *Board) Reset() {
	for row := range b {
		for col := range b[row] {
			b[row][col] = None
		}
	}
}

// 勝利判定で走査する4方向（横、縦、斜め2本）
var directions = [4][2]int{
	{0, 1},  // 横
	{1, 0},  // 縦
	{1, 1},  // 斜め（左上から右下）
	{1, -1}, // 斜め（右上から左下）
}

// CheckWin は直前に置かれたマス(row, col)を通る4目並びがあるかを判定します。
// 置いた駒の色を軸に両方向へ連続数を数えるため、盤面全体の走査は不要
func CheckWin(board Board, color Color, row, col int) bool {
	if color == None {
		return false
	}
	for _, dir := range directions {
		count := 1 // 置いたマス自身
		// 正方向
		for step := 1; step < 4; step++ {
			r := row + dir[0]*step
			c := col + dir[1]*step
			if r < 0 || r >= Rows || c < 0 || c >= Cols || board[r][c] != color {
				break
			}
			count++
		}
		// 逆方向
		for step := 1; step < 4; step++ {
			r := row - dir[0]*step
			c := col - dir[1]*step
			if r < 0 || r >= Rows || c < 0 || c >= Cols || board[r][c] != color {
				break
			}
			count++
		}
		if count >= 4 {
			return true
		}
	}
	return false
}

// CheckDraw は引き分け判定。重力落下のため最上段（行0）が全て埋まっていれば盤面は満杯
func CheckDraw(board Board) bool {
	for col := 0; col < Cols; col++ {
		if board[0][col] == None {
			return false
		}
	}
	return true
}
