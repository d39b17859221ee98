package game

import "testing"

func TestCheckWinHorizontal(t *testing.T) {
	var b Board
	b[5][0] = Red
	b[5][1] = Red
	b[5][2] = Red
	b[5][3] = Red
	if !CheckWin(b, Red, 5, 3) {
		t.Fatal("expected horizontal win for red")
	}
	if CheckWin(b, Yellow, 5, 3) {
		t.Fatal("expected no win for yellow")
	}
}

func TestCheckWinHorizontalThroughMiddle(t *testing.T) {
	var b Board
	b[5][1] = Yellow
	b[5][2] = Yellow
	b[5][3] = Yellow
	b[5][4] = Yellow
	// 並びの途中のマスを基点にしても検出できること
	if !CheckWin(b, Yellow, 5, 2) {
		t.Fatal("expected win detected from an inner cell of the run")
	}
}

func TestCheckWinVertical(t *testing.T) {
	var b Board
	b[2][6] = Yellow
	b[3][6] = Yellow
	b[4][6] = Yellow
	b[5][6] = Yellow
	if !CheckWin(b, Yellow, 2, 6) {
		t.Fatal("expected vertical win for yellow")
	}
}

func TestCheckWinDiagonalDown(t *testing.T) {
	var b Board
	b[2][0] = Red
	b[3][1] = Red
	b[4][2] = Red
	b[5][3] = Red
	if !CheckWin(b, Red, 2, 0) {
		t.Fatal("expected diagonal win for red")
	}
}

func TestCheckWinDiagonalUp(t *testing.T) {
	var b Board
	b[5][0] = Red
	b[4][1] = Red
	b[3][2] = Red
	b[2][3] = Red
	if !CheckWin(b, Red, 3, 2) {
		t.Fatal("expected anti-diagonal win for red")
	}
}

func TestCheckWinThreeIsNotEnough(t *testing.T) {
	var b Board
	b[5][0] = Red
	b[5][1] = Red
	b[5][2] = Red
	if CheckWin(b, Red, 5, 2) {
		t.Fatal("three in a row must not win")
	}
}

func TestCheckWinAtCorners(t *testing.T) {
	// 盤面の隅を基点にしても範囲外アクセスを起こさないこと
	var b Board
	for _, cell := range [][2]int{{0, 0}, {0, 6}, {5, 0}, {5, 6}} {
		b.Reset()
		b[cell[0]][cell[1]] = Red
		if CheckWin(b, Red, cell[0], cell[1]) {
			t.Fatalf("single piece at (%d,%d) must not win", cell[0], cell[1])
		}
	}
}

func TestCheckDraw(t *testing.T) {
	var b Board
	if CheckDraw(b) {
		t.Fatal("empty board is not a draw")
	}
	for col := 0; col < Cols; col++ {
		b[0][col] = Red
	}
	if !CheckDraw(b) {
		t.Fatal("full top row must be a draw")
	}
	b[0][3] = None
	if CheckDraw(b) {
		t.Fatal("one empty top cell must not be a draw")
	}
}

func TestDropRow(t *testing.T) {
	var b Board
	if row := b.DropRow(0); row != 5 {
		t.Fatalf("expected drop to bottom row 5, got %d", row)
	}
	b[5][0] = Red
	if row := b.DropRow(0); row != 4 {
		t.Fatalf("expected drop onto row 4, got %d", row)
	}
	for row := 0; row < Rows; row++ {
		b[row][0] = Yellow
	}
	if row := b.DropRow(0); row != -1 {
		t.Fatalf("expected -1 for full column, got %d", row)
	}
}
