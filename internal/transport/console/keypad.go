package console

// Cells are addressed on the keypad layout (7 8 9 on top, 1 2 3 at the
// bottom) while the engine indexes the board 0-8 row-major from the top
// left.

func keypadToIndex(key int) int {
	row := (key - 1) / 3 // 0 = bottom row
	col := (key - 1) % 3

	return (2-row)*3 + col
}

func indexToKeypad(idx int) int {
	row := idx / 3 // 0 = top row
	col := idx % 3

	return (2-row)*3 + col + 1
}
