package matrix

// GitHub contribution palette, dark theme. Level 0 matches the board
// background so empty days read as unlit.
var (
	Background = Color{22, 27, 34}
	NoContrib  = Color{22, 27, 34}
	Level1     = Color{14, 68, 41}  // 1-3 contributions
	Level2     = Color{0, 109, 50}  // 4-6
	Level3     = Color{38, 166, 65} // 7-9
	Level4     = Color{57, 211, 83} // 10+
)

// Notification colors for the status bar.
var (
	PROpened      = Color{33, 136, 255}
	PRMerged      = Color{40, 167, 69}
	PRClosed      = Color{220, 53, 69}
	ReviewComment = Color{255, 193, 7}
)
