package session

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	overlayWidth = 56 // Widest overlay line plus its box
)

// MinScreenSize returns the smallest screen that fits a board of size n.
func MinScreenSize(n int) (w, h int) {
	return max(n*cellWidth+1+2, overlayWidth), hudHeight + n*cellHeight + 1 + 2
}

// Render draws the session to the screen: HUD, board and any overlay.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	n := s.board.Size()
	minW, minH := MinScreenSize(n)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	boardW := n*cellWidth + 1
	boardH := n*cellHeight + 1
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	s.renderHUD(dst, boardX, boardW)
	renderBoard(dst, s.board, boardX, boardY)
	s.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (s *Session) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := fmt.Sprintf("%d", s.engine.Rules().WinTarget)
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", s.score))

	bestStr := fmt.Sprintf("Best: %d", s.best)
	dst.DrawText(boardX+boardW-len(bestStr), 1, bestStr)

	if s.hasAcknowledgedWin {
		msg := "Beyond the target"
		dst.DrawTextColored(boardX+(boardW-len(msg))/2, 2, msg, core.ColorGray)
	}
}

// renderBoard draws the grid lines and tiles.
func renderBoard(dst *core.Screen, b grid.Board, boardX, boardY int) {
	n := b.Size()
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y := range n {
		for x := range n {
			val := b.At(y, x)
			if val == 0 {
				continue
			}
			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(boardX+x*cellWidth+1+padLeft, boardY+y*cellHeight+1, valStr, core.TileColor(val))
		}
	}
}

// renderOverlays draws the win and game-over banners.
func (s *Session) renderOverlays(dst *core.Screen, board core.Rect) {
	switch s.state {
	case StateWinPending:
		drawOverlay(dst, board, core.ColorGreen,
			"YOU WIN!",
			Motivation(s.score, true),
			"C: keep going  R: restart")
	case StateTerminal:
		drawOverlay(dst, board, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", s.score, s.best),
			Motivation(s.score, s.won),
			"R: restart  Q: quit")
	}
}

// drawOverlay draws a boxed block of centered lines over the board.
// The first line is the colored headline.
func drawOverlay(dst *core.Screen, board core.Rect, headline core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = headline
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}
