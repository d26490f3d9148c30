// Package graph turns GitHub contribution data into pixels on the matrix.
package graph

import (
	"fmt"

	"github.com/archieLa/gitglow/internal/matrix"
)

// Level buckets a daily contribution count into the site's five intensity
// levels: 0 none, 1-3, 4-6, 7-9, 10+.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

var levelColors = [5]matrix.Color{
	matrix.NoContrib,
	matrix.Level1,
	matrix.Level2,
	matrix.Level3,
	matrix.Level4,
}

// LevelColor returns the palette entry for an intensity level; out-of-range
// levels clamp to the nearest valid one.
func LevelColor(level int) matrix.Color {
	if level < 0 {
		level = 0
	}
	if level > 4 {
		level = 4
	}
	return levelColors[level]
}

// Event is a repository notification worth flashing on the bar.
type Event int

const (
	EventPROpened Event = iota
	EventPRMerged
	EventPRClosed
	EventReviewComment
)

// EventColor maps a notification event to its palette color.
func EventColor(e Event) matrix.Color {
	switch e {
	case EventPROpened:
		return matrix.PROpened
	case EventPRMerged:
		return matrix.PRMerged
	case EventPRClosed:
		return matrix.PRClosed
	case EventReviewComment:
		return matrix.ReviewComment
	default:
		return matrix.NoContrib
	}
}

// Draw paints weeks of daily counts onto m, one column per week and one row
// per weekday, inside a single frame bracket so the whole update reaches
// the LEDs as one transmit. When there are more weeks than columns the
// oldest weeks are dropped; days beyond the matrix height are ignored.
func Draw(m *matrix.Matrix, weeks [][]int) error {
	w := m.Width()
	if len(weeks) > w {
		weeks = weeks[len(weeks)-w:]
	}
	m.StartFrame()
	m.Fill(matrix.Background)
	for col, days := range weeks {
		for row, count := range days {
			if row >= m.Height() {
				break
			}
			if err := m.SetPixelAt(col, row, LevelColor(Level(count))); err != nil {
				_ = m.EndFrame() // never leave the bracket open
				return fmt.Errorf("graph: draw (%d,%d): %w", col, row, err)
			}
		}
	}
	return m.EndFrame()
}
