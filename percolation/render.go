package percolation

import "strings"

// Render draws the grid one line per row, each line terminated by '\n',
// using g to pick a rune per site.
// Complexity: O(n²).
func (m *Model) Render(g Glyphs) string {
	var sb strings.Builder
	sb.Grow(m.n * (m.n + 1) * 3)
	for row := 1; row <= m.n; row++ {
		for col := 1; col <= m.n; col++ {
			sb.WriteRune(g.For(m.state(m.index(row, col))))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String renders the grid with DefaultGlyphs.
func (m *Model) String() string {
	return m.Render(DefaultGlyphs())
}
