package core

// Align selects how text is positioned relative to its anchor point.
type Align int

const (
	AlignLeft   Align = iota // Anchor is the top-left corner
	AlignCenter              // Anchor is the center of the text
)

// Viewport maps board pixel space onto terminal cells.
// One block is one row tall and CharsPerBlock columns wide, which keeps
// blocks roughly square in a typical terminal font.
type Viewport struct {
	Block         int
	CharsPerBlock int
}

// Col returns the terminal column containing pixel x.
func (v Viewport) Col(x int) int {
	return floorDiv(x*v.CharsPerBlock, v.Block)
}

// Row returns the terminal row containing pixel y.
func (v Viewport) Row(y int) int {
	return floorDiv(y, v.Block)
}

// CellRect returns the terminal cells covered by a pixel rectangle.
func (v Viewport) CellRect(r Rect) Rect {
	x0, y0 := v.Col(r.X), v.Row(r.Y)
	x1 := ceilDiv(r.Right()*v.CharsPerBlock, v.Block)
	y1 := ceilDiv(r.Bottom(), v.Block)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Pixel returns the pixel at the center of a terminal cell.
func (v Viewport) Pixel(col, row int) Point {
	cellW := v.Block / v.CharsPerBlock
	return Point{
		X: col*cellW + cellW/2,
		Y: row*v.Block + v.Block/2,
	}
}

// Cells returns the terminal size needed to show a board of w×h pixels.
func (v Viewport) Cells(w, h int) (cols, rows int) {
	return ceilDiv(w*v.CharsPerBlock, v.Block), ceilDiv(h, v.Block)
}

// Sprite is a small character image, the terminal counterpart of a bitmap.
type Sprite struct {
	Rows []string
	Fg   Color
	Bg   Color
}

// Size returns the sprite dimensions in cells.
func (sp *Sprite) Size() (w, h int) {
	for _, row := range sp.Rows {
		w = max(w, len([]rune(row)))
	}
	return w, len(sp.Rows)
}

// Canvas draws in board pixel space onto a Screen.
type Canvas struct {
	screen *Screen
	view   Viewport
}

// NewCanvas wraps a screen with a pixel-space viewport.
func NewCanvas(screen *Screen, view Viewport) *Canvas {
	return &Canvas{screen: screen, view: view}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Clear fills the whole screen with the background color.
func (c *Canvas) Clear(bg Color) {
	c.screen.Fill(Cell{Rune: ' ', Bg: bg})
}

// FillRect paints a solid pixel rectangle.
func (c *Canvas) FillRect(r Rect, color Color) {
	c.screen.DrawRect(c.view.CellRect(r), Cell{Rune: ' ', Bg: color})
}

// Outline draws a box border around a pixel rectangle.
func (c *Canvas) Outline(r Rect, color Color) {
	c.screen.DrawBox(c.view.CellRect(r), color)
}

// Blit draws a sprite scaled (nearest neighbour) into a pixel rectangle.
// Blank sprite cells leave the destination untouched.
func (c *Canvas) Blit(sp *Sprite, r Rect) {
	if sp == nil {
		return
	}
	sw, sh := sp.Size()
	dst := c.view.CellRect(r)
	if sw == 0 || sh == 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}

	rows := make([][]rune, sh)
	for i, row := range sp.Rows {
		rows[i] = []rune(row)
	}

	for dy := 0; dy < dst.H; dy++ {
		src := rows[dy*sh/dst.H]
		for dx := 0; dx < dst.W; dx++ {
			sx := dx * sw / dst.W
			if sx >= len(src) || src[sx] == ' ' {
				continue
			}
			x, y := dst.X+dx, dst.Y+dy
			bg := sp.Bg
			if bg == ColorDefault {
				bg = c.screen.Get(x, y).Bg
			}
			c.screen.Set(x, y, Cell{Rune: src[sx], Fg: sp.Fg, Bg: bg})
		}
	}
}

// Text draws a string anchored at pixel (x, y).
func (c *Canvas) Text(text string, x, y int, fg Color, align Align) {
	col, row := c.view.Col(x), c.view.Row(y)
	if align == AlignCenter {
		col -= len([]rune(text)) / 2
	}
	c.screen.DrawText(col, row, text, fg)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
