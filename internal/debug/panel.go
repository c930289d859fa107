package debug

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	headerColor = rl.NewColor(255, 220, 120, 255)
	boxColor    = rl.NewColor(150, 150, 150, 255)
	checkColor  = rl.NewColor(100, 255, 100, 255)
)

// panel lays out the overlay top to bottom: titled sections of indented
// lines, then toggles.
type panel struct {
	font       rl.Font
	fontHeight float32
	lineHeight float32
	x, y       float32

	mouse   rl.Vector2
	clicked bool
}

func (p *panel) text(s string, x float32, c rl.Color) {
	pos := rl.NewVector2(x, p.y)
	if p.font.BaseSize > 0 {
		rl.DrawTextEx(p.font, s, pos, p.fontHeight, 1, c)
	} else {
		rl.DrawText(s, int32(pos.X), int32(pos.Y), int32(p.fontHeight), c)
	}
	p.y += p.lineHeight
}

// section draws a title and its lines, followed by half a line of space.
func (p *panel) section(title string, lines []string) {
	p.text(title, p.x, headerColor)
	for _, l := range lines {
		p.text(l, p.x+10, rl.White)
	}
	p.y += p.lineHeight / 2
}

// toggle draws a checkbox row and flips *on when the row is clicked.
func (p *panel) toggle(label string, on *bool) {
	size := p.fontHeight * 0.8
	box := rl.NewRectangle(p.x+5, p.y+2, size, size)
	if p.clicked && toggleHit(box, p.mouse) {
		*on = !*on
	}

	rl.DrawRectangleLinesEx(box, 1, boxColor)
	if *on {
		rl.DrawRectangleRec(rl.NewRectangle(box.X+2, box.Y+2, box.Width-4, box.Height-4), checkColor)
	}
	p.text(label, box.X+box.Width+5, rl.White)
}

// toggleHit reports whether mouse lands on a checkbox or the label area
// to its right.
func toggleHit(box rl.Rectangle, mouse rl.Vector2) bool {
	row := box
	row.Width += 100
	return rl.CheckCollisionPointRec(mouse, row)
}
