package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const lineHeight = 16

// Panel is a bordered box of debug-font text lines.
type Panel struct {
	Lines  []string
	X, Y   int
	Width  int
	Height int
	Active bool
}

func NewPanel(x, y, width, height int) *Panel {
	return &Panel{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (p *Panel) SetLines(lines ...string) {
	p.Lines = lines
}

func (p *Panel) Draw(screen *ebiten.Image) {
	x, y, width, height := p.X, p.Y, p.Width, p.Height

	bgColor := color.RGBA{50, 50, 50, 200}
	if p.Active {
		bgColor = color.RGBA{80, 80, 80, 220}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)

	// Border
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), 1, color.White, false)
	vector.DrawFilledRect(screen, float32(x), float32(y+height-1), float32(width), 1, color.White, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(height), color.White, false)
	vector.DrawFilledRect(screen, float32(x+width-1), float32(y), 1, float32(height), color.White, false)

	for i, line := range p.Lines {
		ly := y + 4 + i*lineHeight
		if ly+lineHeight > y+height {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, x+5, ly)
	}
}

// Contains reports whether the screen point is inside the panel.
func (p *Panel) Contains(mouseX, mouseY int) bool {
	return mouseX >= p.X && mouseX <= p.X+p.Width &&
		mouseY >= p.Y && mouseY <= p.Y+p.Height
}
