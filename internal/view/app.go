//go:build cgo

// Package view is the windowed gamma preview: every preset rendered as
// a 0..255 intensity ramp pushed through its lookup table.
package view

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/gammagen/internal/gamma"
)

var (
	colorBG     = rl.NewColor(0x14, 0x1A, 0x1F, 255) // #141A1F
	colorBorder = rl.NewColor(0x2E, 0x3A, 0x40, 255) // #2E3A40
	colorText   = rl.NewColor(0xE8, 0xE2, 0xD8, 255) // #E8E2D8
	colorDim    = rl.NewColor(0x7D, 0x85, 0x8A, 255) // #7D858A
	colorAccent = rl.NewColor(0xD4, 0x6A, 0x1E, 255) // #D46A1E
)

const (
	cellW   = 4 // pixels per table entry
	stripW  = 256 * cellW
	stripH  = 36
	rowGap  = 10
	margin  = 16
	labelW  = 70
	headerH = 40
)

type previewUI struct {
	set    *gamma.Set
	active int
	invert bool
	quit   bool
}

// Run opens the preview window on the given start preset and blocks
// until the user quits.
func Run(set *gamma.Set, start int) error {
	ui := &previewUI{set: set, active: start}

	width := int32(margin + labelW + stripW + margin)
	height := int32(headerH + set.Len()*(stripH+rowGap) + margin)
	rl.InitWindow(width, height, "gammaview")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !ui.quit && !rl.WindowShouldClose() {
		ui.update()
		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *previewUI) update() {
	if rl.IsKeyPressed(rl.KeyG) {
		ui.active = ui.set.Next(ui.active)
	}
	if rl.IsKeyPressed(rl.KeyI) {
		ui.invert = !ui.invert
	}
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		ui.quit = true
	}
}

func (ui *previewUI) draw() {
	hud := fmt.Sprintf("[ GAM %s ]", ui.set.Labels[ui.active])
	if ui.invert {
		hud += "  [INV]"
	}
	rl.DrawText(hud, margin, 12, 20, colorText)
	rl.DrawText("G cycle   I invert   Q quit", margin+stripW+labelW-240, 14, 16, colorDim)

	for row := range ui.set.Tables {
		y := int32(headerH + row*(stripH+rowGap))
		labelColor := colorDim
		if row == ui.active {
			labelColor = colorAccent
		}
		rl.DrawText(ui.set.Labels[row], margin, y+stripH/2-8, 18, labelColor)
		ui.drawStrip(row, margin+labelW, y)
	}
}

// drawStrip renders one preset's ramp: input intensity left to right,
// output intensity as the drawn shade. Same per-pixel path as the
// viewer: table lookup, then optional inversion.
func (ui *previewUI) drawStrip(row int, x, y int32) {
	table := &ui.set.Tables[row]
	for i := 0; i < 256; i++ {
		v := table[i]
		if ui.invert {
			v = ^v
		}
		shade := rl.NewColor(v, v, v, 255)
		rl.DrawRectangle(x+int32(i*cellW), y, cellW, stripH, shade)
	}
	borderColor := colorBorder
	thickness := float32(1)
	if row == ui.active {
		borderColor = colorAccent
		thickness = 2
	}
	rect := rl.NewRectangle(float32(x), float32(y), float32(stripW), float32(stripH))
	rl.DrawRectangleLinesEx(rect, thickness, borderColor)
}
