//go:build cgo

package gui

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyState struct {
	font     rl.Font
	ownsFont bool
}

var uiType typographyState

// initTypography loads a glyph font, trying the configured family as a file
// under assets/fonts first, then a couple of bundled fallbacks, then the
// raylib default.
func initTypography(family string) {
	uiType.font = rl.GetFontDefault()

	candidates := []string{
		filepath.Join("assets", "fonts", family+".ttf"),
		filepath.Join("assets", "fonts", "JetBrainsMono-Regular.ttf"),
		filepath.Join("assets", "fonts", "IBMPlexMono-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(candidates, 64); ok {
		uiType.font = f
		uiType.ownsFont = true
	}

	rl.SetTextureFilter(uiType.font.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if uiType.ownsFont && uiType.font.Texture.ID != 0 {
		rl.UnloadFont(uiType.font)
	}
	uiType = typographyState{}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawGlyph(ch rune, pos rl.Vector2, size float32, clr rl.Color) {
	rl.DrawTextEx(uiType.font, string(ch), pos, size, 1, clr)
}

func drawText(text string, x, y int32, size float32, clr rl.Color) {
	rl.DrawTextEx(uiType.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 1, clr)
}
