package main

import (
	"image/color"

	"github.com/nlyle/giotally/internal/config"
)

// palette holds the colors of one theme variant.
type palette struct {
	Background  color.NRGBA
	Display     color.NRGBA
	DisplayText color.NRGBA
	PendingText color.NRGBA
	HistoryText color.NRGBA

	Digit      color.NRGBA
	Special    color.NRGBA
	Op         color.NRGBA
	ActiveOp   color.NRGBA
	ButtonText color.NRGBA
}

func darkPalette() palette {
	return palette{
		Background:  color.NRGBA{50, 50, 50, 255},
		Display:     color.NRGBA{35, 35, 35, 255},
		DisplayText: color.NRGBA{255, 255, 255, 255},
		PendingText: color.NRGBA{170, 170, 170, 255},
		HistoryText: color.NRGBA{200, 200, 200, 255},
		Digit:       color.NRGBA{90, 90, 90, 255},
		Special:     color.NRGBA{70, 70, 70, 255},
		Op:          color.NRGBA{122, 90, 90, 255},
		ActiveOp:    color.NRGBA{160, 90, 90, 255},
		ButtonText:  color.NRGBA{255, 255, 255, 255},
	}
}

func lightPalette() palette {
	return palette{
		Background:  color.NRGBA{240, 240, 240, 255},
		Display:     color.NRGBA{255, 255, 255, 255},
		DisplayText: color.NRGBA{30, 30, 30, 255},
		PendingText: color.NRGBA{120, 120, 120, 255},
		HistoryText: color.NRGBA{80, 80, 80, 255},
		Digit:       color.NRGBA{215, 215, 215, 255},
		Special:     color.NRGBA{195, 195, 195, 255},
		Op:          color.NRGBA{214, 150, 120, 255},
		ActiveOp:    color.NRGBA{230, 120, 80, 255},
		ButtonText:  color.NRGBA{30, 30, 30, 255},
	}
}

// paletteFor maps a configured theme name to its palette.
func paletteFor(name string) palette {
	if name == config.ThemeLight {
		return lightPalette()
	}
	return darkPalette()
}
