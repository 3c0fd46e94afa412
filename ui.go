package main

import (
	"image"
	"image/color"

	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"github.com/nlyle/giotally/internal/calc"
	"github.com/nlyle/giotally/internal/config"
	"github.com/nlyle/giotally/internal/histlog"
)

const (
	kindDigit buttonKind = iota
	kindSpecial
	kindOp
)

type buttonKind int

// button is a clickable keypad button.
type button struct {
	kind   buttonKind
	op     calc.Op // calc.OpNone except on operator buttons
	text   string
	action func()

	clicker widget.Clickable
}

// calcUI is the user interface of the calculator.
type calcUI struct {
	engine *calc.Engine
	hist   *histlog.Log
	log    *zap.Logger

	theme   *material.Theme
	pal     palette
	dark    bool
	buttons [5][4]*button

	showHistory  bool
	historyBtn   widget.Clickable
	clearHistBtn widget.Clickable
	themeBtn     widget.Clickable
	historyList  layout.List

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme, cfg config.Config, logger *zap.Logger) *calcUI {
	hist := histlog.New(cfg.HistoryCap)
	ui := &calcUI{
		engine:      calc.New(hist, cfg.MaxInput),
		hist:        hist,
		log:         logger,
		theme:       theme,
		pal:         paletteFor(cfg.Theme),
		dark:        cfg.Theme != config.ThemeLight,
		historyList: layout.List{Axis: layout.Vertical},
	}

	reset := ui.special("AC", ui.engine.Clear)
	sign := ui.special("±", ui.engine.ToggleSign)
	percent := ui.special("%", ui.engine.Percent)
	rubout := ui.special("⌫", ui.engine.Backspace)
	decimal := ui.digit(".")
	equals := &button{kind: kindOp, text: "=", action: ui.engine.Evaluate}
	ui.buttons = [5][4]*button{
		{reset, sign, percent, ui.op(calc.OpDiv)},
		{ui.digit("7"), ui.digit("8"), ui.digit("9"), ui.op(calc.OpMul)},
		{ui.digit("4"), ui.digit("5"), ui.digit("6"), ui.op(calc.OpSub)},
		{ui.digit("1"), ui.digit("2"), ui.digit("3"), ui.op(calc.OpAdd)},
		{ui.digit("0"), rubout, decimal, equals},
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(input string) *button {
	b := &button{kind: kindDigit, text: input}
	b.action = func() { ui.engine.Digit(input) }
	return b
}

// op creates an operator button.
func (ui *calcUI) op(op calc.Op) *button {
	b := &button{kind: kindOp, op: op, text: op.String()}
	b.action = func() { ui.engine.Choose(op) }
	return b
}

// special creates a utility button.
func (ui *calcUI) special(name string, fn func()) *button {
	return &button{kind: kindSpecial, text: name, action: fn}
}

// toggleTheme switches between the light and dark palette.
func (ui *calcUI) toggleTheme() {
	ui.dark = !ui.dark
	if ui.dark {
		ui.pal = darkPalette()
	} else {
		ui.pal = lightPalette()
	}
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx C) D {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	// Handle top bar actions.
	if ui.historyBtn.Clicked(gtx) {
		ui.showHistory = !ui.showHistory
	}
	if ui.clearHistBtn.Clicked(gtx) {
		ui.hist.Clear()
	}
	if ui.themeBtn.Clicked(gtx) {
		ui.toggleTheme()
	}

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx C) D {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(8, func(gtx C) D {
				return inset.Layout(gtx, ui.layoutTopBar)
			}),
			layout.Flexed(22, func(gtx C) D {
				return inset.Layout(gtx, ui.layoutDisplay)
			}),
			layout.Flexed(70, func(gtx C) D {
				if ui.showHistory {
					return inset.Layout(gtx, ui.layoutHistory)
				}
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutTopBar(gtx C) D {
	themeText := "Dark"
	if ui.dark {
		themeText = "Light"
	}
	historyText := "History"
	if ui.showHistory {
		historyText = "Keypad"
	}

	flex := layout.Flex{Spacing: layout.SpaceBetween, Alignment: layout.Middle}
	return flex.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return ui.layoutBarButton(gtx, &ui.historyBtn, historyText)
		}),
		layout.Rigid(func(gtx C) D {
			return showIf(ui.showHistory && ui.hist.Len() > 0, gtx, func(gtx C) D {
				return ui.layoutBarButton(gtx, &ui.clearHistBtn, "Clear")
			})
		}),
		layout.Rigid(func(gtx C) D {
			return ui.layoutBarButton(gtx, &ui.themeBtn, themeText)
		}),
	)
}

func (ui *calcUI) layoutBarButton(gtx C, click *widget.Clickable, txt string) D {
	style := material.Button(ui.theme, click, txt)
	style.Background = ui.pal.Special
	style.Color = ui.pal.ButtonText
	style.TextSize = barTextSize
	style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
	style.Inset = layout.Inset{
		Top: unit.Dp(4), Bottom: unit.Dp(4),
		Left: unit.Dp(10), Right: unit.Dp(10),
	}
	return style.Layout(gtx)
}

func (ui *calcUI) layoutDisplay(gtx C) D {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, ui.pal.Display, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, ui.layoutDisplayText)
}

func (ui *calcUI) layoutDisplayText(gtx C) D {
	flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
	return flex.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			l := material.Label(ui.theme, pendingTextSize, ui.engine.PendingText())
			l.Color = ui.pal.PendingText
			l.Alignment = text.End
			l.MaxLines = 1
			dim := l.Layout(gtx)
			dim.Size.X = gtx.Constraints.Max.X
			return dim
		}),
		layout.Flexed(1, func(gtx C) D {
			// Scale font based on height.
			fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
			fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

			l := material.Label(ui.theme, fontSizeSp, ui.engine.Text())
			l.Color = ui.pal.DisplayText
			l.Alignment = text.End
			return shrinkToFit(gtx, l.Layout)
		}),
	)
}

func (ui *calcUI) layoutHistory(gtx C) D {
	entries := ui.hist.Entries()
	if len(entries) == 0 {
		l := material.Label(ui.theme, historyTextSize, "No calculations yet.")
		l.Color = ui.pal.PendingText
		l.Alignment = text.Middle
		return layout.Center.Layout(gtx, l.Layout)
	}

	return ui.historyList.Layout(gtx, len(entries), func(gtx C, i int) D {
		l := material.Label(ui.theme, historyTextSize, entries[i].String())
		l.Color = ui.pal.HistoryText
		l.Alignment = text.End
		l.MaxLines = 1
		inset := layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)}
		return inset.Layout(gtx, func(gtx C) D {
			dim := l.Layout(gtx)
			dim.Size.X = gtx.Constraints.Max.X
			return dim
		})
	})
}

func (ui *calcUI) layoutButtons(gtx C) D {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx C) D {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return D{}
	})
}

func (ui *calcUI) layoutButton(gtx C, b *button) D {
	if b.clicker.Clicked(gtx) && b.action != nil {
		b.action()
	}

	return b.clicker.Layout(gtx, func(gtx C) D {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, b.text)
		style.Background = ui.buttonColor(b)
		style.Color = ui.pal.ButtonText
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		return style.Layout(gtx)
	})
}

// buttonColor picks the background for a button, highlighting the
// operator that is waiting for its second operand.
func (ui *calcUI) buttonColor(b *button) color.NRGBA {
	switch {
	case b.kind == kindOp && b.op != calc.OpNone && b.op == ui.engine.Pending():
		return ui.pal.ActiveOp
	case b.kind == kindOp:
		return ui.pal.Op
	case b.kind == kindSpecial:
		return ui.pal.Special
	default:
		return ui.pal.Digit
	}
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx C) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,=,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.engine.Current()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			if !ui.engine.SetText(ev.Text) {
				ui.log.Debug("rejected clipboard text", zap.String("text", ev.Text))
			}
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		ui.engine.Digit(e.Name)
	case "+":
		ui.engine.Choose(calc.OpAdd)
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			ui.engine.ToggleSign()
		} else {
			ui.engine.Choose(calc.OpSub)
		}
	case "*":
		ui.engine.Choose(calc.OpMul)
	case "/":
		ui.engine.Choose(calc.OpDiv)
	case "%":
		ui.engine.Percent()
	case "=", key.NameEnter, key.NameReturn:
		ui.engine.Evaluate()
	case key.NameDeleteBackward, key.NameDeleteForward:
		ui.engine.Backspace()
	case key.NameEscape:
		ui.engine.Clear()
	}
}
