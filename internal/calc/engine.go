// Package calc implements the calculator input state machine.
//
// Operands are kept as decimal strings while being typed and are parsed
// only when an operation commits. The engine never fails: malformed input
// sequences are silent no-ops, and division by zero puts the display into
// the Error sentinel state until the next digit or clear.
package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/nlyle/giotally/internal/histlog"
)

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Op is a binary operator.
type Op int

func (op Op) String() string {
	switch op {
	case OpNone:
		return ""
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		panic("unknown op")
	}
}

// apply computes the operation. Division by zero is checked by the caller.
func (op Op) apply(x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	default:
		panic("unknown op")
	}
}

// ErrorText is the display sentinel for division by zero.
const ErrorText = "Error"

// DefaultMaxInput caps the length of a typed operand.
const DefaultMaxInput = 16

// Engine holds the calculator state. The zero value is not usable;
// construct with New.
type Engine struct {
	current   string
	previous  string
	pending   Op
	overwrite bool

	maxInput int
	history  *histlog.Log
}

// New creates an engine with current operand "0".
// Completed evaluations are appended to history.
func New(history *histlog.Log, maxInput int) *Engine {
	if maxInput <= 0 {
		maxInput = DefaultMaxInput
	}
	return &Engine{current: "0", maxInput: maxInput, history: history}
}

// Digit processes a typed digit or decimal point.
// Anything else is ignored.
func (e *Engine) Digit(in string) {
	if len(in) != 1 {
		return
	}
	c := in[0]
	if c != '.' && (c < '0' || c > '9') {
		return
	}

	if e.current == ErrorText || e.overwrite {
		e.overwrite = false
		if c == '.' {
			e.current = "0."
		} else {
			e.current = in
		}
		return
	}

	if c == '.' {
		if strings.Contains(e.current, ".") {
			return
		}
		switch e.current {
		case "":
			e.current = "0."
		case "-":
			e.current = "-0."
		default:
			if len(e.current) < e.maxInput {
				e.current += in
			}
		}
		return
	}

	if len(e.current) >= e.maxInput {
		return
	}
	if e.current == "0" {
		e.current = in
		return
	}
	e.current += in
}

// Choose selects the pending binary operator. If an operation is already
// pending and a second operand has been typed, it is folded first so that
// input chains evaluate left to right.
func (e *Engine) Choose(op Op) {
	if op == OpNone || e.current == "" || e.current == ErrorText {
		return
	}
	if e.pending != OpNone && !e.overwrite {
		if !e.commit(true) {
			return
		}
	} else {
		e.previous = e.current
	}
	e.pending = op
	e.overwrite = true
}

// Evaluate applies the pending operation. No-op when nothing is pending.
func (e *Engine) Evaluate() {
	if e.pending == OpNone || e.previous == "" || e.current == ErrorText {
		return
	}
	e.commit(false)
}

// commit applies the pending operation, logs it, and stores the result.
// When chain is true the result also becomes the new left-hand operand.
// Returns false if the operation failed and the engine entered the error
// state.
func (e *Engine) commit(chain bool) bool {
	lhs := parseOperand(e.previous)
	rhs := parseOperand(e.current)
	if e.pending == OpDiv && rhs == 0 {
		e.fail()
		return false
	}

	result := formatNumber(roundResult(e.pending.apply(lhs, rhs)))
	if e.history != nil {
		expr := Format(e.previous) + " " + e.pending.String() + " " + Format(e.current)
		e.history.Add(expr, Format(result))
	}

	e.current = result
	if chain {
		e.previous = result
	} else {
		e.previous = ""
		e.pending = OpNone
	}
	e.overwrite = true
	return true
}

// fail enters the error sentinel state.
func (e *Engine) fail() {
	e.current = ErrorText
	e.previous = ""
	e.pending = OpNone
	e.overwrite = false
}

// Backspace removes the last typed character. In the error state it
// performs a full clear; on a fresh result or operand (nothing typed
// yet) it does nothing.
func (e *Engine) Backspace() {
	if e.current == ErrorText {
		e.Clear()
		return
	}
	if e.overwrite {
		return
	}
	if len(e.current) <= 1 {
		e.current = "0"
		return
	}
	e.current = e.current[:len(e.current)-1]
}

// Clear resets the calculation state. History is kept; clearing it is a
// separate action on the log itself.
func (e *Engine) Clear() {
	e.current = "0"
	e.previous = ""
	e.pending = OpNone
	e.overwrite = false
}

// Percent divides the current operand by 100.
func (e *Engine) Percent() {
	if e.current == ErrorText {
		return
	}
	v, err := strconv.ParseFloat(e.current, 64)
	if err != nil {
		return
	}
	e.current = formatNumber(v / 100)
	e.overwrite = false
}

// ToggleSign flips the sign of the current operand. The operand text is
// edited in place so an in-progress fraction keeps its trailing digits.
func (e *Engine) ToggleSign() {
	switch {
	case e.current == "" || e.current == "0" || e.current == ErrorText:
	case e.current == "-":
		e.current = "0"
	case strings.HasPrefix(e.current, "-"):
		e.current = e.current[1:]
	default:
		e.current = "-" + e.current
	}
}

// SetText replaces the current operand with in, for clipboard paste.
// Reports whether in was accepted as a finite number.
func (e *Engine) SetText(in string) bool {
	v, err := strconv.ParseFloat(in, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	e.current = in
	e.overwrite = false
	return true
}

// Text gives the formatted current operand for display.
func (e *Engine) Text() string {
	return Format(e.current)
}

// Current gives the current operand without display grouping, suitable
// for clipboard transfer.
func (e *Engine) Current() string {
	return e.current
}

// PendingText gives the formatted "previous operand and operator" line,
// or "" when no operation is pending.
func (e *Engine) PendingText() string {
	if e.pending == OpNone {
		return ""
	}
	return Format(e.previous) + " " + e.pending.String()
}

// Pending returns the operator awaiting its second operand, or OpNone.
func (e *Engine) Pending() Op {
	return e.pending
}

// InError reports whether the display shows the error sentinel.
func (e *Engine) InError() bool {
	return e.current == ErrorText
}

// parseOperand reads an in-progress operand string. Partial literals such
// as "-" parse as zero.
func parseOperand(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
