package calculation

import (
	"fmt"
	"math"
	"sort"
)

// BinaryOp — двоичная арифметическая операция над float64.
type BinaryOp func(left, right float64) float64

// Operators — таблица поддерживаемых операторов. Заполняется один раз
// при создании и дальше только читается, поэтому её можно безопасно
// разделять между валидатором, вычислителем и агентами.
type Operators struct {
	ops map[string]BinaryOp
}

func NewOperators() *Operators {
	return &Operators{
		ops: map[string]BinaryOp{
			"+":  func(a, b float64) float64 { return a + b },
			"-":  func(a, b float64) float64 { return a - b },
			"*":  func(a, b float64) float64 { return a * b },
			"/":  func(a, b float64) float64 { return a / b },
			"**": math.Pow,
			"%":  math.Mod,
			// Оператор процента: сколько процентов part составляет от whole.
			// Делит на левый операнд, не путать с обычным остатком от деления.
			"%%": func(whole, part float64) float64 { return part * 100 / whole },
		},
	}
}

// Get возвращает операцию по символу оператора.
func (o *Operators) Get(symbol string) (BinaryOp, error) {
	op, ok := o.ops[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, symbol)
	}
	return op, nil
}

// Symbols возвращает символы операторов по убыванию длины, чтобы при
// построении альтернатив "**" и "%%" матчились раньше "*" и "%".
func (o *Operators) Symbols() []string {
	symbols := make([]string, 0, len(o.ops))
	for s := range o.ops {
		symbols = append(symbols, s)
	}

	sort.Slice(symbols, func(i, j int) bool {
		if len(symbols[i]) != len(symbols[j]) {
			return len(symbols[i]) > len(symbols[j])
		}
		return symbols[i] < symbols[j]
	})

	return symbols
}

// Compute применяет оператор symbol к паре (left, right).
func (o *Operators) Compute(left, right float64, symbol string) (float64, error) {
	op, err := o.Get(symbol)
	if err != nil {
		return 0, err
	}

	switch symbol {
	case "/", "%":
		if right == 0 {
			return 0, ErrDivisionByZero
		}
	case "%%":
		// процент считается от левого операнда
		if left == 0 {
			return 0, ErrDivisionByZero
		}
	case "**":
		if left == 0 && right < 0 {
			return 0, ErrDivisionByZero
		}
	}

	return op(left, right), nil
}
