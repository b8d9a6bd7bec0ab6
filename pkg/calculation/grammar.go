package calculation

import (
	"regexp"
	"strings"
)

// OperandPattern возвращает шаблон числового операнда: необязательный
// знак, целая или десятичная запись (включая ".5" и "10."),
// необязательная экспонента. Обёртка из одного слоя скобок и пробелы
// вокруг числа допускаются только на этапе валидации — вычислитель на
// них не рассчитывает.
func OperandPattern() string {
	const (
		sign     = `[+-]?`
		body     = `(?:\d+(?:\.\d*)?|\.\d+)`
		exponent = `(?:[eE][+-]?\d+)?`
	)

	number := sign + `\s*` + body + exponent

	return `\s*\(*\s*` + number + `\s*\)*\s*`
}

// OperatorPattern строит альтернативу из всех символов таблицы.
// Символы экранируются и идут по убыванию длины, иначе "**"
// распознавался бы как два "*".
func OperatorPattern(ops *Operators) string {
	symbols := ops.Symbols()

	escaped := make([]string, len(symbols))
	for i, s := range symbols {
		escaped[i] = regexp.QuoteMeta(s)
	}

	return `(?:` + strings.Join(escaped, "|") + `)`
}

// ExpressionPattern описывает структуру выражения:
// операнд (оператор операнд)*. Парность скобок шаблон не проверяет,
// этим занимается CheckBrackets.
func ExpressionPattern(ops *Operators) string {
	operand := OperandPattern()
	operator := OperatorPattern(ops)

	return operand + `(?:` + operator + operand + `)*`
}
