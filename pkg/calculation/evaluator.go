package calculation

import (
	"fmt"
	"regexp"
	"strconv"
)

// Evaluator вычисляет выражение без скобок строго слева направо,
// игнорируя приоритет операторов. Предполагается, что выражение уже
// прошло валидацию; тем не менее вычислитель перепроверяет каждый
// токен и не доверяет входу.
type Evaluator struct {
	ops      *Operators
	operand  *regexp.Regexp
	operator *regexp.Regexp
}

func NewEvaluator(ops *Operators) *Evaluator {
	return &Evaluator{
		ops:      ops,
		operand:  regexp.MustCompile(`\A[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`),
		operator: regexp.MustCompile(`\A` + OperatorPattern(ops)),
	}
}

// Tokenize разбирает плоское выражение на операнды и операторы одним
// проходом. Знак после оператора уходит в операнд, поэтому результат
// вида "-3", подставленный вместо группы скобок, разбирается корректно.
func (e *Evaluator) Tokenize(expression string) (operands, symbols []string, err error) {
	rest := expression

	for {
		operand := e.operand.FindString(rest)
		if operand == "" {
			return nil, nil, fmt.Errorf("%w: operand expected at %q", ErrSyntax, rest)
		}
		operands = append(operands, operand)
		rest = rest[len(operand):]

		if rest == "" {
			return operands, symbols, nil
		}

		symbol := e.operator.FindString(rest)
		if symbol == "" {
			return nil, nil, fmt.Errorf("%w: operator expected at %q", ErrSyntax, rest)
		}
		symbols = append(symbols, symbol)
		rest = rest[len(symbol):]
	}
}

// Evaluate сворачивает выражение слева направо: первый операнд — это
// начальное значение, каждый следующий применяется к накопленному
// результату через таблицу операторов. Единственный операнд без
// операторов возвращается как есть.
func (e *Evaluator) Evaluate(expression string) (float64, error) {
	operands, symbols, err := e.Tokenize(expression)
	if err != nil {
		return 0, err
	}

	result, err := parseOperand(operands[0])
	if err != nil {
		return 0, err
	}

	for i := 1; i < len(operands); i++ {
		right, err := parseOperand(operands[i])
		if err != nil {
			return 0, err
		}

		result, err = e.ops.Compute(result, right, symbols[i-1])
		if err != nil {
			return 0, err
		}
	}

	return result, nil
}

func parseOperand(token string) (float64, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad operand %q", ErrSyntax, token)
	}
	return value, nil
}
