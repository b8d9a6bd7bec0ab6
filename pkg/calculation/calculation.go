package calculation

import (
	"regexp"
	"strconv"
)

var (
	// innerGroup — самая левая группа скобок без вложенных скобок.
	innerGroup = regexp.MustCompile(`\([^()]+\)`)
	spaces     = regexp.MustCompile(`\s+`)
)

// Calculator вычисляет арифметические выражения строго слева направо.
// Все коллабораторы создаются один раз и не меняются, поэтому один
// экземпляр можно использовать из любого числа горутин.
type Calculator struct {
	ops       *Operators
	validator *Validator
	evaluator *Evaluator
}

func New() *Calculator {
	ops := NewOperators()

	return &Calculator{
		ops:       ops,
		validator: NewValidator(ops),
		evaluator: NewEvaluator(ops),
	}
}

// Operators возвращает общую таблицу операторов калькулятора.
func (c *Calculator) Operators() *Operators {
	return c.ops
}

// Validate проверяет выражение без его вычисления.
func (c *Calculator) Validate(expression string) error {
	return c.validator.Check(expression)
}

// Tokenize разбирает плоское выражение на операнды и операторы.
func (c *Calculator) Tokenize(expression string) (operands, symbols []string, err error) {
	return c.evaluator.Tokenize(expression)
}

// Calc проверяет и вычисляет выражение: валидация, удаление пробелов,
// редукция скобок от внутренних к внешним, затем один проход слева
// направо по плоскому остатку. Валидация гарантирует сбалансированные
// скобки, поэтому цикл редукции всегда завершается.
func (c *Calculator) Calc(expression string) (float64, error) {
	if err := c.validator.Check(expression); err != nil {
		return 0, err
	}

	expression = RemoveSpaces(expression)

	for {
		start, end, ok := InnerGroup(expression)
		if !ok {
			break
		}

		value, err := c.evaluator.Evaluate(expression[start+1 : end-1])
		if err != nil {
			return 0, err
		}

		expression = expression[:start] + FormatValue(value) + expression[end:]
	}

	return c.evaluator.Evaluate(expression)
}

// RemoveSpaces удаляет все пробельные символы из выражения.
func RemoveSpaces(expression string) string {
	return spaces.ReplaceAllString(expression, "")
}

// InnerGroup возвращает границы самой левой внутренней группы скобок.
func InnerGroup(expression string) (start, end int, ok bool) {
	loc := innerGroup.FindStringIndex(expression)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// FormatValue переводит число в десятичную строку без экспоненты,
// чтобы результат группы можно было подставить обратно в выражение.
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

var defaultCalculator = New()

// Calc — обёртка над общим Calculator для одноразовых вычислений.
func Calc(expression string) (float64, error) {
	return defaultCalculator.Calc(expression)
}
