package calculation

import (
	"fmt"
	"regexp"
)

// Validator — синтаксический шлюз перед вычислением: сначала парность
// круглых скобок, затем полное соответствие грамматике. Частичное
// совпадение не считается — шаблон заякорен на всю строку.
type Validator struct {
	expression *regexp.Regexp
}

func NewValidator(ops *Operators) *Validator {
	return &Validator{
		expression: regexp.MustCompile(`\A` + ExpressionPattern(ops) + `\z`),
	}
}

func (v *Validator) Check(expression string) error {
	if err := CheckBrackets(expression, RoundBrackets); err != nil {
		return err
	}

	if !v.expression.MatchString(expression) {
		return fmt.Errorf("%w: %q", ErrSyntax, expression)
	}

	return nil
}
