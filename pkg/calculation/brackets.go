package calculation

// BracketPairs — пары скобок, которые проверяются по умолчанию.
var BracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// RoundBrackets — единственная пара, которую использует калькулятор.
var RoundBrackets = map[rune]rune{
	'(': ')',
}

// CheckBrackets проверяет парность и порядок скобок стеком: открывающая
// кладётся в стек, закрывающая должна соответствовать вершине. Любое
// нарушение (лишняя закрывающая, не та пара, незакрытые скобки)
// возвращается как одна и та же ошибка ErrBracketPairing.
func CheckBrackets(expression string, pairs map[rune]rune) error {
	if pairs == nil {
		pairs = BracketPairs
	}

	closing := make(map[rune]bool, len(pairs))
	for _, c := range pairs {
		closing[c] = true
	}

	var stack []rune
	for _, r := range expression {
		switch {
		case pairs[r] != 0:
			stack = append(stack, r)
		case closing[r]:
			if len(stack) == 0 {
				return ErrBracketPairing
			}

			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if pairs[last] != r {
				return ErrBracketPairing
			}
		}
	}

	if len(stack) != 0 {
		return ErrBracketPairing
	}

	return nil
}
