package orchestrator

import (
	"fmt"
	"regexp"

	"github.com/krpetrov/go-ltr-calculator/internal/models"
	"github.com/krpetrov/go-ltr-calculator/pkg/calculation"
)

// planner раскладывает проверенное выражение на двоичные задачи.
// Каждая внутренняя группа скобок превращается в цепочку задач слева
// направо, а её место в выражении занимает ссылка "task<id>" на
// последнюю задачу цепочки. Порядок раскрытия групп совпадает с
// порядком редукции калькулятора, поэтому агенты считают то же самое,
// что посчитал бы Calc.
type planner struct {
	operand  *regexp.Regexp
	operator *regexp.Regexp
}

func newPlanner(ops *calculation.Operators) *planner {
	return &planner{
		operand:  regexp.MustCompile(`\A(?:task\d+|[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?)`),
		operator: regexp.MustCompile(`\A` + calculation.OperatorPattern(ops)),
	}
}

// tokenize — как Tokenize вычислителя, но операндом может быть и
// ссылка на задачу.
func (p *planner) tokenize(expression string) (operands, symbols []string, err error) {
	rest := expression

	for {
		operand := p.operand.FindString(rest)
		if operand == "" {
			return nil, nil, fmt.Errorf("%w: operand expected at %q", calculation.ErrSyntax, rest)
		}
		operands = append(operands, operand)
		rest = rest[len(operand):]

		if rest == "" {
			return operands, symbols, nil
		}

		symbol := p.operator.FindString(rest)
		if symbol == "" {
			return nil, nil, fmt.Errorf("%w: operator expected at %q", calculation.ErrSyntax, rest)
		}
		symbols = append(symbols, symbol)
		rest = rest[len(symbol):]
	}
}

// planExpression строит задачи для выражения. Если выражение сводится
// к числу без единой операции, возвращается литерал результата и
// пустой список задач.
func (o *Orchestrator) planExpression(expression string, expressionId int64) ([]models.Task, string, error) {
	expression = calculation.RemoveSpaces(expression)

	var tasks []models.Task

	for {
		start, end, ok := calculation.InnerGroup(expression)
		if !ok {
			break
		}

		ref, chain, err := o.chainTasks(expression[start+1:end-1], expressionId)
		if err != nil {
			return nil, "", err
		}

		tasks = append(tasks, chain...)
		expression = expression[:start] + ref + expression[end:]
	}

	ref, chain, err := o.chainTasks(expression, expressionId)
	if err != nil {
		return nil, "", err
	}
	tasks = append(tasks, chain...)

	return tasks, ref, nil
}

// chainTasks превращает плоское выражение в цепочку двоичных задач:
// результат каждой задачи становится первым аргументом следующей.
func (o *Orchestrator) chainTasks(flat string, expressionId int64) (string, []models.Task, error) {
	operands, symbols, err := o.planner.tokenize(flat)
	if err != nil {
		return "", nil, err
	}

	if len(symbols) == 0 {
		return operands[0], nil, nil
	}

	var tasks []models.Task
	prev := operands[0]

	for i, symbol := range symbols {
		task := models.Task{
			Id:            o.nextTaskId,
			ExpressionId:  expressionId,
			Arg1:          prev,
			Arg2:          operands[i+1],
			Operation:     symbol,
			OperationTime: o.operationTime(symbol),
			Status:        models.StatusPending,
		}

		tasks = append(tasks, task)
		prev = fmt.Sprintf("task%d", task.Id)
		o.nextTaskId++
	}

	return prev, tasks, nil
}

// isTaskReference проверяет, является ли аргумент ссылкой на задачу
func isTaskReference(arg string) bool {
	return len(arg) > 4 && arg[:4] == "task"
}
