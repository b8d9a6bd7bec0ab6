package orchestrator

import (
	"context"
	"fmt"
	"log"

	"github.com/krpetrov/go-ltr-calculator/internal/models"
	pb "github.com/krpetrov/go-ltr-calculator/internal/proto"
	"github.com/krpetrov/go-ltr-calculator/pkg/calculation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FetchTask выдаёт агенту первую задачу, оба аргумента которой уже
// известны (не ссылаются на невыполненные задачи).
func (o *Orchestrator) FetchTask(ctx context.Context, in *pb.TaskRequest) (*pb.TaskResponse, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, task := range o.tasks {
		if task.Status != models.StatusPending || isTaskReference(task.Arg1) || isTaskReference(task.Arg2) {
			continue
		}

		task.Status = models.StatusComputing
		o.tasks[i] = task

		expression, err := o.db.ExpressionRepo.GetExpressionByID(task.ExpressionId)
		if err != nil {
			return nil, err
		}

		if expression.Status == models.StatusPending {
			expression.Status = models.StatusComputing
			o.db.ExpressionRepo.UpdateExpression(task.ExpressionId, expression)
		}

		log.Printf("FetchTask: sent task %d", task.Id)

		return &pb.TaskResponse{
			Task: &pb.Task{
				Id:            task.Id,
				ExpressionId:  task.ExpressionId,
				Arg1:          task.Arg1,
				Arg2:          task.Arg2,
				Operation:     task.Operation,
				OperationTime: task.OperationTime,
				Status:        string(task.Status),
				Result:        task.Result,
				Error:         task.Error,
			},
		}, nil
	}

	return nil, status.Error(codes.NotFound, "no tasks available")
}

// SendResult принимает результат задачи, подставляет его в зависимые
// задачи и завершает выражение, когда выполнена его последняя задача.
// Ошибка задачи сразу завершает всё выражение с этой ошибкой.
func (o *Orchestrator) SendResult(ctx context.Context, in *pb.TaskResult) (*pb.SuccessResponse, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	taskIndex := -1
	for i, t := range o.tasks {
		if t.Id == in.Id {
			taskIndex = i
			break
		}
	}

	if taskIndex == -1 {
		return nil, status.Error(codes.NotFound, "task not found")
	}

	task := o.tasks[taskIndex]

	if in.Error != "" {
		task.Status = models.StatusError
		task.Error = in.Error
	} else {
		task.Status = models.StatusDone
		task.Result = in.Result
	}

	o.tasks[taskIndex] = task

	if task.Status == models.StatusError {
		if err := o.finishExpression(task); err != nil {
			return nil, err
		}
		return &pb.SuccessResponse{Message: "Task result accepted."}, nil
	}

	// Подставляет результат в задачи, которые на него ссылаются
	ref := fmt.Sprintf("task%d", task.Id)
	value := calculation.FormatValue(task.Result)

	for i, t := range o.tasks {
		if t.ExpressionId != task.ExpressionId || t.Status != models.StatusPending {
			continue
		}
		if t.Arg1 == ref {
			t.Arg1 = value
		}
		if t.Arg2 == ref {
			t.Arg2 = value
		}
		o.tasks[i] = t
	}

	// Выражение готово, когда не осталось незавершённых задач
	allTasksDone := true
	for _, t := range o.tasks {
		if t.ExpressionId == task.ExpressionId && t.Status != models.StatusDone {
			allTasksDone = false
			break
		}
	}

	if allTasksDone {
		if err := o.finishExpression(task); err != nil {
			return nil, err
		}
	}

	return &pb.SuccessResponse{Message: "Task result accepted."}, nil
}

// finishExpression записывает итог выражения и удаляет его задачи.
// Последняя задача цепочки всегда завершается последней, поэтому её
// результат и есть результат выражения.
func (o *Orchestrator) finishExpression(last models.Task) error {
	expression, err := o.db.ExpressionRepo.GetExpressionByID(last.ExpressionId)
	if err != nil {
		return err
	}

	if last.Status == models.StatusError {
		expression.Status = models.StatusError
		expression.Error = last.Error
	} else {
		expression.Status = models.StatusDone
		expression.Result = last.Result
	}

	if err := o.db.ExpressionRepo.UpdateExpression(expression.Id, expression); err != nil {
		return err
	}

	var remaining []models.Task
	for _, t := range o.tasks {
		if t.ExpressionId != expression.Id {
			remaining = append(remaining, t)
		}
	}
	o.tasks = remaining

	return nil
}
