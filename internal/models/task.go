package models

import "encoding/json"

// Task — одна двоичная операция над двумя аргументами. Аргумент может
// быть числовым литералом или ссылкой "task<id>" на результат другой
// задачи; Operation — символ из таблицы операторов ("+", "**", "%%", ...).
type Task struct {
	Id            int64   `json:"id"`
	ExpressionId  int64   `json:"expression_id"`
	Arg1          string  `json:"arg1"`
	Arg2          string  `json:"arg2"`
	Operation     string  `json:"operation"`
	OperationTime int64   `json:"operation_time"`
	Status        Status  `json:"status"`
	Result        float64 `json:"result,omitempty"`
	Error         string  `json:"error,omitempty"`
}

func (t *Task) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

type TaskResult struct {
	Id     int64   `json:"id"`
	Result float64 `json:"result"`
	Error  string  `json:"error,omitempty"`
}

func (r *TaskResult) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
