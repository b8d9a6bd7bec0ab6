package orchestrator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/krpetrov/go-ltr-calculator/internal/database"
	"github.com/krpetrov/go-ltr-calculator/internal/middleware"
	"github.com/krpetrov/go-ltr-calculator/internal/orchestrator"
	pb "github.com/krpetrov/go-ltr-calculator/internal/proto"
)

func registerAndLogin(t *testing.T, o *orchestrator.Orchestrator) string {
	t.Helper()

	registerReq := httptest.NewRequest(http.MethodPost, orchestrator.RegisterRoute, bytes.NewBufferString(`{"login":"test","password":"1234"}`))
	registerW := httptest.NewRecorder()
	o.RegisterHandler(registerW, registerReq)
	if registerW.Code != http.StatusOK {
		t.Fatalf("register failed: status = %d, body = %s", registerW.Code, registerW.Body.String())
	}

	loginReq := httptest.NewRequest(http.MethodPost, orchestrator.LoginRoute, bytes.NewBufferString(`{"login":"test","password":"1234"}`))
	loginW := httptest.NewRecorder()
	o.LoginHandler(loginW, loginReq)
	if loginW.Code != http.StatusOK {
		t.Fatalf("login failed: status = %d, body = %s", loginW.Code, loginW.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}

	if err := json.Unmarshal(loginW.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}

	return resp.Token
}

func postExpression(t *testing.T, o *orchestrator.Orchestrator, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, orchestrator.CalculateRoute, bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	handler := middleware.AuthMiddleware(o.Ts, o.CalculateHandler)
	handler.ServeHTTP(w, req)

	return w
}

func TestCalculateRoute(t *testing.T) {
	cases := []struct {
		name       string
		statusCode int
		request    string
		want       string
	}{
		{
			name:       "Valid expression",
			statusCode: http.StatusAccepted,
			request:    `{"expression": "2+2"}`,
			want:       `{"id":1}`,
		},
		{
			name:       "Bare number completes without tasks",
			statusCode: http.StatusAccepted,
			request:    `{"expression": "42"}`,
			want:       `{"id":1}`,
		},
		{
			name:       "Custom operators accepted",
			statusCode: http.StatusAccepted,
			request:    `{"expression": "200 %% 50 ** 2"}`,
			want:       `{"id":1}`,
		},
		{
			name:       "Invalid JSON",
			statusCode: http.StatusUnprocessableEntity,
			request:    `{"expression": 2+2}`,
			want:       `{"error":"unprocessable entity"}`,
		},
		{
			name:       "Invalid expression",
			statusCode: http.StatusUnprocessableEntity,
			request:    `{"expression": "2+2-"}`,
			want:       `{"error":"expression syntax error: \"2+2-\""}`,
		},
		{
			name:       "Unbalanced brackets",
			statusCode: http.StatusUnprocessableEntity,
			request:    `{"expression": "(10+20))))"}`,
			want:       `{"error":"bracket pairing error"}`,
		},
		{
			name:       "Empty expression",
			statusCode: http.StatusUnprocessableEntity,
			request:    `{"expression": ""}`,
			want:       `{"error":"unprocessable entity"}`,
		},
		{
			name:       "Malformed JSON",
			statusCode: http.StatusUnprocessableEntity,
			request:    `{"expression": "2+2"`,
			want:       `{"error":"unprocessable entity"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := database.NewInMemoryDatabase()
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			o := orchestrator.New(db)
			token := registerAndLogin(t, o)

			w := postExpression(t, o, token, tc.request)

			if status := w.Code; status != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, status)
			}

			if got := w.Body.String(); got != tc.want {
				t.Errorf("Expected body %s, got %s", tc.want, got)
			}
		})
	}
}

// Полный цикл: выражение 2+3*4 должно разложиться на цепочку задач
// (2+3), затем (task1*4) — строго слева направо, без приоритета.
func TestTaskFlow(t *testing.T) {
	db, err := database.NewInMemoryDatabase()
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	o := orchestrator.New(db)
	token := registerAndLogin(t, o)
	ctx := context.Background()

	if w := postExpression(t, o, token, `{"expression": "2+3*4"}`); w.Code != http.StatusAccepted {
		t.Fatalf("calculate failed: status = %d, body = %s", w.Code, w.Body.String())
	}

	resp, err := o.FetchTask(ctx, &pb.TaskRequest{})
	if err != nil {
		t.Fatalf("FetchTask failed: %v", err)
	}

	first := resp.Task
	if diff := cmp.Diff([]string{"2", "+", "3"}, []string{first.Arg1, first.Operation, first.Arg2}); diff != "" {
		t.Errorf("first task mismatch (-want +got):\n%s", diff)
	}

	// Вторая задача ссылается на первую и пока недоступна
	if _, err := o.FetchTask(ctx, &pb.TaskRequest{}); err == nil {
		t.Fatalf("FetchTask should have no available tasks while task %d is computing", first.Id)
	}

	if _, err := o.SendResult(ctx, &pb.TaskResult{Id: first.Id, Result: 5}); err != nil {
		t.Fatalf("SendResult failed: %v", err)
	}

	resp, err = o.FetchTask(ctx, &pb.TaskRequest{})
	if err != nil {
		t.Fatalf("FetchTask failed: %v", err)
	}

	second := resp.Task
	if diff := cmp.Diff([]string{"5", "*", "4"}, []string{second.Arg1, second.Operation, second.Arg2}); diff != "" {
		t.Errorf("second task mismatch (-want +got):\n%s", diff)
	}

	if _, err := o.SendResult(ctx, &pb.TaskResult{Id: second.Id, Result: 20}); err != nil {
		t.Fatalf("SendResult failed: %v", err)
	}

	expression, err := db.ExpressionRepo.GetExpressionByID(1)
	if err != nil {
		t.Fatalf("failed to load expression: %v", err)
	}

	if expression.Status != "done" || expression.Result != 20 {
		t.Errorf("expression = %+v, want status done, result 20", expression)
	}
}

func TestTaskFlowError(t *testing.T) {
	db, err := database.NewInMemoryDatabase()
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	o := orchestrator.New(db)
	token := registerAndLogin(t, o)
	ctx := context.Background()

	if w := postExpression(t, o, token, `{"expression": "1/0+5"}`); w.Code != http.StatusAccepted {
		t.Fatalf("calculate failed: status = %d, body = %s", w.Code, w.Body.String())
	}

	resp, err := o.FetchTask(ctx, &pb.TaskRequest{})
	if err != nil {
		t.Fatalf("FetchTask failed: %v", err)
	}

	if _, err := o.SendResult(ctx, &pb.TaskResult{Id: resp.Task.Id, Error: "division by zero"}); err != nil {
		t.Fatalf("SendResult failed: %v", err)
	}

	expression, err := db.ExpressionRepo.GetExpressionByID(1)
	if err != nil {
		t.Fatalf("failed to load expression: %v", err)
	}

	if expression.Status != "error" || expression.Error != "division by zero" {
		t.Errorf("expression = %+v, want status error, error division by zero", expression)
	}

	// Оставшиеся задачи выражения сняты
	if _, err := o.FetchTask(ctx, &pb.TaskRequest{}); err == nil {
		t.Errorf("FetchTask returned a task for a failed expression")
	}
}

func TestExpressionsHandler(t *testing.T) {
	cases := []struct {
		name        string
		expressions []string
		want        string
	}{
		{
			name:        "One valid expression",
			expressions: []string{`{"expression": "2+2"}`},
			want:        `{"expressions":[{"id":1,"expression":"2+2","status":"pending","result":0}]}`,
		},
		{
			name:        "Multiple valid expressions",
			expressions: []string{`{"expression": "2+2"}`, `{"expression": "3*3"}`},
			want:        `{"expressions":[{"id":1,"expression":"2+2","status":"pending","result":0},{"id":2,"expression":"3*3","status":"pending","result":0}]}`,
		},
		{
			name:        "Bare number is done right away",
			expressions: []string{`{"expression": "42"}`},
			want:        `{"expressions":[{"id":1,"expression":"42","status":"done","result":42}]}`,
		},
		{
			name:        "Empty list",
			expressions: []string{},
			want:        `{"expressions":[]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := database.NewInMemoryDatabase()
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			o := orchestrator.New(db)
			token := registerAndLogin(t, o)

			for _, expr := range tc.expressions {
				if w := postExpression(t, o, token, expr); w.Code != http.StatusAccepted {
					t.Fatalf("calculate failed: status = %d, body = %s", w.Code, w.Body.String())
				}
			}

			req := httptest.NewRequest(http.MethodGet, orchestrator.ExpressionsRoute, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			handler := middleware.AuthMiddleware(o.Ts, o.ExpressionsHandler)
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
			}

			var got, want map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("Failed to unmarshal response body: %v", err)
			}
			if err := json.Unmarshal([]byte(tc.want), &want); err != nil {
				t.Fatalf("Failed to unmarshal expected body: %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Expressions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpressionIdHandler(t *testing.T) {
	cases := []struct {
		name       string
		id         int
		statusCode int
		want       string
	}{
		{
			name:       "Valid expression ID",
			id:         1,
			statusCode: http.StatusOK,
			want:       `{"id":1,"expression":"2+2","status":"pending","result":0}`,
		},
		{
			name:       "Invalid expression ID",
			id:         999,
			statusCode: http.StatusNotFound,
			want:       `{"error":"expression not found"}`,
		},
		{
			name:       "Negative ID",
			id:         -1,
			statusCode: http.StatusNotFound,
			want:       `{"error":"expression not found"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := database.NewInMemoryDatabase()
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			o := orchestrator.New(db)
			token := registerAndLogin(t, o)

			if w := postExpression(t, o, token, `{"expression": "2+2"}`); w.Code != http.StatusAccepted {
				t.Fatalf("calculate failed: status = %d, body = %s", w.Code, w.Body.String())
			}

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("%s%d", orchestrator.ExpressionIdRoute, tc.id), nil)
			req.Header.Set("Authorization", "Bearer "+token)

			handler := middleware.AuthMiddleware(o.Ts, o.ExpressionIdHandler)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if status := w.Code; status != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, status)
			}

			var got, want map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("Failed to unmarshal response body: %v", err)
			}
			if err := json.Unmarshal([]byte(tc.want), &want); err != nil {
				t.Fatalf("Failed to unmarshal expected body: %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Expression mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
