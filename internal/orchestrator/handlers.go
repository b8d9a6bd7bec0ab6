package orchestrator

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/krpetrov/go-ltr-calculator/internal/middleware"
	"github.com/krpetrov/go-ltr-calculator/internal/models"
	"github.com/krpetrov/go-ltr-calculator/internal/util"
)

// handleCalculateRequest сохраняет выражение и строит для него задачи.
// Выражение без операций (просто число) завершается сразу, без агентов.
func (o *Orchestrator) handleCalculateRequest(req models.Request, userId int64) (int64, error) {
	exp := models.Expression{
		Expr:   req.Expression,
		Status: models.StatusPending,
		UserID: userId,
	}

	id, err := o.db.ExpressionRepo.InsertExpression(exp)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expression: %v", err)
	}

	tasks, ref, err := o.planExpression(req.Expression, id)
	if err != nil {
		return 0, fmt.Errorf("failed to create tasks: %v", err)
	}

	if len(tasks) == 0 {
		value, err := strconv.ParseFloat(ref, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to finish expression: %v", err)
		}

		exp.Status = models.StatusDone
		exp.Result = value
		if err := o.db.ExpressionRepo.UpdateExpression(id, exp); err != nil {
			return 0, fmt.Errorf("failed to finish expression: %v", err)
		}

		return id, nil
	}

	for _, task := range tasks {
		o.tasks = append(o.tasks, task)
		log.Printf("Added task id: %d; ExpressionId: %d; Arg1: %s; Arg2: %s; Operation: %s; OperationTime: %d;",
			task.Id, task.ExpressionId, task.Arg1, task.Arg2, task.Operation, task.OperationTime)
	}

	return id, nil
}

// CalculateHandler обрабатывает HTTP-запрос на вычисление выражения
func (o *Orchestrator) CalculateHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("CalculateHandler: started")
	defer log.Printf("CalculateHandler: finished")

	o.mu.Lock()
	defer o.mu.Unlock()

	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CalculateHandler: failed to decode request body: %v", err)
		util.SendError(w, "unprocessable entity", http.StatusUnprocessableEntity)
		return
	}

	if req.Expression == "" {
		util.SendError(w, "unprocessable entity", http.StatusUnprocessableEntity)
		return
	}

	log.Printf("CalculateHandler: processing expression: %s", req.Expression)

	if err := o.calc.Validate(req.Expression); err != nil {
		log.Printf("CalculateHandler: invalid expression: %v", err)
		util.SendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	userId, ok := middleware.GetUserID(r)
	if !ok {
		util.SendError(w, "user ID not found in context", http.StatusUnauthorized)
		return
	}

	expressionId, err := o.handleCalculateRequest(req, userId)
	if err != nil {
		log.Printf("CalculateHandler: %v", err)
		util.SendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	util.SendResponse(w, &models.AcceptedResponse{Id: expressionId}, http.StatusAccepted)
}

// ExpressionsHandler возвращает список выражений пользователя
func (o *Orchestrator) ExpressionsHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("ExpressionsHandler: started")
	defer log.Printf("ExpressionsHandler: finished")

	userId, ok := middleware.GetUserID(r)
	if !ok {
		util.SendError(w, "user ID not found in context", http.StatusUnauthorized)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	response, err := o.db.ExpressionRepo.GetExpressionsByUser(userId)
	if err != nil {
		util.SendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if response != nil {
		sort.Slice(response, func(i, j int) bool {
			return response[i].Id < response[j].Id
		})
	} else {
		response = make([]models.Expression, 0)
	}

	util.SendResponse(w, &models.ExpressionsResponse{Expressions: response}, http.StatusOK)
}

// ExpressionIdHandler возвращает выражение по его ID
func (o *Orchestrator) ExpressionIdHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("ExpressionIdHandler: started")
	defer log.Printf("ExpressionIdHandler: finished")

	o.mu.Lock()
	defer o.mu.Unlock()

	idStr := strings.TrimPrefix(r.URL.Path, ExpressionIdRoute)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		util.SendError(w, "invalid ID", http.StatusBadRequest)
		return
	}

	userId, ok := middleware.GetUserID(r)
	if !ok {
		util.SendError(w, "user ID not found in context", http.StatusUnauthorized)
		return
	}

	expression, err := o.db.ExpressionRepo.GetExpressionByIDByUser(id, userId)
	if err != nil {
		util.SendError(w, "expression not found", http.StatusNotFound)
		return
	}

	util.SendResponse(w, &expression, http.StatusOK)
}

// Хендлер регистрации
func (o *Orchestrator) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	o.mu.Lock()
	defer o.mu.Unlock()

	log.Printf("RegisterHandler: received %s request", r.Method)

	if r.Method != http.MethodPost {
		log.Printf("RegisterHandler: invalid method %s", r.Method)
		util.SendError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("RegisterHandler: failed to decode request body: %v", err)
		util.SendError(w, "unprocessable entity", http.StatusUnprocessableEntity)
		return
	}

	if req.Login == "" || req.Password == "" {
		util.SendError(w, "login or password can't be empty", http.StatusUnauthorized)
		return
	}

	log.Printf("RegisterHandler: registering user with login %s", req.Login)

	if err := o.db.UserRepo.AddUser(req.Login, req.Password); err != nil {
		log.Printf("RegisterHandler: failed to add user %s: %v", req.Login, err)
		util.SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("RegisterHandler: successfully registered user %s", req.Login)

	w.WriteHeader(http.StatusOK)
}

// Хендлер логина
func (o *Orchestrator) LoginHandler(w http.ResponseWriter, r *http.Request) {
	o.mu.Lock()
	defer o.mu.Unlock()

	log.Printf("LoginHandler: received %s request", r.Method)

	if r.Method != http.MethodPost {
		log.Printf("LoginHandler: invalid method %s", r.Method)
		util.SendError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("LoginHandler: failed to decode request body: %v", err)
		util.SendError(w, "unprocessable entity", http.StatusUnprocessableEntity)
		return
	}

	log.Printf("LoginHandler: attempting to login user %s", req.Login)

	user, err := o.db.UserRepo.GetUser(req.Login, req.Password)
	if err != nil {
		log.Printf("LoginHandler: failed to authenticate user %s: %v", req.Login, err)
		util.SendError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	token, err := o.Ts.AddToken(user.Id)
	if err != nil {
		log.Printf("LoginHandler: failed to create token for user %s: %v", req.Login, err)
		util.SendError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	log.Printf("LoginHandler: token created for user %s", req.Login)

	util.SendResponse(w, &models.AuthResponse{Token: token}, http.StatusOK)
}
