package orchestrator

import (
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/krpetrov/go-ltr-calculator/internal/auth"
	"github.com/krpetrov/go-ltr-calculator/internal/database"
	"github.com/krpetrov/go-ltr-calculator/internal/middleware"
	"github.com/krpetrov/go-ltr-calculator/internal/models"
	pb "github.com/krpetrov/go-ltr-calculator/internal/proto"
	"github.com/krpetrov/go-ltr-calculator/pkg/calculation"
	"google.golang.org/grpc"
)

type Orchestrator struct {
	pb.UnimplementedOrchestratorServiceServer

	config     *Config
	db         *database.Database
	Ts         *auth.TokenStore
	calc       *calculation.Calculator
	planner    *planner
	tasks      []models.Task
	nextTaskId int64
	mu         sync.Mutex
}

func New(db *database.Database) *Orchestrator {
	calc := calculation.New()

	return &Orchestrator{
		config:     configFromEnv(),
		db:         db,
		Ts:         auth.NewTokenStore(),
		calc:       calc,
		planner:    newPlanner(calc.Operators()),
		tasks:      make([]models.Task, 0),
		nextTaskId: 1,
	}
}

// operationTime возвращает время выполнения операции.
func (o *Orchestrator) operationTime(symbol string) int64 {
	return o.config.OperationTimesMs[symbol]
}

// RunServer запускает HTTP-сервер и gRPC-сервер для агентов.
func (o *Orchestrator) RunServer() error {
	mux := http.NewServeMux()
	mux.HandleFunc(RegisterRoute, o.RegisterHandler)
	mux.HandleFunc(LoginRoute, o.LoginHandler)
	mux.HandleFunc(CalculateRoute, middleware.AuthMiddleware(o.Ts, o.CalculateHandler))
	mux.HandleFunc(ExpressionsRoute, middleware.AuthMiddleware(o.Ts, o.ExpressionsHandler))
	mux.HandleFunc(ExpressionIdRoute, middleware.AuthMiddleware(o.Ts, o.ExpressionIdHandler))

	lis, err := net.Listen("tcp", net.JoinHostPort(o.config.AddressGRPC, o.config.PortGRPC))
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	pb.RegisterOrchestratorServiceServer(grpcServer, o)

	go func() {
		log.Printf("gRPC server running on: %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC server error: %v", err)
		}
	}()

	log.Printf("Server running on: %s", o.config.Address)
	return http.ListenAndServe(":"+o.config.Address, mux)
}
