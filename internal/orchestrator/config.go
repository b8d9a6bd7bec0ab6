package orchestrator

import (
	"os"
	"strconv"
)

type Config struct {
	Address     string
	AddressGRPC string
	PortGRPC    string

	// Время выполнения операции в миллисекундах по символу оператора.
	OperationTimesMs map[string]int64
}

func configFromEnv() *Config {
	config := &Config{
		Address:     "8080",
		AddressGRPC: "localhost",
		PortGRPC:    "5000",
		OperationTimesMs: map[string]int64{
			"+":  1000,
			"-":  1000,
			"*":  1000,
			"/":  1000,
			"**": 1000,
			"%":  1000,
			"%%": 1000,
		},
	}

	if addr := os.Getenv(PortEnv); addr != "" {
		config.Address = addr
	}

	if grpcAddr := os.Getenv(GRPCAddressEnv); grpcAddr != "" {
		config.AddressGRPC = grpcAddr
	}

	if grpcPort := os.Getenv(GRPCPortEnv); grpcPort != "" {
		config.PortGRPC = grpcPort
	}

	operationEnvs := map[string]string{
		"+":  TimeAdditionMsEnv,
		"-":  TimeSubtractionMsEnv,
		"*":  TimeMultiplicationsMsEnv,
		"/":  TimeDivisionsMsEnv,
		"**": TimePowerMsEnv,
		"%":  TimeModuloMsEnv,
		"%%": TimePercentMsEnv,
	}

	for symbol, env := range operationEnvs {
		if val := os.Getenv(env); val != "" {
			if timeMs, err := strconv.ParseInt(val, 10, 64); err == nil {
				config.OperationTimesMs[symbol] = timeMs
			}
		}
	}

	return config
}
