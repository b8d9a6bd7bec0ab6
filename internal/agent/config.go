package agent

import (
	"os"
	"strconv"
)

const (
	OrchestratorGRPCEnv = "ORCHESTRATOR_GRPC"
	ComputingPowerEnv   = "COMPUTING_POWER"
)

type Config struct {
	OrchestratorGRPC string
	ComputingPower   int
}

func configFromEnv() *Config {
	config := &Config{
		OrchestratorGRPC: "localhost:5000",
		ComputingPower:   2,
	}

	if addr := os.Getenv(OrchestratorGRPCEnv); addr != "" {
		config.OrchestratorGRPC = addr
	}

	if val := os.Getenv(ComputingPowerEnv); val != "" {
		if power, err := strconv.Atoi(val); err == nil && power > 0 {
			config.ComputingPower = power
		}
	}

	return config
}
