package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Logger             lager.Logger
	RuntimeAPI         RuntimeAPIConfig
	ServerPort         int
	ServerHost         string
	ListenAddr         string
	EnableHealthServer bool
}

type RuntimeAPIConfig struct {
	Scheme    string
	Authority string
}

// NewConfigFromEnv reads the configuration from the environment. Values in a
// .env file in the working directory are loaded first but never override
// variables that are already set.
func NewConfigFromEnv() (cfg Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprintf("%v", r))
		}
	}()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, errors.Wrap(err, "failed to load .env")
	}

	cfg = Config{
		Logger: getDefaultLogger(),
		RuntimeAPI: RuntimeAPIConfig{
			Scheme:    getEnvWithDefaultString("RUNTIME_API_SCHEME", "http"),
			Authority: getEnvWithDefaultString("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001"),
		},
		ServerPort:         getEnvWithDefaultInt("PORT", 8881),
		ServerHost:         getEnvWithDefaultString("LISTEN_HOST", ""),
		EnableHealthServer: getEnvWithDefaultBool("ENABLE_HEALTH_SERVER", true),
	}
	cfg.ListenAddr = fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	return cfg, nil
}

func getEnvWithDefaultInt(k string, def int) int {
	v := getEnvWithDefaultString(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	return n
}

func getEnvWithDefaultBool(k string, def bool) bool {
	v := getEnvWithDefaultString(k, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(err)
	}
	return b
}

func getEnvWithDefaultString(k string, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getDefaultLogger() lager.Logger {
	logger := lager.NewLogger("runtime-poller")
	logLevel := lager.INFO
	if strings.ToLower(os.Getenv("LOG_LEVEL")) == "debug" {
		logLevel = lager.DEBUG
	}
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, logLevel))

	return logger
}
