package bootstrap

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Name     string `mapstructure:"name"`
	Eval     string `mapstructure:"eval"`
	Threads  int    `mapstructure:"threads"`
	MoveTime int    `mapstructure:"movetime"`
	Debug    bool   `mapstructure:"debug"`

	Games       int    `mapstructure:"games"`
	Concurrency int    `mapstructure:"concurrency"`
	Size        int    `mapstructure:"size"`
	Depth       int    `mapstructure:"depth"`
	Variant     string `mapstructure:"variant"`
	Caching     bool   `mapstructure:"caching"`
	Ordering    bool   `mapstructure:"ordering"`
	EvalB       string `mapstructure:"eval_b"`
	EngineB     string `mapstructure:"engine_b"`
}

// Setup reads defaults, then the optional config file, then COUNTER_*
// environment variables.
func Setup(cfgPath string) (*Config, error) {
	var v = viper.New()
	v.SetDefault("name", "Counter Othello")
	v.SetDefault("eval", "utility")
	v.SetDefault("threads", 1)
	v.SetDefault("movetime", 0)
	v.SetDefault("debug", false)
	v.SetDefault("games", 20)
	v.SetDefault("concurrency", 4)
	v.SetDefault("size", 8)
	v.SetDefault("depth", 4)
	v.SetDefault("variant", "alphabeta")
	v.SetDefault("caching", true)
	v.SetDefault("ordering", true)
	v.SetDefault("eval_b", "heuristic")
	v.SetDefault("engine_b", "")

	v.SetEnvPrefix("counter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %v: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Threads < 1 {
		return nil, fmt.Errorf("bad threads %v", cfg.Threads)
	}
	return &cfg, nil
}

// NewLogger writes to stderr; stdout belongs to the protocol.
func NewLogger(debug bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
