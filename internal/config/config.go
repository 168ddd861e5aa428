package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/benbeisheim/chessrules/internal/model"
)

type Config struct {
	Addr          string
	AllowOrigins  []string
	PathBlocking  bool
	MatchInterval time.Duration
}

func Default() Config {
	return Config{
		Addr:          ":3000",
		AllowOrigins:  []string{"http://localhost:5173"},
		PathBlocking:  false,
		MatchInterval: 1 * time.Second,
	}
}

// FromEnv starts from Default and applies any CHESS_* variables that are set.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv("CHESS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("CHESS_ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = splitList(v)
	}
	if v := getenv("CHESS_PATH_BLOCKING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("CHESS_PATH_BLOCKING: %w", err)
		}
		cfg.PathBlocking = b
	}
	if v := getenv("CHESS_MATCH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("CHESS_MATCH_INTERVAL: %w", err)
		}
		cfg.MatchInterval = d
	}
	return cfg, cfg.Validate()
}

// Load reads the environment and then command-line flags, flags winning.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return cfg, err
	}
	origins := strings.Join(cfg.AllowOrigins, ",")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&origins, "origins", origins, "comma separated CORS and websocket origins")
	fs.BoolVar(&cfg.PathBlocking, "path-blocking", cfg.PathBlocking, "sliding pieces cannot pass through other pieces")
	fs.DurationVar(&cfg.MatchInterval, "match-interval", cfg.MatchInterval, "how often the matchmaking queue is paired")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.AllowOrigins = splitList(origins)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.MatchInterval <= 0 {
		return fmt.Errorf("match interval must be positive, got %s", c.MatchInterval)
	}
	return nil
}

func (c Config) BoardOptions() []model.BoardOption {
	if c.PathBlocking {
		return []model.BoardOption{model.WithPathBlocking()}
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
