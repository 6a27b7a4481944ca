// Command token prints an HS256 bearer token accepted by the server.
//
//	APP_TOKEN_SIGN_KEY=... APP_TOKEN_ISSUER=... token -sub alice -ttl 1h
//
// Flags override the environment.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/utils"
)

type tokenConfig struct {
	SignKey  string        `env:"APP_TOKEN_SIGN_KEY"`
	Issuer   string        `env:"APP_TOKEN_ISSUER"`
	Subject  string        `env:"TOKEN_SUBJECT" envDefault:"notebook-user"`
	Duration time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

func main() {
	log := logger.NewLogger("token")

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	token, err := utils.GenerateJWTToken(cfg.Issuer, cfg.Subject, cfg.Duration, cfg.SignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}

	log.Debug().
		Str("sub", cfg.Subject).
		Time("expires_at", token.ExpiresAt.Time).
		Msg("token generated")

	fmt.Println(token.SignedString)
}

func parseConfig(args []string) (tokenConfig, error) {
	cfg, err := env.ParseAs[tokenConfig]()
	if err != nil {
		return tokenConfig{}, fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.StringVar(&cfg.SignKey, "key", cfg.SignKey, "HS256 sign key")
	fs.StringVar(&cfg.Issuer, "iss", cfg.Issuer, "Token issuer")
	fs.StringVar(&cfg.Subject, "sub", cfg.Subject, "Token subject")
	fs.DurationVar(&cfg.Duration, "ttl", cfg.Duration, "Token lifetime")

	if err = fs.Parse(args); err != nil {
		return tokenConfig{}, err
	}

	return cfg, nil
}
