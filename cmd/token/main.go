// Command token issues a JWT for calling the mutating symbol RPCs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"symbol_catalog/internal/platform/config"
	jwtmw "symbol_catalog/internal/platform/jwt"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a config file")
	subject := pflag.StringP("subject", "s", "operator", "token subject")
	ttl := pflag.Duration("ttl", 0, "token lifetime (defaults to auth.token_ttl)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "auth.jwt_secret is not set (SYMBOLS_AUTH_JWT_SECRET)")
		os.Exit(1)
	}

	exp := cfg.Auth.TokenTTL
	if *ttl > 0 {
		exp = *ttl
	}

	token, err := jwtmw.NewGenerator(cfg.Auth.JWTSecret, exp).GenerateToken(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
