package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Println("Warning: JWT_SECRET not set, tokens will not survive restarts safely")
		}
		issuer := os.Getenv("JWT_ISSUER")
		if issuer == "" {
			issuer = "web3jobs"
		}
		ttlHours := 24
		if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				ttlHours = parsed
			}
		}
		authConfig = &AuthConfig{
			JWTSecret: secret,
			Issuer:    issuer,
			TokenTTL:  time.Duration(ttlHours) * time.Hour,
		}
	})
	return authConfig
}
