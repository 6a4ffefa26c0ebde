package config

import (
	"log"
	"os"
	"strconv"
)

// AdminConfig carries the moderation credential and the meetup threshold.
// Loaded once at startup and handed to the services that need it.
type AdminConfig struct {
	// Password is the shared admin secret, compared in constant time.
	Password string
	// PasswordHash, when set, takes precedence over Password and is
	// checked with bcrypt.
	PasswordHash string
	// MeetupThreshold is the interest count at which a story becomes
	// meetup-ready.
	MeetupThreshold int
}

func LoadAdminConfig() AdminConfig {
	cfg := AdminConfig{
		Password:        os.Getenv("ADMIN_PASSWORD"),
		PasswordHash:    os.Getenv("ADMIN_PASSWORD_HASH"),
		MeetupThreshold: 3,
	}

	if v := os.Getenv("MEETUP_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Printf("Ignoring invalid MEETUP_THRESHOLD %q", v)
		} else {
			cfg.MeetupThreshold = n
		}
	}

	if cfg.Password == "" && cfg.PasswordHash == "" {
		log.Println("Warning: no admin password configured; moderation endpoints will reject everything")
	}

	return cfg
}
