package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// DashboardPasscodeHash is the bcrypt hash the login endpoint compares
	// the shared dashboard passcode against.
	DashboardPasscodeHash string

	// EntryLocationOverwrite controls whether a stock entry for an existing
	// material overwrites its stored rack/bin (last write wins) or keeps
	// the first recorded location.
	EntryLocationOverwrite bool

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "trimventory-backend")
	viper.SetDefault("DASHBOARD_PASSCODE_HASH", "")
	viper.SetDefault("DASHBOARD_PASSCODE", "")
	viper.SetDefault("ENTRY_LOCATION_OVERWRITE", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DashboardPasscodeHash = viper.GetString("DASHBOARD_PASSCODE_HASH")
	if cfg.DashboardPasscodeHash == "" {
		// Development convenience: derive the hash from a plaintext passcode.
		if passcode := viper.GetString("DASHBOARD_PASSCODE"); passcode != "" {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
			if hashErr != nil {
				return nil, hashErr
			}
			cfg.DashboardPasscodeHash = string(hash)
			log.Println("Warning: DASHBOARD_PASSCODE_HASH not set. Derived from DASHBOARD_PASSCODE; set the hash directly in production.")
		} else {
			log.Println("Warning: No dashboard passcode configured. Login will reject all attempts.")
		}
	}

	cfg.EntryLocationOverwrite = viper.GetBool("ENTRY_LOCATION_OVERWRITE")

	originsStr := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(originsStr, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
