package config

import "os"

// Config is everything the server reads from the environment. Defaults
// keep a bare `go run` working against an in-memory slot store.
type Config struct {
	Port string

	// Either DatabaseURL or the discrete DB_* fields; all empty means no
	// database and snapshots stay in memory for the process lifetime.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret     string
	AdminUsername string
	AdminPassword string

	// ShopPhone is the WhatsApp number orders are handed off to.
	ShopPhone string
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     getEnv("JWT_SECRET", "gueto-fya-dev-secret"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin22"),
		ShopPhone:     getEnv("SHOP_PHONE", "11977809124"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
