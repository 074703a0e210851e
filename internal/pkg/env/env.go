package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds the key/value pairs read from the .env file at startup.
var Env map[string]string

// GetEnv returns the configured value for key. The .env file wins over
// the process environment; def is the last resort.
func GetEnv(key, def string) string {
	if val, ok := Env[key]; ok {
		return val
	}
	// container and CI setups inject config without an env file
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile locates and loads the .env file. The binary may start
// from the project root or from its cmd directory, so both are tried.
func SetupEnvFile() {
	envFiles := []string{
		".env",
		"../../.env", // from cmd/creatorconnect
		"../../../.env",
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			return
		}
	}

	panic("No .env file found in any of the expected locations")
}

// IsDev reports whether the service runs in development mode.
func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
