package bootstrap

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the env file before the fx graph is built, so the zap logger
// is not available yet. ENV_FILE overrides the default ".env" lookup.
func LoadEnv() {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil {
		log.Printf("No %s file found, using system environment variables", file)
	}
}
