package env

import (
	"github.com/joho/godotenv"
)

// Load reads a .env file from the working directory into the process
// environment, if one exists. Variables already set win over file values.
// Returns false when no .env file was found.
func Load() bool {
	return godotenv.Load() == nil
}
