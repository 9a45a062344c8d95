// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var envLoaded = false

// LoadEnvFile loads environment variables from the file given with
// --env-file, or from .env in the working directory when present.
func LoadEnvFile() {
	if envLoaded {
		return
	}
	envLoaded = true

	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			envFile := args[i+1]
			fmt.Printf("Loading environment variables from file: %s\n", envFile)
			if err := godotenv.Overload(envFile); err != nil {
				fmt.Printf("Failed to load env file: %s\n", err)
			}
			return
		}
	}
	_ = godotenv.Load()
}

func GetEnv(key string, fallback ...string) string {
	LoadEnvFile()
	if v := os.Getenv(key); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}
