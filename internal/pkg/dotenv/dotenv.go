package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	var portFlag string
	var userFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&userFlag, "user", "", "Player id (overrides GAME_USER_ID environment variable)")
	flag.Parse()

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}

	if userFlag != "" {
		err := os.Setenv("GAME_USER_ID", userFlag)
		if err != nil {
			return fmt.Errorf("failed to set GAME_USER_ID environment variable: %w", err)
		}
	}
	return nil
}
