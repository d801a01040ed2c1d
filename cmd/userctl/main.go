// userctl is an administrative helper for managing user accounts
// directly against the database. It is meant to be run on the host
// the server stores its database on.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/centsible/backend/internal/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: userctl delete <username>")
	}

	_ = godotenv.Load()

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dbPath = filepath.Join(".", "data", "finance.db")
	}

	if err := models.Connect(dbPath); err != nil {
		return err
	}

	switch args[0] {
	case "delete":
		if len(args) != 2 {
			return errors.New("usage: userctl delete <username>")
		}
		return deleteUser(args[1])

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// deleteUser removes the user and everything they own.
func deleteUser(username string) error {
	user, err := models.UserByUsername(models.DB, username)
	if err != nil {
		return err
	}

	if err := user.Delete(models.DB); err != nil {
		return err
	}

	log.Info().Str("username", username).Msg("user deleted")
	return nil
}
