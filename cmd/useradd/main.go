// Command useradd provisions a dashboard account in the MongoDB user store
// used when AUTH_BACKEND=mongo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/service"
	"github.com/graviti/shiptracker/internal/infrastructure/config"
	mongostore "github.com/graviti/shiptracker/internal/infrastructure/db/mongo"
)

func printHelp() {
	fmt.Println(`Usage:
  useradd -username NAME [-password SECRET]

The password may instead be given in SHIPTRACKER_PASSWORD.
MongoDB is reached through MONGO_URI and MONGO_DB (a .env file is read if present).`)
}

func main() {
	fs := flag.NewFlagSet("useradd", flag.ExitOnError)
	fs.Usage = printHelp
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "account password (default $SHIPTRACKER_PASSWORD)")
	_ = fs.Parse(os.Args[1:])

	if *password == "" {
		*password = os.Getenv("SHIPTRACKER_PASSWORD")
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "username and password are required")
		printHelp()
		os.Exit(2)
	}

	if err := run(*username, *password); err != nil {
		fmt.Fprintln(os.Stderr, "useradd:", err)
		os.Exit(1)
	}
	fmt.Printf("user %q created\n", *username)
}

func run(username, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mc, err := config.LoadMongo(ctx)
	if err != nil {
		return err
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: mc.URI, Database: mc.Database})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	users := mongostore.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}

	_, err = service.NewUserService(users).Register(ctx, username, password)
	if errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("user %q already exists", username)
	}
	return err
}
