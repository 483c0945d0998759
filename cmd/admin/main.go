// Command admin manages dashboard accounts in the system_user table.
//
//	admin hash -password secret
//	admin create -email a@example.com -password secret -name "Site Admin" [-role ADMIN]
//	admin set-password -email a@example.com -password secret
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sitecms/config"
	"sitecms/internal/adapters/auth"
	"sitecms/internal/domain"
	"sitecms/internal/repository/postgres"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "admin:", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: admin <hash|create|set-password> [flags]")
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return errors.New("missing command")
	}
	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	role := fs.String("role", domain.AdminRole, "account role")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		return errors.New("-password is required")
	}

	hasher := auth.NewPasswordVerifier(*cost, false)
	hash, err := hasher.Hash(*password)
	if err != nil {
		return err
	}

	switch cmd {
	case "hash":
		fmt.Fprintln(out, hash)
		return nil
	case "create", "set-password":
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", cmd)
	}

	if strings.TrimSpace(*email) == "" {
		return errors.New("-email is required")
	}

	users, closeDB, err := openUsers(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	if cmd == "create" {
		user := &domain.SystemUser{Email: *email, Password: hash, Name: *name, Role: *role}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		fmt.Fprintf(out, "created user %d (%s)\n", user.ID, user.Email)
		return nil
	}
	if err := users.UpdatePassword(ctx, *email, hash); err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	fmt.Fprintf(out, "password updated for %s\n", *email)
	return nil
}

func openUsers(ctx context.Context) (domain.SystemUserRepository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := postgres.Open(ctx, cfg.DBUrl, postgres.DefaultDBConfig())
	if err != nil {
		return nil, nil, err
	}
	if cfg.RunMigrations {
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return postgres.NewSystemUserRepository(db), func() { _ = db.Close() }, nil
}
