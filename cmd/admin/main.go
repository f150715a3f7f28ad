// Command admin provisions client accounts. Registration has no HTTP
// surface; operators create accounts here.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/clothesshop/client-api/internal/auth"
	"github.com/clothesshop/client-api/internal/config"
	"github.com/clothesshop/client-api/internal/database"
	"github.com/clothesshop/client-api/internal/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator tooling for the clothes-shop client API",
	}

	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a client account",
		RunE:  runCreateUser,
	}

	// Flags for non-interactive mode (CI/scripting)
	createUserCmd.Flags().String("email", "", "Account email")
	createUserCmd.Flags().String("password", "", "Account password")
	createUserCmd.Flags().String("first-name", "", "First name")
	createUserCmd.Flags().String("last-name", "", "Last name")

	rootCmd.AddCommand(createUserCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")

	// Interactive form when flags are missing
	if email == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email).
					Validate(func(s string) error {
						if _, err := mail.ParseAddress(strings.TrimSpace(s)); err != nil {
							return fmt.Errorf("a valid email address is required")
						}
						return nil
					}),

				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password).
					Validate(func(s string) error {
						if len(s) < 8 {
							return fmt.Errorf("password must be at least 8 characters")
						}
						return nil
					}),

				huh.NewInput().
					Title("First name").
					Value(&firstName),

				huh.NewInput().
					Title("Last name").
					Value(&lastName),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address %q", email)
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	repo := user.NewRepository(database.NewBunDB(sqlDB))
	created, err := repo.Create(context.Background(), email, passwordHash, firstName, lastName)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created user %s (%s)\n", created.Email, created.ID)
	return nil
}
