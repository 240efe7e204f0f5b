package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loantrack/store"
)

func newRootCmd(log *logrus.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "loantrack",
		Short:        "Loan tracking REST backend",
		SilenceUsage: true,
		// Running the binary with no subcommand starts the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(log)
		},
	}
	root.AddCommand(newServeCmd(log), newMigrateCmd(log), newCreateUserCmd(log))
	return root
}

func newServeCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(log)
		},
	}
}

func runServe(log *logrus.Logger) error {
	cfg := NewConfig()
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	a := &app{cfg: cfg, log: log, store: store.New(db)}
	r := gin.Default()
	a.setupRoutes(r)
	log.WithField("port", cfg.Port).Info("starting server")
	return r.Run(":" + cfg.Port)
}

func newMigrateCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := NewConfig()
			if _, err := openDB(cfg); err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			log.WithField("db", cfg.DBPath).Info("migration completed")
			return nil
		},
	}
}

func newCreateUserCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "create-user <email> <username> <password>",
		Short: "Create a user directly in the database",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := NewConfig()
			db, err := openDB(cfg)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			hash, err := hashPassword(args[2])
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			user, err := store.New(db).CreateUser(args[0], args[1], hash)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user created")
			return nil
		},
	}
}
