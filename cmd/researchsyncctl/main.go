// cmd/researchsyncctl/main.go
//
// Operational CLI: schema migration, demo data seeding and the deadline
// reminder job that a scheduler runs once a day.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/researchsync/researchsync/internal/auth"
	"github.com/researchsync/researchsync/internal/config"
	"github.com/researchsync/researchsync/internal/email"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/notify"
	"github.com/researchsync/researchsync/internal/repository"
	"github.com/researchsync/researchsync/internal/service"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(remindCmd)
}

var rootCmd = &cobra.Command{
	Use:   "researchsyncctl",
	Short: "researchsyncctl manages a ResearchSync deployment",
	Long:  `researchsyncctl runs schema migrations, seeds demo data and triggers scheduled jobs against a ResearchSync database.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Apply the database schema for users, workspaces, memberships and tasks.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()

		err := db.AutoMigrate(
			&model.User{},
			&model.Workspace{},
			&model.Membership{},
			&model.Task{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo accounts and a demo workspace",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		db := mustOpenDB()

		userRepo := repository.NewUserRepository(db)
		workspaceRepo := repository.NewWorkspaceRepository(db)
		hasher := auth.NewPasswordHasher()

		professor, err := seedUser(ctx, userRepo, hasher, "ada@example.edu", "Ada", "Lovelace", model.UserTypeProfessor)
		if err != nil {
			log.Fatalf("Failed to seed professor: %v", err)
		}
		if _, err := seedUser(ctx, userRepo, hasher, "grace@example.edu", "Grace", "Hopper", model.UserTypeStudent); err != nil {
			log.Fatalf("Failed to seed student: %v", err)
		}

		now := time.Now().UTC()
		workspace := &model.Workspace{
			Name:         "Demo Research Group",
			Description:  "Seeded workspace for local development",
			CreatorID:    professor.ID,
			IsActive:     true,
			PrivacyLevel: model.PrivacyPrivate,
		}
		owner := &model.Membership{
			UserID:           professor.ID,
			Role:             model.RoleAdmin,
			InvitationStatus: model.InvitationAccepted,
			InvitedAt:        now,
			JoinedAt:         &now,
		}
		if err := workspaceRepo.CreateWithOwner(ctx, workspace, owner); err != nil {
			log.Fatalf("Failed to seed workspace: %v", err)
		}

		fmt.Println("Seed data created (password for demo accounts: changeme123)")
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send deadline reminder emails",
	Long:  `Send a reminder email to the assignee of every open task due within the next 24 hours. Meant to run from cron.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg := config.Load()
		db := mustOpenDB()

		provider := email.ProviderSendgrid
		if cfg.Sendgrid.APIKey == "" && cfg.SMTP.Host != "" {
			provider = email.ProviderSMTP
		}
		emailService, err := email.NewService(cfg, provider)
		if err != nil {
			log.Fatalf("Failed to initialize email service: %v", err)
		}
		notifier := notify.NewEmailNotifier(emailService, cfg.BaseURL)

		workspaceRepo := repository.NewWorkspaceRepository(db)
		membershipRepo := repository.NewMembershipRepository(db)
		userRepo := repository.NewUserRepository(db)
		taskRepo := repository.NewTaskRepository(db)
		access := service.NewAccessService(workspaceRepo, membershipRepo)
		tasks := service.NewTaskService(taskRepo, workspaceRepo, userRepo, access, notifier)

		sent, err := tasks.SendDeadlineReminders(ctx)
		if err != nil {
			log.Fatalf("Failed to send reminders: %v", err)
		}

		fmt.Printf("Sent %d deadline reminders\n", sent)
	},
}

func seedUser(ctx context.Context, repo *repository.UserRepository, hasher *auth.PasswordHasher, emailAddr, first, last string, userType model.UserType) (*model.User, error) {
	hash, err := hasher.Hash("changeme123")
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        emailAddr,
		FirstName:    first,
		LastName:     last,
		UserType:     userType,
		PasswordHash: hash,
		Verified:     true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func mustOpenDB() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := gormlogger.Warn
	if verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
