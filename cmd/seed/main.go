package main

import (
	"context"
	"log"
	"time"

	"github.com/harold2001/financer-manager-app/internal/models"
	"github.com/harold2001/financer-manager-app/internal/repository"
	"github.com/harold2001/financer-manager-app/pkg/auth"
	"github.com/harold2001/financer-manager-app/pkg/config"
	"github.com/harold2001/financer-manager-app/pkg/logger"
	"github.com/harold2001/financer-manager-app/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@financer.local"
	demoPassword = "demo-password"
	demoName     = "Demo User"
)

type sampleTransaction struct {
	txType      models.TransactionType
	amount      float64
	category    string
	daysAgo     int
	description string
}

var samples = []sampleTransaction{
	{models.TypeIncome, 2500, "Salary", 25, "Monthly salary"},
	{models.TypeIncome, 400, "Freelance", 12, "Landing page project"},
	{models.TypeIncome, 75, "Gift", 5, "Birthday gift"},
	{models.TypeExpense, 320.40, "Bills & Utilities", 23, "Rent utilities share"},
	{models.TypeExpense, 84.15, "Food & Dining", 20, "Weekly groceries"},
	{models.TypeExpense, 42.50, "Transportation", 18, "Monthly transit pass"},
	{models.TypeExpense, 96.30, "Food & Dining", 13, "Weekly groceries"},
	{models.TypeExpense, 28.99, "Entertainment", 11, "Streaming subscriptions"},
	{models.TypeExpense, 150, "Healthcare", 9, "Dentist appointment"},
	{models.TypeExpense, 61.75, "Food & Dining", 6, "Dinner out"},
	{models.TypeExpense, 210, "Shopping", 4, "Running shoes"},
	{models.TypeExpense, 35.20, "Food & Dining", 1, "Lunch with friends"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(cfg.Database.DSN()); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	appLogger.Info("Starting database seeding")

	user, err := ensureDemoUser(ctx, userRepo)
	if err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	existing, err := txRepo.ListByUser(ctx, user.ID)
	if err != nil {
		appLogger.Fatal("Failed to check existing transactions", zap.Error(err))
	}
	if len(existing) > 0 {
		appLogger.Info("Demo user already has transactions, nothing to do",
			zap.Int("count", len(existing)))
		return
	}

	now := time.Now()
	transactions := make([]*models.Transaction, 0, len(samples))
	for _, s := range samples {
		date := now.AddDate(0, 0, -s.daysAgo)
		transactions = append(transactions, &models.Transaction{
			ID:          uuid.New(),
			UserID:      user.ID,
			Type:        s.txType,
			Amount:      s.amount,
			Category:    s.category,
			Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Description: s.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := txRepo.CreateBatch(ctx, transactions); err != nil {
		appLogger.Fatal("Failed to insert sample transactions", zap.Error(err))
	}

	appLogger.Info("Database seeding completed",
		zap.String("user", demoEmail),
		zap.Int("transactions", len(transactions)),
	)
}

func ensureDemoUser(ctx context.Context, userRepo *repository.UserRepository) (*models.User, error) {
	if user, err := userRepo.GetByEmail(ctx, demoEmail); err == nil {
		return user, nil
	}

	hashedPassword, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:          uuid.New(),
		DisplayName: demoName,
		Email:       demoEmail,
		Password:    hashedPassword,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
