package integration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	"studybuddy-be/internal/entity"
	"studybuddy-be/internal/repository/specification"
	"studybuddy-be/internal/repository/unitofwork"
	"studybuddy-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.StudySessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Study Session Repository", func(t *testing.T) {
		count, err := uow.StudySessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Study session count: %d", count)
	})

	t.Run("Create And Find Study Session", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		session := &entity.StudySession{
			Id:        sessionId,
			Type:      "quiz",
			Title:     "Quiz Session",
			Result:    json.RawMessage(`{"text":"1. What is ATP?"}`),
			CreatedAt: time.Now(),
		}

		err = uow.StudySessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		found, err := uow.StudySessionRepository().FindOne(ctx,
			specification.ByID{ID: sessionId},
			specification.ByType{Type: "quiz"},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "Quiz Session", found.Title)
			assert.JSONEq(t, `{"text":"1. What is ATP?"}`, string(found.Result))
		}

		// Type mismatch yields no row, not an error.
		missing, err := uow.StudySessionRepository().FindOne(ctx,
			specification.ByID{ID: sessionId},
			specification.ByType{Type: "flashcards"},
		)
		assert.NoError(t, err)
		assert.Nil(t, missing)

		t.Log("Successfully created and queried a study session in a transaction")
	})
}
