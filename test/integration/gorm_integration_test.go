package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"crm-agent-be/internal/constant"
	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/model"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/repository/specification"
	"crm-agent-be/internal/repository/unitofwork"
	"crm-agent-be/internal/seeder"
	"crm-agent-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

	err = gormDB.AutoMigrate(
		&model.Article{},
		&model.Lead{},
		&model.Case{},
		&model.Conversation{},
		&model.Message{},
	)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.LeadRepository())
	assert.NotNil(t, uow.CaseRepository())
	assert.NotNil(t, uow.ConversationRepository())
	assert.NotNil(t, uow.MessageRepository())
	assert.NotNil(t, uow.ArticleRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Seeding Idempotence", func(t *testing.T) {
		s := seeder.New(uowFactory, logger.NewNopLogger())
		require.NoError(t, s.Seed(context.Background()))

		first, err := uow.ArticleRepository().Count(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, first, int64(3))

		require.NoError(t, s.Seed(context.Background()))
		second, err := uow.ArticleRepository().Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second, "re-running the seeder must not add rows")
	})

	t.Run("Check Transactional Conversation Turn", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		err := txUow.Begin(ctx)
		require.NoError(t, err)
		defer txUow.Rollback()

		userId := "integration-" + uuid.New().String()
		conversation := &entity.Conversation{
			Id:      uuid.New(),
			Channel: constant.ConversationChannelWeb,
			UserId:  &userId,
			Status:  constant.ConversationStatusActive,
		}
		require.NoError(t, txUow.ConversationRepository().Create(ctx, conversation))

		now := time.Now()
		userMsg := &entity.Message{
			Id:             uuid.New(),
			ConversationId: conversation.Id,
			Role:           constant.MessageRoleUser,
			Content:        "hello",
			CreatedAt:      now,
		}
		agentMsg := &entity.Message{
			Id:             uuid.New(),
			ConversationId: conversation.Id,
			Role:           constant.MessageRoleAgent,
			Content:        constant.UnknownIntentReply,
			Metadata:       &entity.MessageMetadata{Actions: []entity.AgentAction{}},
			CreatedAt:      now.Add(1 * time.Millisecond),
		}
		require.NoError(t, txUow.MessageRepository().Create(ctx, userMsg))
		require.NoError(t, txUow.MessageRepository().Create(ctx, agentMsg))
		require.NoError(t, txUow.Commit())

		// Read back through a fresh unit of work, ordered oldest first
		messages, err := uow.MessageRepository().FindAll(ctx,
			specification.ByConversationID{ConversationID: conversation.Id},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, constant.MessageRoleUser, messages[0].Role)
		assert.Equal(t, constant.MessageRoleAgent, messages[1].Role)
		require.NotNil(t, messages[1].Metadata)
	})
}
