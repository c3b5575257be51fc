package bootstrap

import (
	"crm-agent-be/internal/config"
	"crm-agent-be/internal/controller"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/repository/memory"
	"crm-agent-be/internal/repository/unitofwork"
	"crm-agent-be/internal/seeder"
	"crm-agent-be/internal/service"
	"crm-agent-be/pkg/rag/search"
	"crm-agent-be/pkg/salesforce"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController      controller.IAgentController
	SalesforceController controller.ISalesforceController
	AdminController      controller.IAdminController

	// Background services (run by main)
	ConsumerService service.IConsumerService

	// Shared infrastructure
	Seeder *seeder.Seeder
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain components
	modeStore := salesforce.NewModeStore(cfg.CRM.Mode)
	adapter := salesforce.NewAdapter(modeStore, sysLogger)

	queryCache := memory.NewQueryCache()
	searchService := search.NewService(uowFactory, queryCache, sysLogger)

	publisherService := service.NewPublisherService(cfg.Agent.ActionTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Agent.ActionTopic, sysLogger)

	// 4. Services
	agentService := service.NewAgentService(
		uowFactory,
		searchService,
		adapter,
		publisherService,
		sysLogger,
	)
	crmService := service.NewCRMService(uowFactory)
	adminService := service.NewAdminService(modeStore, sysLogger)

	// 5. Controllers
	return &Container{
		AgentController:      controller.NewAgentController(agentService),
		SalesforceController: controller.NewSalesforceController(crmService),
		AdminController:      controller.NewAdminController(adminService),

		ConsumerService: consumerService,

		Seeder: seeder.New(uowFactory, sysLogger),
		Logger: sysLogger,
	}
}
