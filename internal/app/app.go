package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/pricing"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/usecases"
)

// NewFareAssistApp creates and returns a new instance of the FareAssist application.
func NewFareAssistApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&time.InitCurrentTimeProvider{},
			&pricing.InitPriceTable{},

			// Postgres registers the session store when DB_HOST is set;
			// the memory store only fills the gap.
			&postgres.InitDB{},
			&postgres.InitSessionRepository{},
			&memory.InitSessionRepository{},

			&pubsub.InitClient{},
			&pubsub.InitAuditPublisher{},
			&modelrunner.InitAssistantClient{},

			&assistant.InitDispatchAuditor{},
			&assistant.InitToolRegistry{},
			&assistant.InitToolDispatcher{},
			&mcp.InitToolServer{},

			&usecases.InitSessionLocks{},
			&usecases.InitChatTurn{},
			&usecases.InitListTools{},
			&usecases.InitListModels{},
			&usecases.InitListSessionMessages{},
			&usecases.InitDeleteSession{},
			&usecases.InitExpireIdleSessions{},
		).
		Host(
			&http.FareAssistServer{},
			&workers.SessionJanitor{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
