package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-library/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-library/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-library/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-library/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-library/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-library/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-library/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont-library/internal/usecases"
)

// NewLibraryApp creates and returns a new instance of the library application.
// Extra initializers run before the built-in ones, which lets callers seed configuration.
func NewLibraryApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitBookRepository{},
			&postgres.InitLoanRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},

			&usecases.InitBookService{},
			&usecases.InitLoanService{},
			&usecases.InitRelayOutbox{},
			&usecases.InitNotifyLateLoans{},
		).
		Host(
			&http.LibraryAppServer{},
			&workers.MessageRelay{},
			&workers.LateLoanNotifier{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
