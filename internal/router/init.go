package router

import (
	"github.com/booklend/booklend/internal/container"
	"github.com/booklend/booklend/internal/infrastructure/crypto"
	pginfra "github.com/booklend/booklend/internal/infrastructure/postgres"
	"github.com/booklend/booklend/internal/infrastructure/redisstore"
	handlers "github.com/booklend/booklend/internal/interface/http"
	"github.com/booklend/booklend/internal/router/modules"
	"github.com/booklend/booklend/internal/usecase"
)

// InitModules wires repositories, use cases, and handlers, and registers
// every feature module with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	cryptoSvc := crypto.New()

	users := pginfra.NewUserRepository(container.GetPGPool())
	authors := pginfra.NewAuthorRepository(container.GetPGPool())
	books := pginfra.NewBookRepository(container.GetPGPool())

	// avoid a typed-nil publisher when RabbitMQ is not configured
	var pub redisstore.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	tokens := redisstore.NewVerificationStore(
		container.GetRedis(),
		pub,
		logger,
		cfg.VerifyEmailURL,
		cfg.MailSendEnabled,
	)

	authUC := usecase.NewAuthUsecase(users, tokens, cryptoSvc, logger)
	authorUC := usecase.NewAuthorUsecase(authors, users, cryptoSvc, logger)
	bookUC := usecase.NewBookUsecase(books, cryptoSvc, logger)
	bookUC.ES = container.GetES()
	bookUC.ESBooksIndex = cfg.ESBooksIndex
	bookUC.GCS = container.GetGCS()
	bookUC.GCSBucket = cfg.GCSBucket

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authUC, container.GetJWT(), logger)))
	r.Add(modules.NewAuthorModule(handlers.NewAuthorHandler(authorUC, logger)))
	r.Add(modules.NewBookModule(handlers.NewBookHandler(bookUC, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
