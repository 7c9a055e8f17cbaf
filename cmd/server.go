package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/themis-legal/themis-backend/api"
	"github.com/themis-legal/themis-backend/infra"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases"
	"github.com/themis-legal/themis-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetStringEnv("ENV", "development"),
		Port:           utils.GetRequiredStringEnv("PORT"),
		AppUrl:         utils.GetStringEnv("THEMIS_APP_URL", ""),
		DefaultTimeout: time.Duration(utils.GetIntEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetStringEnv("PG_CONNECTION_STRING", ""),
		Database:         "themis",
		Hostname:         utils.GetStringEnv("PG_HOSTNAME", ""),
		Password:         utils.GetStringEnv("PG_PASSWORD", ""),
		Port:             utils.GetStringEnv("PG_PORT", "5432"),
		User:             utils.GetStringEnv("PG_USER", ""),
		SslMode:          utils.GetStringEnv("PG_SSL_MODE", "prefer"),
	}

	logger := utils.NewLogger(utils.GetStringEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	jwtSigningKey := infra.ParseOrGenerateSigningKey(
		utils.GetStringEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""))

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "could not create postgres connection pool")
	}
	defer pool.Close()

	assistantRepository, err := repositories.NewAssistantRepository(ctx,
		utils.GetStringEnv("GEMINI_API_KEY", ""),
		utils.GetStringEnv("GEMINI_MODEL", "gemini-2.0-flash"))
	if err != nil {
		return errors.Wrap(err, "could not create assistant client")
	}

	repos := repositories.NewRepositories(jwtSigningKey, pool, assistantRepository)
	uc := usecases.NewUsecases(repos,
		usecases.WithDocumentsBucketUrl(utils.GetStringEnv("DOCUMENTS_BUCKET_URL",
			"file://./tempFiles/documents?create_dir=true")),
	)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	auth := api.NewAuthentication(uc.NewValidateCredentials())
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, fmt.Sprintf("starting server on port %s", apiConfig.Port))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the app: "+err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
