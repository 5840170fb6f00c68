package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	internalaws "github.com/shopstack/catalog-api/internal/aws"
	"github.com/shopstack/catalog-api/internal/catalog"
	"github.com/shopstack/catalog-api/internal/config"
	"github.com/shopstack/catalog-api/internal/docstore"
	"github.com/shopstack/catalog-api/internal/handlers"
	"github.com/shopstack/catalog-api/internal/obs"
)

func setupRouter(api *handlers.API) *gin.Engine {
	r := gin.New()
	handlers.Register(r, api)
	return r
}

func buildDocStore(ctx context.Context, cfg config.Config, clients *internalaws.AWSClients) (docstore.Store, error) {
	switch cfg.Backend {
	case config.BackendDynamoDB:
		if cfg.CatalogTable == "" {
			return nil, errors.New("CATALOG_TABLE is required for the dynamodb backend")
		}
		return docstore.NewDynamoStore(clients.DynamoDB, cfg.CatalogTable), nil
	case config.BackendFile:
		return docstore.NewFileStore(cfg.DataDir)
	default:
		return nil, errors.New("unknown DOCSTORE_BACKEND: " + cfg.Backend)
	}
}

func main() {
	obs.InitLogger()
	cfg := config.Load()
	ctx := context.Background()

	// AWS clients are only needed for the dynamodb backend or the event queue.
	var clients *internalaws.AWSClients
	if cfg.Backend == config.BackendDynamoDB || cfg.OrderEventsQueueURL != "" {
		var err error
		clients, err = internalaws.NewAWSClients(ctx, cfg.AWSRegion)
		if err != nil {
			log.Fatalf("failed to init aws clients: %v", err)
		}
	}

	docs, err := buildDocStore(ctx, cfg, clients)
	if err != nil {
		log.Fatalf("failed to init document store: %v", err)
	}

	store := catalog.NewStore(docs)
	if err := store.Seed(ctx); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	var publisher handlers.OrderPublisher
	if cfg.OrderEventsQueueURL != "" {
		publisher = internalaws.NewPublisher(clients.SQS, cfg.OrderEventsQueueURL)
	}

	r := setupRouter(handlers.NewAPI(store, publisher))

	// if environment variable RUN_LOCAL is set to "true", run a local HTTP
	// server for development instead of the Lambda adapter.
	if cfg.RunLocal {
		srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
		go func() {
			obs.Logger.Info("running local server", "addr", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("failed to run local server: %v", err)
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			obs.Logger.Error("shutdown", "err", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
