package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"quickq-backend/internal/feedback"
	"quickq-backend/internal/health"
	"quickq-backend/internal/jobs"
	"quickq-backend/internal/llm"
	"quickq-backend/internal/llm/vertex"
	"quickq-backend/internal/questions"
	"quickq-backend/internal/server"
	"quickq-backend/internal/shared/config"
	"quickq-backend/internal/storage/mongodb"
)

// App holds shared dependencies. Fields may be replaced (fake generator,
// in-memory repos) before WireRouter is called; tests rely on this.
type App struct {
	Config config.Config
	Router *gin.Engine

	Store      *mongodb.Store
	Generator  llm.Generator
	StoreProbe health.Pinger
	ModelProbe health.ModelChecker

	JobsRepo      jobs.Repo
	QuestionsRepo questions.Repo

	JobsService      *jobs.Service
	QuestionsService *questions.Service
	FeedbackService  *feedback.Service
	HealthService    *health.Service
}

// Build prepares production dependencies without wiring routes.
func Build(cfg config.Config) *App {
	store := mongodb.New(cfg.MongoURI, cfg.DatabaseName)
	model := vertex.NewClient(cfg.ProjectID, cfg.Region, cfg.DefaultModel)

	return &App{
		Config:        cfg,
		Store:         store,
		Generator:     model,
		StoreProbe:    store,
		ModelProbe:    model,
		JobsRepo:      &jobs.MongoRepo{Store: store},
		QuestionsRepo: &questions.MongoRepo{Store: store, Database: cfg.QuestionsDatabase},
	}
}

// WireRouter assembles services and handlers from the current dependency
// fields and builds the router.
func (a *App) WireRouter() {
	a.JobsService = &jobs.Service{Repo: a.JobsRepo, Gen: a.Generator}
	a.QuestionsService = &questions.Service{Repo: a.QuestionsRepo, Gen: a.Generator}
	a.FeedbackService = &feedback.Service{Gen: a.Generator}
	a.HealthService = &health.Service{
		Store:           a.StoreProbe,
		Model:           a.ModelProbe,
		ProjectID:       a.Config.ProjectID,
		Region:          a.Config.Region,
		DatabaseName:    a.Config.DatabaseName,
		DefaultModel:    a.Config.DefaultModel,
		MongoConfigured: a.Config.MongoURI != "",
	}

	a.Router = server.NewRouter(server.RouterDeps{
		Config:          a.Config,
		HealthHandler:   health.NewHandler(a.HealthService),
		JobsHandler:     jobs.NewHandler(a.JobsService),
		QuestionHandler: questions.NewHandler(a.QuestionsService),
		FeedbackHandler: feedback.NewHandler(a.FeedbackService),
	})
}

// Close releases long-lived resources.
func (a *App) Close(ctx context.Context) error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close(ctx)
}
