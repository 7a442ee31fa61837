package router

import (
	"github.com/oksasatya/go-job-board/internal/application"
	"github.com/oksasatya/go-job-board/internal/container"
	repo "github.com/oksasatya/go-job-board/internal/domain/repository"
	"github.com/oksasatya/go-job-board/internal/infrastructure/cache"
	"github.com/oksasatya/go-job-board/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-job-board/internal/infrastructure/postgres"
	"github.com/oksasatya/go-job-board/internal/infrastructure/search"
	"github.com/oksasatya/go-job-board/internal/infrastructure/storage"
	handlers "github.com/oksasatya/go-job-board/internal/interface/http"
	"github.com/oksasatya/go-job-board/internal/router/modules"
	"github.com/oksasatya/go-job-board/pkg/helpers"
)

// Repositories groups the store implementations selected at startup.
type Repositories struct {
	Users     repo.UserRepository
	Companies repo.CompanyRepository
	Jobs      repo.JobRepository
	SavedJobs repo.SavedJobRepository
}

func buildRepositories() Repositories {
	if container.GetConfig().UseMemoryStore() || container.GetPGPool() == nil {
		s := memory.New()
		return Repositories{Users: s.Users(), Companies: s.Companies(), Jobs: s.Jobs(), SavedJobs: s.SavedJobs()}
	}
	pool := container.GetPGPool()
	return Repositories{
		Users:     pginfra.NewUserRepository(pool),
		Companies: pginfra.NewCompanyRepository(pool),
		Jobs:      pginfra.NewJobRepository(pool),
		SavedJobs: pginfra.NewSavedJobRepository(pool),
	}
}

// Optional ports stay nil interfaces when their client is missing.

func emailPublisher() application.EmailPublisher {
	if !container.GetConfig().MailSendEnabled || container.GetRabbitPub() == nil {
		return nil
	}
	return container.GetRabbitPub()
}

func jobIndexer() application.JobIndexer {
	if container.GetES() == nil {
		return nil
	}
	return search.NewJobIndex(container.GetES(), container.GetConfig().ESJobsIndex)
}

func suggestionCache() application.SuggestionCache {
	if container.GetRedis() == nil {
		return nil
	}
	return cache.NewSuggestionCache(container.GetRedis(), container.GetConfig().SuggestCacheTTL)
}

func logoStorage() application.LogoStorage {
	cfg := container.GetConfig()
	if container.GetGCS() == nil || cfg.GCSBucket == "" {
		return nil
	}
	return storage.NewLogoStore(container.GetGCS(), cfg.GCSBucket)
}

// InitModules builds services and handlers from the container and registers
// every feature module. Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	repos := buildRepositories()

	authSvc := application.NewAuthService(repos.Users, jwt, emailPublisher(), cfg.AppName, logger)
	jobSvc := application.NewJobService(repos.Jobs, repos.Companies, jobIndexer(), suggestionCache(), logger)
	companySvc := application.NewCompanyService(repos.Companies, logoStorage(), cfg.LogoMaxBytes, logger)
	savedSvc := application.NewSavedJobService(repos.SavedJobs, repos.Jobs)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewHealthModule(container.GetPGPool(), container.GetRedis(), container.GetES()))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, cookies, logger)))
	r.Add(modules.NewJobModule(handlers.NewJobHandler(jobSvc, savedSvc, logger), jwt))
	r.Add(modules.NewCompanyModule(handlers.NewCompanyHandler(companySvc, logger), jwt))
	r.Add(modules.NewSavedJobModule(handlers.NewSavedJobHandler(savedSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Use(modules.CountResponses)
		r.Add(modules.NewDebugModule(cfg.Env == "production"))
	}
}
