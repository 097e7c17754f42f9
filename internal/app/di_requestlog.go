package app

import (
	"fmt"
	"sync"

	"github.com/pinkoot/AI-Assistant/internal/database"
	requestLogRepository "github.com/pinkoot/AI-Assistant/internal/requestlog/repository"
	requestLogUseCase "github.com/pinkoot/AI-Assistant/internal/requestlog/usecase"
)

type requestLogComponents struct {
	repo    requestLogUseCase.RequestLogRepository
	useCase requestLogUseCase.RequestLogUseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// RequestLogRepository returns the journal repository for the configured driver.
func (c *Container) RequestLogRepository() (requestLogUseCase.RequestLogRepository, error) {
	c.requestLog.repoInit.Do(func() {
		repo, err := c.initRequestLogRepository()
		c.setInit("requestLogRepo", err)
		c.requestLog.repo = repo
	})
	if err := c.initError("requestLogRepo"); err != nil {
		return nil, err
	}
	return c.requestLog.repo, nil
}

// RequestLogUseCase returns the journal use case, or nil when REQUEST_LOG_ENABLED is false.
func (c *Container) RequestLogUseCase() (requestLogUseCase.RequestLogUseCase, error) {
	c.requestLog.useCaseInit.Do(func() {
		useCase, err := c.initRequestLogUseCase()
		c.setInit("requestLogUseCase", err)
		c.requestLog.useCase = useCase
	})
	if err := c.initError("requestLogUseCase"); err != nil {
		return nil, err
	}
	return c.requestLog.useCase, nil
}

func (c *Container) initRequestLogRepository() (requestLogUseCase.RequestLogRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for request log repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return requestLogRepository.NewPostgreSQLRequestLogRepository(db), nil
	case database.DriverMySQL:
		return requestLogRepository.NewMySQLRequestLogRepository(db), nil
	case database.DriverSQLite:
		return requestLogRepository.NewSQLiteRequestLogRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initRequestLogUseCase() (requestLogUseCase.RequestLogUseCase, error) {
	if !c.config.RequestLogEnabled {
		return nil, nil
	}

	repo, err := c.RequestLogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get request log repository for request log use case: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for request log use case: %w", err)
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for request log use case: %w", err)
	}

	useCase := requestLogUseCase.NewRequestLogUseCase(txManager, repo)
	return requestLogUseCase.NewRequestLogUseCaseWithMetrics(useCase, bm), nil
}
