package setup

import (
	"github.com/msgboard-dev/msgboard/internal/config"
	"github.com/msgboard-dev/msgboard/internal/handler"
	"github.com/msgboard-dev/msgboard/internal/service"
	"github.com/msgboard-dev/msgboard/internal/storage/pg"
	"github.com/msgboard-dev/msgboard/internal/web"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
	Web     *web.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	board := service.NewBoard(storage)
	thread := service.NewThread(storage, cfg.Public.RecentThreadsLimit, cfg.Public.RepliesPreviewLimit)

	h := handler.New(board, thread, cfg)
	webHandler := web.New(thread)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
		Web:     webHandler,
	}, nil
}
