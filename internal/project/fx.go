package project

import (
	"github.com/madisvain/upcount/internal/project/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("project",
	fx.Provide(repository.NewRepository),
)
