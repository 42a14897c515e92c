package client

import (
	"github.com/madisvain/upcount/internal/client/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("client",
	fx.Provide(repository.NewRepository),
)
