package tag

import (
	"github.com/madisvain/upcount/internal/tag/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("tag",
	fx.Provide(repository.NewRepository),
)
