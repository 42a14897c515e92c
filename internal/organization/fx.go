package organization

import (
	"github.com/madisvain/upcount/internal/organization/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("organization",
	fx.Provide(repository.NewRepository),
)
