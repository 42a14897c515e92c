package taxrate

import (
	"github.com/madisvain/upcount/internal/taxrate/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("taxrate",
	fx.Provide(repository.NewRepository),
)
