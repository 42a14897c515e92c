package invoice

import (
	"github.com/madisvain/upcount/internal/invoice/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice",
	fx.Provide(repository.NewRepository),
)
