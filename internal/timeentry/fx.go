package timeentry

import (
	"github.com/madisvain/upcount/internal/timeentry/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("timeentry",
	fx.Provide(repository.NewRepository),
)
