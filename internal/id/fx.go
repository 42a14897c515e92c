package id

import "go.uber.org/fx"

// Module provides the line-item identifier generator.
var Module = fx.Module("id",
	fx.Provide(NewGenerator),
)
