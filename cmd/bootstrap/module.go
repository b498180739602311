package bootstrap

import (
	"masterbikes-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	InventoryModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
