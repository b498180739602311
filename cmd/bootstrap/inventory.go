package bootstrap

import (
	"masterbikes-api/internal/infra/inventory"
	"masterbikes-api/internal/pkg/config"
	"masterbikes-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var InventoryModule = fx.Module("inventory",
	fx.Provide(
		fx.Annotate(
			NewInventoryClient,
			fx.As(new(commands.InventoryGateway)),
		),
	),
)

func NewInventoryClient(cfg config.Config) *inventory.Client {
	return inventory.NewClient(cfg.Inventory)
}
