package components

import (
	"masterbikes-api/internal/handler"
	"masterbikes-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRentalHandler,
		api.NewCartHandler,
	),
	fx.Invoke(handler.NewRouter),
)
