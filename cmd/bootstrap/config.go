package bootstrap

import (
	"spacehub/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

func NewConfig() (config.Config, error) {
	// A missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()
	return config.LoadConfig()
}
