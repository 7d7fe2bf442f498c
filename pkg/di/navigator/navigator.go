package navigator_di

import (
	"campus-nav/pkg/http/usecases"
	"campus-nav/pkg/navigation"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New(log *zap.Logger, points []navigation.Point) *usecases.NavigatorService {
	defaults := usecases.DefaultConfig()
	viper.SetDefault("MAX_EDGE_KM", defaults.MaxEdgeKM)
	viper.SetDefault("ALTERNATIVE_ROUTES", defaults.AlternativeRoutes)
	viper.SetDefault("EXPLORER_MAX_DEPTH", defaults.ExplorerMaxDepth)
	viper.SetDefault("EXPLORER_MAX_PATHS", defaults.ExplorerMaxPaths)

	cfg := usecases.Config{
		MaxEdgeKM:         viper.GetFloat64("MAX_EDGE_KM"),
		AlternativeRoutes: viper.GetInt("ALTERNATIVE_ROUTES"),
		ExplorerMaxDepth:  viper.GetInt("EXPLORER_MAX_DEPTH"),
		ExplorerMaxPaths:  viper.GetInt("EXPLORER_MAX_PATHS"),
	}

	return usecases.New(log, points, cfg)
}
