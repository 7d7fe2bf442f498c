//go:build wireinject

//go:generate wire
package di

import (
	"campus-nav/pkg/di/config"
	shortcontext "campus-nav/pkg/di/context"
	dataset_di "campus-nav/pkg/di/dataset"
	logger_di "campus-nav/pkg/di/logger"
	navigator_di "campus-nav/pkg/di/navigator"
	navHttp "campus-nav/pkg/http"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	dataset_di.New,
	navigator_di.New,
)

var navigatorSet = wire.NewSet(
	defaultSet,
	NewNavigationService,
	NewNavigationAPIServer,
)

func InitializeNavigationServer() (*navHttp.Server, func(), error) {

	panic(wire.Build(navigatorSet))
}
