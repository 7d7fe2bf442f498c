package di

import (
	"context"

	navHttp "campus-nav/pkg/http"
	"campus-nav/pkg/http/http-router/controllers"
	"campus-nav/pkg/http/usecases"

	"go.uber.org/zap"
)

func NewNavigationService(navigator *usecases.NavigatorService) controllers.NavigationService {
	return navigator
}

func NewNavigationAPIServer(ctx context.Context, log *zap.Logger,
	navigationService controllers.NavigationService) (*navHttp.Server, error) {
	api := navHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, navigationService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
