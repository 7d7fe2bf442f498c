package dataset_di

import (
	"campus-nav/pkg/dataset"
	di_config "campus-nav/pkg/di/config"
	"campus-nav/pkg/navigation"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New(_ *di_config.Config, log *zap.Logger) ([]navigation.Point, error) {
	viper.SetDefault("DATASET_PATH", "data/campus_locations.json")
	path := viper.GetString("DATASET_PATH")

	points, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	log.Info("loaded campus dataset",
		zap.String("path", path),
		zap.Int("locations", len(points)))

	return points, nil
}
