package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"campus-nav/pkg/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locations.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		path := writeDataset(t, `{
			"locations": [
				{"name": "Main Gate", "lat": 6.5158, "lon": 3.3966},
				{"name": "University Library", "lat": 6.5176, "lon": 3.3941}
			]
		}`)

		points, err := Load(path)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, "Main Gate", points[0].Name)
		assert.Equal(t, 6.5158, points[0].Lat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeDataset(t, `{"locations": [`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("empty dataset", func(t *testing.T) {
		path := writeDataset(t, `{"locations": []}`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		points  []navigation.Point
		wantErr bool
	}{
		{
			name:   "valid",
			points: []navigation.Point{{Name: "Main Gate", Lat: 6.5158, Lon: 3.3966}},
		},
		{
			name: "duplicate name",
			points: []navigation.Point{
				{Name: "Main Gate", Lat: 6.5158, Lon: 3.3966},
				{Name: "Main Gate", Lat: 6.5176, Lon: 3.3941},
			},
			wantErr: true,
		},
		{
			name:    "blank name",
			points:  []navigation.Point{{Name: "", Lat: 6.5158, Lon: 3.3966}},
			wantErr: true,
		},
		{
			name:    "latitude out of range",
			points:  []navigation.Point{{Name: "Broken", Lat: 91, Lon: 0}},
			wantErr: true,
		},
		{
			name:    "longitude out of range",
			points:  []navigation.Point{{Name: "Broken", Lat: 0, Lon: -181}},
			wantErr: true,
		},
		{
			name:    "empty",
			points:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.points)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
