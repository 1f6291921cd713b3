package airports

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
)

func TestEmbeddedSeed(t *testing.T) {
	seed, err := EmbeddedSeed()
	require.NoError(t, err)

	assert.Equal(t, EmbeddedSource, seed.Source)
	assert.Len(t, seed.Checksum, 32)
	assert.Equal(t, int64(len(embeddedSeed)), seed.Size)
	assert.GreaterOrEqual(t, len(seed.Airports), 20)

	dir, err := NewDirectory(seed.Airports)
	require.NoError(t, err)

	yjuk, err := dir.Get("YJUK")
	require.NoError(t, err)
	assert.Equal(t, Airport{
		ICAO:    "YJUK",
		Name:    "Tjukurla Airport",
		State:   "Western-Australia",
		Country: "AU",
		Lat:     -24.3707103729,
		Lon:     128.7393341064,
		TZ:      "Australia/Perth",
	}, yjuk)

	_, err = dir.Get("YJDA")
	assert.NoError(t, err)
}

func TestDecodeSeed_YAML(t *testing.T) {
	data := `
- icao: YSSY
  iata: SYD
  name: Sydney Kingsford Smith International Airport
  city: Sydney
  state: New-South-Wales
  country: AU
  elevation: 21
  lat: -33.9461
  lon: 151.177
  tz: Australia/Sydney
- icao: YMML
  name: Melbourne International Airport
  city: Melbourne
`
	seed, err := DecodeSeed(strings.NewReader(data), "yaml")
	require.NoError(t, err)
	require.Len(t, seed.Airports, 2)

	assert.Equal(t, "SYD", seed.Airports[0].IATA)
	assert.Equal(t, 21.0, seed.Airports[0].Elevation)
	assert.Equal(t, -33.9461, seed.Airports[0].Lat)
	assert.Equal(t, "Melbourne", seed.Airports[1].City)
	assert.Equal(t, int64(len(data)), seed.Size)
}

func TestDecodeSeed_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{name: "broken json", data: `[{"icao":`, format: "json"},
		{name: "json object instead of list", data: `{"icao":"YSSY"}`, format: "json"},
		{name: "unsupported format", data: `[]`, format: "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeed(strings.NewReader(tt.data), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrSeed)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "airports.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"icao":"YPPH","name":"Perth","city":"Perth"}]`), 0644))

	yamlPath := filepath.Join(tmpDir, "airports.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- icao: YPAD\n  name: Adelaide\n  city: Adelaide\n"), 0644))

	seed, err := LoadSeed(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, jsonPath, seed.Source)
	assert.Equal(t, "YPPH", seed.Airports[0].ICAO)

	seed, err = LoadSeed(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "YPAD", seed.Airports[0].ICAO)

	_, err = LoadSeed(filepath.Join(tmpDir, "missing.json"))
	assert.ErrorIs(t, err, errors.ErrSeed)
}

func TestLoadSeed_EmptyPathIsEmbedded(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, seed.Source)
}
