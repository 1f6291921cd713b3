package airports

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
	"github.com/marthasimmons/airports-endpoint/src/internal/hashing"
	"github.com/marthasimmons/airports-endpoint/src/internal/utils"
)

//go:embed seed/airports.json
var embeddedSeed []byte

// EmbeddedSource names the built-in dataset in logs and CLI output.
const EmbeddedSource = "embedded:airports.json"

// Seed is a decoded dataset together with where it came from.
type Seed struct {
	Source   string
	Checksum string
	Size     int64
	Airports []Airport
}

// DecodeSeed reads a full dataset from r. format is "json" or "yaml".
func DecodeSeed(r io.Reader, format string) (*Seed, error) {
	proxy := hashing.NewMD5ReaderProxy(r)
	data, err := io.ReadAll(proxy)
	if err != nil {
		return nil, errors.NewSeedError("failed to read seed", err)
	}

	var list []Airport
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &list)
	case "json":
		err = json.Unmarshal(data, &list)
	default:
		return nil, errors.NewSeedError(fmt.Sprintf("unsupported seed format %q", format), nil)
	}
	if err != nil {
		return nil, errors.NewSeedError("failed to decode seed", err)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		return nil, errors.NewSeedError("failed to checksum seed", err)
	}

	return &Seed{
		Checksum: checksum,
		Size:     proxy.Size(),
		Airports: list,
	}, nil
}

// LoadSeedFile decodes a JSON or YAML dataset, picking the decoder from the
// file extension.
func LoadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSeedError("failed to open seed file", err)
	}
	defer utils.CloseOrWarn(f)

	seed, err := DecodeSeed(f, utils.DataFormat(path))
	if err != nil {
		return nil, err
	}
	seed.Source = path
	return seed, nil
}

// EmbeddedSeed decodes the dataset compiled into the binary.
func EmbeddedSeed() (*Seed, error) {
	seed, err := DecodeSeed(bytes.NewReader(embeddedSeed), "json")
	if err != nil {
		return nil, err
	}
	seed.Source = EmbeddedSource
	return seed, nil
}

// LoadSeed loads path, or the embedded dataset when path is empty.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return EmbeddedSeed()
	}
	return LoadSeedFile(path)
}
