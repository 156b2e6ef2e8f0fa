// Package dataset loads the static restaurant dataset the catalog is built
// from. Records arrive as a flat array, either JSON or MessagePack; the
// loader only checks structural shape, normalization happens in the catalog.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/danigit7/Inzaghi-FoodAI/internal/logger"
	"github.com/danigit7/Inzaghi-FoodAI/pkg/catalog"
)

var dlog = logger.New("dataset")

// Load reads a dataset file, picking the decoder from the file extension.
func Load(path string) ([]*catalog.Restaurant, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unsupported dataset format %q (want .json, .bin or .msgpack)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var restaurants []*catalog.Restaurant
	switch format {
	case FormatJSON:
		restaurants, err = DecodeJSON(f)
	case FormatMsgpack:
		restaurants, err = DecodeMsgpack(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	dlog.Debugf("loaded %d records from %s (%s)", len(restaurants), path, format)
	return restaurants, nil
}

// DecodeJSON decodes a JSON array of restaurant records.
func DecodeJSON(r io.Reader) ([]*catalog.Restaurant, error) {
	var restaurants []*catalog.Restaurant
	if err := json.NewDecoder(r).Decode(&restaurants); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return restaurants, nil
}

// DecodeMsgpack decodes a MessagePack array of restaurant records.
func DecodeMsgpack(r io.Reader) ([]*catalog.Restaurant, error) {
	var restaurants []*catalog.Restaurant
	if err := msgpack.NewDecoder(r).Decode(&restaurants); err != nil {
		return nil, fmt.Errorf("decode msgpack: %w", err)
	}
	return restaurants, nil
}

// Convert reads the dataset at src and writes it to dst as MessagePack.
// Useful for shipping a compact binary copy of a hand-edited JSON dataset.
func Convert(src, dst string) error {
	restaurants, err := Load(src)
	if err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if err := msgpack.NewEncoder(f).Encode(restaurants); err != nil {
		f.Close()
		return fmt.Errorf("encode msgpack: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	dlog.Infof("converted %d records: %s -> %s", len(restaurants), src, dst)
	return nil
}
