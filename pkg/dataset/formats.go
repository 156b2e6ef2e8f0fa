package dataset

import (
	"path/filepath"
	"strings"
)

// Format identifies a dataset file encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file extension to its dataset format. JSON is the
// original interchange format; .bin/.msgpack hold the same records encoded
// with MessagePack.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".bin", ".msgpack":
		return FormatMsgpack
	default:
		return FormatUnknown
	}
}
