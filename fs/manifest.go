package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// AssetTypeIndex is the manifest type of generated index files.
const AssetTypeIndex = "index"

// Manifest describes the generated data files so clients can verify and
// cache them.
type Manifest struct {
	Version string  `json:"version"`
	Assets  []Asset `json:"assets"`
}

// Asset is one generated file.
type Asset struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Path   string `json:"path"`
	Bytes  int    `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// NewAsset describes data written to path.
func NewAsset(id, path string, data []byte) Asset {
	sum := sha256.Sum256(data)
	return Asset{
		ID:     id,
		Type:   AssetTypeIndex,
		Path:   path,
		Bytes:  len(data),
		SHA256: hex.EncodeToString(sum[:]),
	}
}

// NewManifest builds a manifest whose version changes whenever any asset
// digest changes.
func NewManifest(assets ...Asset) *Manifest {
	h := xxhash.New()
	for _, a := range assets {
		_, _ = h.WriteString(a.SHA256)
	}
	return &Manifest{
		Version: fmt.Sprintf("%016x", h.Sum64()),
		Assets:  assets,
	}
}
