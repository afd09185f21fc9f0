package media

import (
	"errors"
	"fmt"
)

// AssetError reports a font, image or sound that could not be loaded.
// These are fatal at startup.
type AssetError struct {
	Op   string // e.g. "load image", "decode sound"
	Path string // file path, or the name of an embedded asset
	Err  error
}

func (e *AssetError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("asset: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("asset: %s: %v", e.Op, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// NewAssetError wraps err as an AssetError.
func NewAssetError(op, path string, err error) *AssetError {
	return &AssetError{Op: op, Path: path, Err: err}
}

// IsAssetError checks if err is, or wraps, an AssetError.
func IsAssetError(err error) bool {
	var assetErr *AssetError
	return errors.As(err, &assetErr)
}
