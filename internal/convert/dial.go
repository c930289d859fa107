// Package convert loads dial images: PNG, JPEG and WebP files, Wallpaper
// Engine .tex textures, and entries stored inside a scene.pkg archive.
package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"strings"

	"clock3d/internal/utils"

	_ "golang.org/x/image/webp"
)

// SplitPkgPath splits "archive.pkg:materials/dial.tex" into the archive
// path and the entry name. ok is false for plain file paths.
func SplitPkgPath(p string) (pkgPath, entry string, ok bool) {
	i := strings.Index(p, ".pkg:")
	if i < 0 {
		return "", "", false
	}
	return p[:i+len(".pkg")], p[i+len(".pkg:"):], true
}

// LoadDialImage reads an image from a file or a package entry. The format
// is chosen by extension: .tex goes through the texture decoder, anything
// else through the registered image decoders.
func LoadDialImage(p string) (image.Image, error) {
	var (
		data []byte
		name string
		err  error
	)

	if pkgPath, entry, ok := SplitPkgPath(p); ok {
		name = entry
		data, err = ReadPkgEntry(utils.ResolveAssetPath(pkgPath), entry)
	} else {
		name = p
		data, err = os.ReadFile(utils.ResolveAssetPath(p))
	}
	if err != nil {
		return nil, fmt.Errorf("load dial %s: %w", p, err)
	}

	return DecodeImage(name, data)
}

// DecodeImage decodes data named name.
func DecodeImage(name string, data []byte) (image.Image, error) {
	if strings.EqualFold(path.Ext(name), ".tex") {
		utils.Debug("Decoding texture: %s", name)
		img, err := DecodeTex(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return img, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	utils.Debug("Decoded %s image %s (%dx%d)", format, name, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}
