package convert

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"clock3d/internal/utils"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"
)

// ErrBadTexture is returned for .tex data that cannot be decoded.
var ErrBadTexture = errors.New("bad texture")

// TexFormat is the pixel format stored in a TEXV0005 header.
type TexFormat uint32

const (
	FormatRGBA8888 TexFormat = 0
	FormatDXT5     TexFormat = 4
	FormatDXT3     TexFormat = 6
	FormatDXT1     TexFormat = 7
	FormatRG88     TexFormat = 8
	FormatR8       TexFormat = 9
)

func (f TexFormat) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatDXT5:
		return "DXT5"
	case FormatDXT3:
		return "DXT3"
	case FormatDXT1:
		return "DXT1"
	case FormatRG88:
		return "RG88"
	case FormatR8:
		return "R8"
	}
	return fmt.Sprintf("format(%d)", uint32(f))
}

const (
	texMagic     = "TEXV0005"
	texInfoMagic = "TEXI0001"

	// maxTexSide bounds each mipmap dimension, so RGBA buffers stay below 1 GiB.
	maxTexSide = 16384
)

// TexHeader describes a texture before its first mipmap is decoded.
type TexHeader struct {
	Format     TexFormat
	Flags      uint32
	TexWidth   uint32
	TexHeight  uint32
	Width      uint32
	Height     uint32
	Container  string
	ImageCount uint32
}

type texReader struct {
	r   *bytes.Reader
	err error
}

func (t *texReader) u32() uint32 {
	var v uint32
	if t.err == nil {
		t.err = binary.Read(t.r, binary.LittleEndian, &v)
	}
	return v
}

// magic reads an n-byte tag followed by a NUL.
func (t *texReader) magic(n int) string {
	if t.err != nil {
		return ""
	}
	b := make([]byte, n+1)
	if _, err := io.ReadFull(t.r, b); err != nil {
		t.err = err
		return ""
	}
	return string(bytes.TrimRight(b, "\x00"))
}

func (t *texReader) bytes(n uint32) []byte {
	if t.err != nil {
		return nil
	}
	if int64(n) > int64(t.r.Len()) {
		t.err = fmt.Errorf("%w: block of %d bytes overruns file", ErrBadTexture, n)
		return nil
	}
	b := make([]byte, n)
	_, t.err = io.ReadFull(t.r, b)
	return b
}

func readTexHeader(t *texReader) (TexHeader, error) {
	var h TexHeader
	if m := t.magic(8); t.err == nil && m != texMagic {
		return h, fmt.Errorf("%w: invalid magic %q", ErrBadTexture, m)
	}
	if m := t.magic(8); t.err == nil && m != texInfoMagic {
		return h, fmt.Errorf("%w: invalid info magic %q", ErrBadTexture, m)
	}

	h.Format = TexFormat(t.u32())
	h.Flags = t.u32()
	h.TexWidth = t.u32()
	h.TexHeight = t.u32()
	h.Width = t.u32()
	h.Height = t.u32()
	t.u32()

	h.Container = t.magic(8)
	h.ImageCount = t.u32()
	if h.Container == "TEXB0003" {
		// FreeImage format id
		t.u32()
	}

	if t.err != nil {
		return h, fmt.Errorf("%w: truncated header: %v", ErrBadTexture, t.err)
	}
	switch h.Container {
	case "TEXB0001", "TEXB0002", "TEXB0003":
	default:
		return h, fmt.Errorf("%w: unsupported container %q", ErrBadTexture, h.Container)
	}
	if h.ImageCount == 0 {
		return h, fmt.Errorf("%w: no image in texture", ErrBadTexture)
	}
	return h, nil
}

// ReadTexHeader parses only the header of a .tex file.
func ReadTexHeader(data []byte) (TexHeader, error) {
	return readTexHeader(&texReader{r: bytes.NewReader(data)})
}

// DecodeTex decodes the first mipmap of the first image in a TEXV0005
// texture and crops it to the declared image size.
func DecodeTex(data []byte) (image.Image, error) {
	t := &texReader{r: bytes.NewReader(data)}
	h, err := readTexHeader(t)
	if err != nil {
		return nil, err
	}

	mipmapCount := t.u32()
	if t.err == nil && mipmapCount == 0 {
		return nil, fmt.Errorf("%w: image has no mipmaps", ErrBadTexture)
	}

	mW, mH := t.u32(), t.u32()
	if t.err == nil && (mW == 0 || mH == 0 || mW > maxTexSide || mH > maxTexSide) {
		return nil, fmt.Errorf("%w: mipmap size %dx%d out of range", ErrBadTexture, mW, mH)
	}
	var isLZ4 bool
	var decompressedSize uint32
	if h.Container != "TEXB0001" {
		isLZ4 = t.u32() == 1
		decompressedSize = t.u32()
	}
	data = t.bytes(t.u32())
	if t.err != nil {
		if errors.Is(t.err, ErrBadTexture) {
			return nil, t.err
		}
		return nil, fmt.Errorf("%w: truncated mipmap: %v", ErrBadTexture, t.err)
	}

	utils.Debug("    Format: %s, Mip: %dx%d, Target Size: %dx%d", h.Format, mW, mH, h.Width, h.Height)

	if isLZ4 {
		if int64(decompressedSize) > int64(mW)*int64(mH)*4 {
			return nil, fmt.Errorf("%w: lz4 size %d exceeds a %dx%d mipmap", ErrBadTexture, decompressedSize, mW, mH)
		}
		utils.Debug("    Decompressing LZ4: %d -> %d", len(data), decompressedSize)
		decoded := make([]byte, decompressedSize)
		n, err := lz4.UncompressBlock(data, decoded)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrBadTexture, err)
		}
		data = decoded[:n]
	}

	pix, err := decodePixels(h.Format, data, mW, mH)
	if err != nil {
		return nil, err
	}
	stride := int(mW) * 4
	if len(pix) < stride*int(mH) {
		return nil, fmt.Errorf("%w: decoded %d bytes for %dx%d", ErrBadTexture, len(pix), mW, mH)
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: stride,
		Rect:   image.Rect(0, 0, int(mW), int(mH)),
	}
	if h.Width == 0 || h.Height == 0 || h.Width > mW || h.Height > mH {
		return img, nil
	}
	return img.SubImage(image.Rect(0, 0, int(h.Width), int(h.Height))), nil
}

func decodePixels(format TexFormat, data []byte, w, h uint32) ([]byte, error) {
	blocks := int((w+3)/4) * int((h+3)/4)
	pixels := int(w) * int(h)

	want := func(n int) error {
		if len(data) < n {
			return fmt.Errorf("%w: %s %dx%d needs %d bytes, have %d", ErrBadTexture, format, w, h, n, len(data))
		}
		return nil
	}

	switch format {
	case FormatRGBA8888:
		if err := want(pixels * 4); err != nil {
			return nil, err
		}
		return data[:pixels*4], nil

	case FormatDXT5:
		if err := want(blocks * 16); err != nil {
			return nil, err
		}
		pix, err := dxt.DecodeDXT5(data, uint(w), uint(h))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadTexture, err)
		}
		return pix, nil

	case FormatDXT1:
		if err := want(blocks * 8); err != nil {
			return nil, err
		}
		pix, err := dxt.DecodeDXT1(data, uint(w), uint(h))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadTexture, err)
		}
		return pix, nil

	case FormatR8:
		if err := want(pixels); err != nil {
			return nil, err
		}
		pix := make([]byte, pixels*4)
		for i := 0; i < pixels; i++ {
			v := data[i]
			pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = v, v, v, 255
		}
		return pix, nil

	case FormatRG88:
		if err := want(pixels * 2); err != nil {
			return nil, err
		}
		// luminance in the first byte, opacity in the second
		pix := make([]byte, pixels*4)
		for i := 0; i < pixels; i++ {
			lum, alpha := data[i*2], data[i*2+1]
			pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = lum, lum, lum, alpha
		}
		return pix, nil
	}

	return nil, fmt.Errorf("%w: unsupported format %s", ErrBadTexture, format)
}
