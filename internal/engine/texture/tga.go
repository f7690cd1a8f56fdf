package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types this decoder understands.
const (
	tgaTypeUncompressed = 2
	tgaTypeRLE          = 10
	tgaHeaderSize       = 18
)

// DecodeTGA decodes an uncompressed or RLE true-color TGA file (24 or 32 bpp).
// TGA has no magic number, so the loader picks this decoder by extension.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga: header truncated")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: colour-mapped images not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: image id truncated")
	}

	px := &tgaPixels{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		data:        data[offset:],
		size:        bpp / 8,
		topToBottom: topToBottom,
	}
	if imageType == tgaTypeUncompressed {
		if len(px.data) < width*height*px.size {
			return nil, fmt.Errorf("tga: pixel data truncated")
		}
		for i := 0; i < width*height; i++ {
			c, _ := px.next()
			px.put(i, c)
		}
		return px.img, nil
	}

	px.decodeRLE(width * height)
	return px.img, nil
}

type tgaPixels struct {
	img         *image.RGBA
	data        []byte
	pos         int
	size        int
	topToBottom bool
}

// next reads one BGR(A) pixel.
func (p *tgaPixels) next() (color.RGBA, bool) {
	if p.pos+p.size > len(p.data) {
		return color.RGBA{}, false
	}
	d := p.data[p.pos:]
	c := color.RGBA{R: d[2], G: d[1], B: d[0], A: 255}
	if p.size == 4 {
		c.A = d[3]
	}
	p.pos += p.size
	return c, true
}

// put stores pixel i of the file's scan order, flipping bottom-up files.
func (p *tgaPixels) put(i int, c color.RGBA) {
	w := p.img.Rect.Dx()
	x, y := i%w, i/w
	if !p.topToBottom {
		y = p.img.Rect.Dy() - 1 - y
	}
	p.img.SetRGBA(x, y, c)
}

// decodeRLE stops quietly at the end of the data; missing pixels stay transparent.
func (p *tgaPixels) decodeRLE(count int) {
	i := 0
	for i < count && p.pos < len(p.data) {
		packet := p.data[p.pos]
		p.pos++
		run := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			c, ok := p.next()
			if !ok {
				return
			}
			for ; run > 0 && i < count; run-- {
				p.put(i, c)
				i++
			}
			continue
		}
		for ; run > 0 && i < count; run-- {
			c, ok := p.next()
			if !ok {
				return
			}
			p.put(i, c)
			i++
		}
	}
}
