package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/trajview/internal/viz"
)

// WriteGIF renders every playback frame offscreen and encodes the session
// as an animated GIF. delay is in hundredths of a second per frame; scale
// is the rendered width of one Braille sub-pixel column in image pixels.
func WriteGIF(w io.Writer, p *viz.Player, delay, scale int) error {
	if delay < 1 {
		delay = 2
	}
	if scale < 1 {
		scale = 4
	}

	anim := gif.GIF{LoopCount: 0}
	for frame := 0; frame < p.FrameCount(); frame++ {
		canvas, err := p.Snapshot(frame)
		if err != nil {
			return err
		}
		anim.Image = append(anim.Image, rasterize(canvas, scale))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// rasterize converts a Braille canvas to a black/white paletted image, one
// filled square per lit sub-pixel.
func rasterize(c *viz.Canvas, scale int) *image.Paletted {
	dotW, dotH := scale, scale*2
	imgW, imgH := c.Width*2*dotW, c.Height*4*dotH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	for y := 0; y < c.Height*4; y++ {
		for x := 0; x < c.Width*2; x++ {
			if !c.Lit(x, y) {
				continue
			}
			baseX, baseY := x*dotW, y*dotH
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(baseX+px, baseY+py, 1)
				}
			}
		}
	}
	return img
}
