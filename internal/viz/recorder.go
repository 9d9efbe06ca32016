package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

const (
	gifCharW = 8
	gifCharH = 16
)

// Recorder collects canvas frames and writes them as an animated GIF.
type Recorder struct {
	path   string
	frames []*image.Paletted
}

func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

func (r *Recorder) Frames() int { return len(r.frames) }

// Capture rasterizes the canvas, one gifCharW x gifCharH block per cell.
func (r *Recorder) Capture(c *Canvas) {
	imgW, imgH := c.Width*gifCharW, c.Height*gifCharH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	dotW, dotH := gifCharW/2, gifCharH/4

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := c.Pattern(row, col)
			if pattern == 0 {
				continue
			}
			baseX, baseY := col*gifCharW, row*gifCharH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBit[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save writes the collected frames. It is a no-op without frames.
func (r *Recorder) Save() error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
