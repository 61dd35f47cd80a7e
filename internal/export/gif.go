package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"dotloader.klederson.com/internal/config"
	"dotloader.klederson.com/internal/loader"
	"dotloader.klederson.com/internal/render"
	"dotloader.klederson.com/internal/scene"
	"github.com/rs/zerolog"
)

// Options controls a headless render.
type Options struct {
	FPS        int
	Duration   time.Duration
	Size       int // Edge length of the square output in pixels
	Background color.RGBA
}

// DefaultOptions renders two full scatter/reassemble cycles.
func DefaultOptions() Options {
	return Options{
		FPS:        config.ExportFPS,
		Duration:   config.ExportDuration,
		Size:       config.ExportSize,
		Background: color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF},
	}
}

func (o Options) validate() error {
	switch {
	case o.FPS <= 0 || o.FPS > 100:
		return fmt.Errorf("fps must be in 1..100, got %d", o.FPS)
	case o.Duration <= 0:
		return fmt.Errorf("duration must be positive, got %s", o.Duration)
	case o.Size <= 0:
		return fmt.Errorf("size must be positive, got %d", o.Size)
	}
	return nil
}

// epoch pins the virtual clock so equal seeds give byte-identical output.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// GIF drives l with a virtual clock and encodes every frame into a looping
// animated GIF. l should be freshly created; GIF arms its schedule.
func GIF(w io.Writer, l *loader.Loader, opts Options, log zerolog.Logger) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if l == nil {
		return errors.New("nil loader")
	}
	log = log.With().Str("module", "export").Logger()

	step := time.Second / time.Duration(opts.FPS)
	frames := int(opts.Duration / step)
	if frames < 1 {
		frames = 1
	}
	delay := 100 / opts.FPS

	pal := framePalette(opts.Background)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}

	l.Start(epoch)
	for i := 0; i < frames; i++ {
		now := epoch.Add(time.Duration(i) * step)
		l.AdvanceTo(now)

		rgba := render.Flatten(render.Rasterize(l.Frame(now), opts.Size, opts.Size), opts.Background)
		img := image.NewPaletted(rgba.Bounds(), pal)
		draw.Draw(img, img.Bounds(), rgba, image.Point{}, draw.Src)

		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}

	stats := l.Stats(epoch.Add(time.Duration(frames) * step))
	log.Info().
		Int("frames", frames).
		Int("size", opts.Size).
		Int("rotation_ticks", stats.RotationTicks).
		Int("animation_ticks", stats.AnimationTicks).
		Msg("gif exported")
	return nil
}

// framePalette puts the exact scene colors first so resting dots quantize
// without error; blended in-between colors fall back to the web-safe cube.
func framePalette(bg color.RGBA) color.Palette {
	pal := color.Palette{bg, scene.Neutral.RGBA()}
	for _, c := range scene.DefaultPalette {
		pal = append(pal, c.RGBA())
	}
	return append(pal, palette.WebSafe...)
}
