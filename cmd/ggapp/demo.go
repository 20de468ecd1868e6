package main

import (
	"math"
	"time"

	"github.com/gogpu/gg"
	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/ggapp"
)

// demo draws a rotating ring of circles. In MANUAL mode it asks for a new
// frame twice a second instead of animating continuously.
type demo struct {
	app      ggapp.Application
	progress *progressbar.ProgressBar
	stop     chan struct{}
}

func newDemo() *demo {
	return &demo{stop: make(chan struct{})}
}

func (d *demo) Setup(a ggapp.Application) error {
	d.app = a
	if a.PresentationMode() == ggapp.PresentationModeManual {
		go d.tick(500 * time.Millisecond)
	}
	return nil
}

func (d *demo) tick(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			d.app.RequestDraw()
		case <-d.stop:
			return
		}
	}
}

func (d *demo) Close() {
	close(d.stop)
}

func (d *demo) Draw(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	t := d.app.Seconds() * 0.8

	dc.ClearWithColor(gg.RGB(0.086, 0.129, 0.243))

	cx, cy := w/2, h/2
	radius := math.Min(w, h) * 0.3
	for i := 0; i < 12; i++ {
		angle := float64(i)*math.Pi/6 + t
		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius

		r, g, b := hsvToRGB(float64(i)/12, 0.85, 1)
		dc.SetRGBA(r, g, b, 0.9)
		dc.DrawCircle(x, y, radius*0.14+radius*0.05*math.Sin(t*2+float64(i)))
		_ = dc.Fill()
	}

	dc.SetRGBA(1, 1, 1, 0.3)
	dc.SetLineWidth(1.5)
	dc.DrawCircle(cx, cy, radius)
	_ = dc.Stroke()

	if d.progress != nil {
		_ = d.progress.Add(1)
	}
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
