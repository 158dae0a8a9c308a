package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	rt "github.com/ashcolecarr/go-raytracer"
	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// renderWithProgress renders world through cam with the same row-per-
// goroutine fan-out as Camera.Render, but drives a live tcell screen
// showing rows completed and elapsed time. The screen lifecycle
// (NewScreen, Init, SetContent, Show, Fini) follows terminal_renderer.go's
// per-frame render loop.
func renderWithProgress(cam *rt.Camera, world *rt.World) (*prim.Canvas, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("raytrace: tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("raytrace: screen.Init: %w", err)
	}
	defer screen.Fini()

	image := prim.NewCanvas(cam.HSize, cam.VSize)

	var rowsDone int64
	var wg sync.WaitGroup
	for y := 0; y < cam.VSize; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			defer atomic.AddInt64(&rowsDone, 1)
			for x := 0; x < cam.HSize; x++ {
				ray := cam.RayForPixel(x, y)
				color := world.ColorAt(ray, rt.MaxReflectionDepth)
				image.WritePixel(x, y, color)
			}
		}(y)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	start := time.Now()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-done:
			break loop
		case <-ticker.C:
			drawProgress(screen, int(atomic.LoadInt64(&rowsDone)), cam.VSize, time.Since(start))
		}
	}
	drawProgress(screen, cam.VSize, cam.VSize, time.Since(start))

	return image, nil
}

func drawProgress(screen tcell.Screen, done, total int, elapsed time.Duration) {
	screen.Clear()
	width, _ := screen.Size()

	barStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	fraction := 0.0
	if total > 0 {
		fraction = float64(done) / float64(total)
	}
	barWidth := width - 2
	if barWidth < 0 {
		barWidth = 0
	}
	filled := int(fraction * float64(barWidth))

	screen.SetContent(0, 0, '[', nil, tcell.StyleDefault)
	for x := 0; x < barWidth; x++ {
		ch := ' '
		cellStyle := tcell.StyleDefault
		if x < filled {
			ch = '#'
			cellStyle = barStyle
		}
		screen.SetContent(1+x, 0, ch, nil, cellStyle)
	}
	screen.SetContent(1+barWidth, 0, ']', nil, tcell.StyleDefault)

	label := fmt.Sprintf("rows %d/%d  elapsed %s", done, total, elapsed.Round(time.Second))
	for i, ch := range label {
		screen.SetContent(i, 1, ch, nil, tcell.StyleDefault)
	}

	screen.Show()
}
