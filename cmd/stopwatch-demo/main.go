// FILE: cmd/stopwatch-demo/main.go
//
// Frame-loop demo for the frametime types. The loop samples the wall
// clock once per frame and feeds the delta to a Stopwatch and a
// repeating lap Timer; the library itself never reads a clock.
//
// Keys: space pauses/unpauses, r resets, q/Esc/Ctrl+C quits.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/frametime"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	lapDuration   = 10 * time.Second
)

type Demo struct {
	screen tcell.Screen

	stopwatch frametime.Stopwatch
	lapTimer  frametime.Timer
	laps      int

	lastFrame time.Time
	audioInit bool
}

func NewDemo() (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &Demo{
		screen:    screen,
		stopwatch: frametime.NewStopwatch(),
		lapTimer:  frametime.NewTimer(lapDuration, frametime.TimerRepeating),
		lastFrame: time.Now(),
	}

	if err := d.initAudio(); err != nil {
		// Non-fatal, demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return d, nil
}

func (d *Demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

func (d *Demo) playLapSound() {
	if !d.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(80 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 880)
	speaker.Play(beep.Take(duration, sine))
}

// update feeds one frame delta to both accumulators
func (d *Demo) update() {
	now := time.Now()
	delta := now.Sub(d.lastFrame)
	d.lastFrame = now

	d.stopwatch.Tick(delta)
	d.lapTimer.Tick(delta)

	if d.lapTimer.JustFinished() {
		d.laps += int(d.lapTimer.TimesFinishedThisTick())
		d.playLapSound()
	}
}

func (d *Demo) togglePause() {
	if d.stopwatch.IsPaused() {
		d.stopwatch.Unpause()
		d.lapTimer.Unpause()
	} else {
		d.stopwatch.Pause()
		d.lapTimer.Pause()
	}
}

func (d *Demo) reset() {
	d.stopwatch.Reset()
	d.lapTimer.Reset()
	d.laps = 0
}

func (d *Demo) draw() {
	d.screen.Clear()

	accent := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	warn := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	width, _ := d.screen.Size()
	centerX := width / 2

	elapsed := fmt.Sprintf("%10.2fs", d.stopwatch.ElapsedSecsF64())
	drawText(d.screen, centerX-len(elapsed)/2, 3, accent, elapsed)

	state := "running"
	style := dim
	if d.stopwatch.IsPaused() {
		state = "paused"
		style = warn
	}
	drawText(d.screen, centerX-len(state)/2, 5, style, state)

	bar := progressBar(d.lapTimer.Fraction(), 30)
	lap := fmt.Sprintf("lap %s %d", bar, d.laps)
	drawText(d.screen, centerX-len(lap)/2, 7, dim, lap)

	help := "space: pause  r: reset  q: quit"
	drawText(d.screen, centerX-len(help)/2, 9, dim, help)

	d.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func progressBar(fraction float32, width int) string {
	filled := int(fraction * float32(width))
	if filled > width {
		filled = width
	}
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			d.togglePause()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			d.reset()
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *Demo) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case <-ticker.C:
			d.update()
			d.draw()
		}
	}
}

func (d *Demo) cleanup() {
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

func main() {
	demo, err := NewDemo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer demo.cleanup()

	demo.run()
}
