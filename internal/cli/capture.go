package cli

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"telemetrycap/internal/global"
	"telemetrycap/internal/logctx"
	"telemetrycap/internal/telemetrylog"
	"telemetrycap/internal/videolog"
)

func CaptureMode(ctx context.Context, commandname string, args []string) {
	var configPath string
	var directory string
	var durationText string
	var frameRate float64
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetCommon(commandFlags, &configPath)
	commandFlags.StringVar(&directory, "d", "", "Capture directory (overrides config)")
	commandFlags.StringVar(&directory, "directory", "", "Capture directory (overrides config)")
	commandFlags.StringVar(&durationText, "t", "5s", "How long to run the capture session")
	commandFlags.StringVar(&durationText, "duration", "5s", "How long to run the capture session")
	commandFlags.Float64Var(&frameRate, "fps", 0, "Target video frame rate (overrides config)")

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args)
	logctx.SetLogLevel(ctx, global.Verbosity)

	duration, err := time.ParseDuration(durationText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid duration '%s': %v\n", durationText, err)
		os.Exit(1)
	}

	var conf global.CaptureConfig
	_, err = os.Stat(configPath)
	if err == nil {
		conf, err = LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		conf.ToFile = true
	}

	if directory != "" {
		conf.Directory = directory
	}
	if conf.Directory == "" {
		conf.Directory = "capture"
	}
	if frameRate > 0 {
		conf.FrameRate = frameRate
	}
	conf.ApplyDefaults()

	err = os.MkdirAll(conf.Directory, 0750)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create capture directory: %v\n", err)
		os.Exit(1)
	}

	runCapture(ctx, conf, duration)
}

// Drives one synthetic capture session: telemetry lines with repeats to
// exercise the dedup buffer, and frames generated above the target rate to
// exercise the admission throttle.
func runCapture(ctx context.Context, conf global.CaptureConfig, duration time.Duration) {
	session := telemetrylog.NewSession(conf)
	disp := session.Start(ctx, nil)
	recorder := videolog.NewRecorder(conf, "synthetic")

	disp.AddData("Session", session.ID())
	disp.AddData("Directory", conf.Directory)

	lineTicker := time.NewTicker(500 * time.Millisecond)
	defer lineTicker.Stop()

	// Producing at twice the target rate so roughly half the frames are dropped
	frameInterval := time.Duration(float64(time.Second) / (conf.FrameRate * 2))
	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	deadline := time.NewTimer(duration)
	defer deadline.Stop()

	var seq uint64
	start := time.Now()
	for running := true; running; {
		select {
		case <-ctx.Done():
			running = false
		case <-deadline.C:
			running = false
		case <-lineTicker.C:
			elapsed := time.Since(start)
			disp.AddData("Uptime", elapsed.Round(time.Second))
			disp.AddData("Battery", fmt.Sprintf("%.1fV", 12.6-elapsed.Seconds()*0.01))
			disp.AddLine("Status: nominal")
		case <-frameTicker.C:
			recorder.ProcessFrame(ctx, &videolog.Frame{
				Seq:       seq,
				Timestamp: time.Now(),
				Image:     syntheticFrame(seq),
			})
			seq++
		}
	}

	disp.AddLine(global.CloseControlLine)
	recorder.Close(ctx)

	for _, metric := range session.CollectMetrics(duration) {
		fmt.Println(metric.Format())
	}
	for _, metric := range recorder.CollectMetrics(duration) {
		fmt.Println(metric.Format())
	}
}

// Test pattern with a bar that moves one column per frame
func syntheticFrame(seq uint64) (img *image.RGBA) {
	const width, height = 320, 240

	img = image.NewRGBA(image.Rect(0, 0, width, height))
	barStart := int(seq*2) % width
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := color.RGBA{R: uint8(x), G: uint8(y), B: 64, A: 255}
			if x >= barStart && x < barStart+16 {
				pixel = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.Set(x, y, pixel)
		}
	}
	return
}
