package videolog

import (
	"context"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telemetrycap/internal/global"
)

func testConfig(dir string, fps float64) (conf global.CaptureConfig) {
	conf = global.CaptureConfig{
		Directory: dir,
		FrameRate: fps,
	}
	conf.Video.MinimumFreeSpace = 1
	return
}

func testFrame(seq uint64) (frame *Frame) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(seq), G: uint8(x), B: uint8(y), A: 255})
		}
	}

	frame = &Frame{
		Seq:       seq,
		Timestamp: time.Now(),
		Image:     img,
	}
	return
}

func listVideos(t *testing.T, dir string) (names []string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, global.VideoFileName) && strings.HasSuffix(name, global.VideoFileExtension) {
			names = append(names, name)
		}
	}
	return
}

func TestAdmitFrame(t *testing.T) {
	tests := []struct {
		name    string
		written int64
		elapsed time.Duration
		fps     float64
		admit   bool
	}{
		{
			name:    "first frame admitted unconditionally",
			written: 0,
			elapsed: 0,
			fps:     10,
			admit:   true,
		},
		{
			name:    "behind schedule admits",
			written: 5,
			elapsed: time.Second,
			fps:     10,
			admit:   true,
		},
		{
			name:    "on schedule does not admit",
			written: 10,
			elapsed: time.Second,
			fps:     10,
			admit:   false,
		},
		{
			name:    "one behind schedule admits",
			written: 9,
			elapsed: time.Second,
			fps:     10,
			admit:   true,
		},
		{
			name:    "no elapsed time drops later frames",
			written: 1,
			elapsed: 0,
			fps:     30,
			admit:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := admitFrame(tt.written, tt.elapsed, tt.fps)
			if got != tt.admit {
				t.Fatalf("expected %v, got %v", tt.admit, got)
			}
		})
	}
}

func TestFirstFrameInitializes(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(testConfig(dir, 12), "raw")

	ctx := context.Background()
	frame := testFrame(0)
	out := rec.ProcessFrame(ctx, frame)

	// The frame passes through unchanged
	assert.Same(t, frame, out)
	assert.True(t, rec.Recording())

	// Directory marker suppresses media indexing
	_, err := os.Stat(filepath.Join(dir, global.NoMediaFileName))
	assert.NoError(t, err)

	videos := listVideos(t, dir)
	require.Len(t, videos, 1)
	assert.True(t, strings.HasPrefix(videos[0], "video_raw_"))

	rec.Close(ctx)
}

func TestImmediateSecondFrameDropped(t *testing.T) {
	dir := t.TempDir()
	// Half a frame per second, so back-to-back frames cannot both be admitted
	rec := NewRecorder(testConfig(dir, 0.5), "")
	defer rec.Close(context.Background())

	ctx := context.Background()
	rec.ProcessFrame(ctx, testFrame(0))
	rec.ProcessFrame(ctx, testFrame(1))

	byName := map[string]uint64{}
	for _, metric := range rec.CollectMetrics(time.Minute) {
		byName[metric.Name] = metric.Value.Raw.(uint64)
	}

	assert.Equal(t, uint64(1), byName["frames_written"])
	assert.Equal(t, uint64(1), byName["frames_dropped"])
}

func TestLowFreeSpaceDisablesCapture(t *testing.T) {
	dir := t.TempDir()

	conf := testConfig(dir, 12)
	conf.Video.MinimumFreeSpace = math.MaxUint64

	rec := NewRecorder(conf, "raw")
	ctx := context.Background()

	frame := testFrame(0)
	out := rec.ProcessFrame(ctx, frame)

	assert.Same(t, frame, out)
	assert.False(t, rec.Recording())
	assert.Empty(t, listVideos(t, dir))

	// Later frames stay silent no-ops
	rec.ProcessFrame(ctx, testFrame(1))
	assert.False(t, rec.Recording())
}

func TestCloseAllowsRestart(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(testConfig(dir, 12), "")

	ctx := context.Background()
	rec.ProcessFrame(ctx, testFrame(0))
	require.True(t, rec.Recording())

	rec.Close(ctx)
	assert.False(t, rec.Recording())

	// The next frame starts a fresh session
	rec.ProcessFrame(ctx, testFrame(1))
	assert.True(t, rec.Recording())
	rec.Close(ctx)
}

func TestInitRunsRetentionSweep(t *testing.T) {
	dir := t.TempDir()

	conf := testConfig(dir, 12)
	conf.Video.Retain = 4

	// Five aged video files already present
	base := time.Now().Add(-10 * time.Hour)
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, global.VideoFileName+
			time.Date(2024, 1, i+1, 0, 0, 0, 0, time.Local).Format("_20060102_150405")+
			global.VideoFileExtension)
		require.NoError(t, os.WriteFile(name, []byte("old"), 0640))
		stamp := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(name, stamp, stamp))
	}

	rec := NewRecorder(conf, "")
	defer rec.Close(context.Background())
	rec.ProcessFrame(context.Background(), testFrame(0))

	// Three old survivors plus the fresh capture file
	assert.Len(t, listVideos(t, dir), 4)
}

func TestNilFramesIgnored(t *testing.T) {
	rec := NewRecorder(testConfig(t.TempDir(), 12), "")

	ctx := context.Background()
	assert.Nil(t, rec.ProcessFrame(ctx, nil))

	empty := &Frame{Seq: 1}
	assert.Same(t, empty, rec.ProcessFrame(ctx, empty))
	assert.False(t, rec.Recording())
}

func TestRealizedRate(t *testing.T) {
	tests := []struct {
		name    string
		frames  int64
		elapsed time.Duration
		want    float64
	}{
		{
			name:    "typical session",
			frames:  5,
			elapsed: time.Second,
			want:    4.0,
		},
		{
			name:    "zero elapsed reports zero",
			frames:  1,
			elapsed: 0,
			want:    0,
		},
		{
			name:    "no frames reports zero",
			frames:  0,
			elapsed: time.Second,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := realizedRate(tt.frames, tt.elapsed)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
