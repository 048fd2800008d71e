package player

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/landing-fx/internal/config"
)

// outputRate is the speaker rate; tracks with other rates are resampled.
const outputRate = beep.SampleRate(44100)

var speakerReady bool

func initSpeaker() error {
	if speakerReady {
		return nil
	}
	if err := speaker.Init(outputRate, outputRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("player: init speaker: %w", err)
	}
	speakerReady = true
	return nil
}

// Listener receives the notifications a Track raises from Poll.
type Listener interface {
	OnPositionTick()
	OnMetadataReady()
	OnEnded()
}

// Track is a decoded audio file played through the beep speaker. All methods
// must be called from the host's update goroutine; state shared with the
// speaker goroutine is guarded by speaker.Lock.
type Track struct {
	path     string
	closer   io.Closer
	streamer beep.StreamSeekCloser
	format   beep.Format

	tap    *sampleTap
	ctrl   *beep.Ctrl
	volume *effects.Volume

	level  float64
	muted  bool
	levels []float64

	started bool
	ended   bool // written by the speaker goroutine

	metaSent    bool
	endSent     bool
	lastPos     float64
	posReported bool
}

// OpenTrack decodes a .wav, .mp3 or .flac file. The track starts paused.
func OpenTrack(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("player: open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("player: open %s: unsupported file type %q", path, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("player: decode %s: %w", path, err)
	}

	t := newTrack(streamer, format, f)
	t.path = path
	return t, nil
}

func newTrack(streamer beep.StreamSeekCloser, format beep.Format, closer io.Closer) *Track {
	t := &Track{
		closer:   closer,
		streamer: streamer,
		format:   format,
		level:    1,
		levels:   make([]float64, config.VisualizerBars),
	}

	t.tap = newSampleTap(t.source(), config.VisualRingSize)
	t.ctrl = &beep.Ctrl{Streamer: t.tap, Paused: true}
	t.volume = &effects.Volume{Streamer: t.ctrl, Base: 2}
	t.applyGain()
	return t
}

// source is the decoder as the speaker hears it, resampled when the rates
// differ.
func (t *Track) source() beep.Streamer {
	if t.format.SampleRate == outputRate {
		return t.streamer
	}
	return beep.Resample(4, t.format.SampleRate, outputRate, t.streamer)
}

// rewind seeks to the start and gives the tap a fresh source, since a
// resampler would still hold the tail of the previous run. The speaker lock
// must be held.
func (t *Track) rewind() error {
	if err := t.streamer.Seek(0); err != nil {
		return fmt.Errorf("player: rewind %s: %w", t.path, err)
	}
	t.tap.Source = t.source()
	t.ended = false
	return nil
}

func (t *Track) Path() string { return t.path }

// Play starts or resumes playback. The speaker is initialised on first use and
// its failure is reported to done as a refused play.
func (t *Track) Play(done func(error)) {
	if err := initSpeaker(); err != nil {
		done(err)
		return
	}

	speaker.Lock()
	restart := !t.started || t.ended
	if t.ended {
		if err := t.rewind(); err != nil {
			speaker.Unlock()
			done(err)
			return
		}
	}
	t.ctrl.Paused = false
	speaker.Unlock()

	if restart {
		t.started = true
		t.endSent = false
		speaker.Play(beep.Seq(t.volume, beep.Callback(t.markEnded)))
	}
	done(nil)
}

// markEnded runs on the speaker goroutine with the speaker lock held.
func (t *Track) markEnded() {
	t.ended = true
	t.ctrl.Paused = true
}

func (t *Track) Pause() {
	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
}

func (t *Track) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return t.ctrl.Paused || t.ended
}

// SetVolume takes a linear level in [0, 1].
func (t *Track) SetVolume(v float64) {
	t.level = clamp01(v)
	t.applyGain()
}

func (t *Track) SetMuted(muted bool) {
	t.muted = muted
	t.applyGain()
}

func (t *Track) applyGain() {
	vol, silent := gain(t.level)
	speaker.Lock()
	t.volume.Volume = vol
	t.volume.Silent = silent || t.muted
	speaker.Unlock()
}

// gain maps a linear level onto effects.Volume with base 2.
func gain(level float64) (volume float64, silent bool) {
	if level <= 0 {
		return 0, true
	}
	return math.Log2(clamp01(level)), false
}

// Duration is the track length in seconds, NaN when the decoder cannot tell.
func (t *Track) Duration() float64 {
	n := t.streamer.Len()
	if n <= 0 {
		return math.NaN()
	}
	return t.format.SampleRate.D(n).Seconds()
}

func (t *Track) Position() float64 {
	speaker.Lock()
	n := t.streamer.Position()
	speaker.Unlock()
	return t.format.SampleRate.D(n).Seconds()
}

// Poll raises metadata once, position when it moved and ended once per
// ending. The host calls it every frame.
func (t *Track) Poll(l Listener) {
	if !t.metaSent && !math.IsNaN(t.Duration()) {
		t.metaSent = true
		l.OnMetadataReady()
	}

	if pos := t.Position(); !t.posReported || pos != t.lastPos {
		t.posReported = true
		t.lastPos = pos
		l.OnPositionTick()
	}

	speaker.Lock()
	ended := t.ended
	speaker.Unlock()
	if ended && !t.endSent {
		t.endSent = true
		l.OnEnded()
	}
}

// Levels returns the visualizer band levels for the latest samples.
func (t *Track) Levels() []float64 {
	t.levels = bandLevels(t.tap.recent(config.LevelWindow), t.levels, config.SmoothingFactor)
	out := make([]float64, len(t.levels))
	copy(out, t.levels)
	return out
}

// Close stops playback and releases the decoder and file.
func (t *Track) Close() error {
	if speakerReady {
		speaker.Lock()
		t.ctrl.Paused = true
		speaker.Unlock()
		speaker.Clear()
	}
	err := t.streamer.Close()
	if t.closer != nil {
		if cerr := t.closer.Close(); cerr != nil && err == nil && !errors.Is(cerr, os.ErrClosed) {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("player: close %s: %w", t.path, err)
	}
	return nil
}

// ChooseTrack asks for an audio file. An empty path with a nil error means
// the dialog was cancelled.
func ChooseTrack() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("player: choose track: %w", err)
	}
	return path, nil
}
