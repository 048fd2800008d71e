// Package player adapts a single playable audio resource to the small control
// surface of the page's music widget.
package player

import (
	"fmt"
	"log"
	"math"
)

type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DefaultVolume is applied to the resource when the player is created.
const DefaultVolume = 0.8

// Resource is the audio the player drives. Play reports its outcome through
// done; it may be called later and may carry an error when playback is refused.
// Duration returns NaN until the length is known.
type Resource interface {
	Play(done func(error))
	Pause()
	Paused() bool
	SetVolume(v float64)
	SetMuted(muted bool)
	Duration() float64
	Position() float64
}

// View is the widget the player reflects its state on.
type View interface {
	SetPlaying(playing bool)
	SetVisualizerRunning(running bool)
	SetMuteDimmed(dimmed bool)
	SetProgress(percent float64)
	SetElapsed(label string)
	SetTotal(label string)
}

type Player struct {
	res    Resource
	view   View
	logger *log.Logger

	state  State
	muted  bool
	volume float64
}

// New wires res to view, applies the initial volume and renders the paused UI.
func New(res Resource, view View, logger *log.Logger, volume float64) *Player {
	p := &Player{
		res:    res,
		view:   view,
		logger: logger,
		volume: clamp01(volume),
	}
	res.SetVolume(p.volume)
	res.SetMuted(false)
	view.SetMuteDimmed(false)
	p.updateUI()
	return p
}

func (p *Player) State() State { return p.state }

func (p *Player) Muted() bool { return p.muted }

func (p *Player) Volume() float64 { return p.volume }

// TogglePlay pauses a playing resource or asks a paused one to play.
func (p *Player) TogglePlay() {
	if p.res.Paused() {
		p.play()
		return
	}
	p.res.Pause()
	p.state = Paused
	p.updateUI()
}

// Start plays only if the resource is paused.
func (p *Player) Start() {
	if p.res.Paused() {
		p.play()
	}
}

func (p *Player) play() {
	p.res.Play(func(err error) {
		if err != nil {
			p.logger.Printf("player: play failed: %v", err)
			return
		}
		p.state = Playing
		p.updateUI()
	})
}

// SetVolume takes a slider value in [0, 100] and unmutes.
func (p *Player) SetVolume(v float64) {
	p.volume = clamp01(v / 100)
	p.res.SetVolume(p.volume)
	p.muted = false
	p.res.SetMuted(false)
	p.view.SetMuteDimmed(false)
}

func (p *Player) ToggleMute() {
	p.muted = !p.muted
	p.res.SetMuted(p.muted)
	p.view.SetMuteDimmed(p.muted)
}

// OnPositionTick refreshes the progress bar and the elapsed label. The bar is
// left alone while the duration is unknown.
func (p *Player) OnPositionTick() {
	pos := p.res.Position()
	if d := p.res.Duration(); validSeconds(d) && d > 0 {
		p.view.SetProgress(pos / d * 100)
	}
	p.view.SetElapsed(FormatTime(pos))
}

func (p *Player) OnMetadataReady() {
	p.view.SetTotal(FormatTime(p.res.Duration()))
}

// OnEnded is called when the resource stops at its end.
func (p *Player) OnEnded() {
	if p.state == Paused {
		return
	}
	p.state = Paused
	p.updateUI()
}

func (p *Player) updateUI() {
	playing := p.state == Playing
	p.view.SetPlaying(playing)
	p.view.SetVisualizerRunning(playing)
}

// FormatTime renders seconds as m:ss. Anything that is not a usable number
// of seconds renders as 0:00.
func FormatTime(seconds float64) string {
	if !validSeconds(seconds) || seconds < 0 {
		return "0:00"
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func validSeconds(s float64) bool {
	return !math.IsNaN(s) && !math.IsInf(s, 0)
}

// clamp01 maps NaN to 0.
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
