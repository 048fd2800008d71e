package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768

	VisualRingSize  = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6

	// Page layout
	NavHeight      = 36
	SectionGap     = 40
	SectionPadding = 24
	ContentMargin  = 60

	// Stat counters and cards
	StatWidth    = 180
	StatHeight   = 70
	CardWidth    = 260
	CardHeight   = 150
	CardGap      = 24
	ButtonWidth  = 120
	ButtonHeight = 32
	GlowRadius   = 100

	// Music widget, anchored to the bottom right corner
	PlayerWidth     = 300
	PlayerHeight    = 110
	PlayerMargin    = 16
	PlayerButton    = 28
	SliderWidth     = 100
	ProgressHeight  = 6
	VisualizerBars  = 5
	VisualizerWidth = 4

	// Effects
	AmbientParticleCount = 40
	ScrollStep           = 60
	ScrollDuration       = 800 * time.Millisecond
	RevealThreshold      = 0.2
	RevealDuration       = 600 * time.Millisecond
	GateDelay            = 2 * time.Second
	GateFadeOut          = 1200 * time.Millisecond
)
