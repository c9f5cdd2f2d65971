package config

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Neural Background - Esc/Q: Quit"

	// Particle population
	AreaPerParticle = 9000
	MaxParticles    = 150
	MinSize         = 1.0
	SizeRange       = 2.5
	DriftRange      = 0.4
	MinDensity      = 1.0
	DensityRange    = 30.0
	MinOpacity      = 0.6
	OpacityRange    = 0.3

	// Pointer interaction
	PointerSentinel      = -1000.0
	DefaultPointerRadius = 100.0
	ForceFactor          = 0.1
	ReturnFactor         = 0.05

	// Connections
	MaxConnectDistance = 150.0
	ConnectWidthDivide = 7.0
	LineWidth          = 2.5
	LineBaseOpacity    = 0.3

	// Animation timing, per millisecond
	PulseSpeed      = 0.001
	FloatSpeedX     = 0.0005
	FloatSpeedY     = 0.0007
	FlickerSpeed    = 0.002
	BreatheSpeed    = 0.0008
	BreatheAmount   = 0.02
	ConnectSpeed    = 0.001
	LineFlutterRate = 0.003

	// Palette
	Teal  = "#14b8a6"
	Blue  = "#3b82f6"
	Green = "#10b981"

	FrameTapSize   = 300
	FPSLogInterval = 5 // seconds
)
