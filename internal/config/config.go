package config

const (
	WindowWidth  = 1024
	WindowHeight = 720

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Default base color and the stand-in for malformed color input
	DefaultColor = "#ff4d6d"

	// Bouquet parameters
	FlowerCount    = 18
	DomeCutoff     = -0.2
	DomeScale      = 1.2
	DomeLift       = 0.5
	PitchDamping   = 0.7
	PetalCount     = 40
	SparkleCount   = 50
	ScaleSmoothing = 0.1

	// Camera and orbit controls
	CameraFOV        = 50.0
	MinDistance      = 4.0
	MaxDistance      = 12.0
	DampingFactor    = 0.05
	AutoRotatePlay   = 1.5
	AutoRotateIdle   = 0.5
	TicksPerSecond   = 60
	StarCount        = 1000
	WheelZoomPerStep = 0.95
)

// Palette is the color cycle used by the color button.
var Palette = []string{
	"#ff4d6d", "#ff758f", "#c9184a", "#ffb3c1",
	"#ffffff", "#e0aaff", "#ffd700", "#ff6b6b",
}

// Messages are shown in the overlay, one at a time.
var Messages = []string{
	"Eres única y especial, como la flor más hermosa de este jardín.",
	"Tu belleza ilumina el mundo más que mil soles.",
	"Eres la flor más preciosa de este jardín.",
	"Tu sonrisa hace que todos los claveles florezcan de alegría.",
}
