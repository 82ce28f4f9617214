package orbits

var (
	Debug   = false // set to true for verbose debug output and orbit stats
	PNG     = false // set to true to save animations as a PNG sequence instead of a GIF
	RAW     = false // set to true to also dump the raw density grid next to the image
	Workers = 0     // number of render goroutines, 0 means runtime.NumCPU()
	// Compile time checks
	_ encodingText = (*FractalKind)(nil)
	_ encodingText = (*SamplingLevel)(nil)
	_ encodingText = (*ColoringKind)(nil)
	_ encodingText = (*MapKind)(nil)
	_ encodingText = (*StepKind)(nil)
)
