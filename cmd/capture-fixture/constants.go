package main

// CLI defaults
const (
	defaultName         = "sine440"
	defaultPackage      = "fixture"
	defaultBitDepth     = 24
	degreesPerTurn      = 360.0
	defaultPhaseDegrees = 90.0 // Quarter period between channels
)

// File permissions for written outputs
const (
	outputFileMode = 0o644
)
