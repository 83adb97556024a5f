package main

// Default command-line flag values
const (
	defaultWidth        = 1920 // Full HD input
	defaultHeight       = 1080
	defaultOutputWidth  = 1280 // 720p output
	defaultOutputHeight = 720
)

// File conventions
const (
	stdStream = "-" // Path that selects stdin or stdout
)

// Memory conversion
const (
	bytesPerKilobyte = 1024
)
