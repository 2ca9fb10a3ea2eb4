package main

// Flag defaults not covered by the library's demo design.
const (
	defaultPadLen         = -1
	defaultRuns           = 1
	defaultResponsePoints = 16
	defaultLogLevel       = "info"
	defaultOutputFormat   = "table"
	defaultWindow         = "hamming"
	defaultPadType        = "odd"
	defaultPrecision      = "float64"
	defaultBCoeffPath     = "bCoeff"
	defaultACoeffPath     = "aCoeff"
	defaultOutputPath     = "demoFiltFilt"
)

const (
	precisionFloat32 = "float32"
	wavExtension     = ".wav"
)
