package plotting

import "errors"

var (
	errEmptyData      = errors.New("plotting: not enough data to plot")
	errMismatchedData = errors.New("plotting: x and y lengths differ")
	errBadSamples     = errors.New("plotting: diagram needs at least 2 samples per axis")
)
