// Minimal MJPEG AVI container writer.
//
// Frames are JPEG encoded and appended as '00dc' chunks. The fixed header is
// written with placeholder sizes at creation; Close patches the RIFF size,
// frame counts and movi list size and appends the idx1 index. A file whose
// writer was never finalized keeps the placeholders, which most players
// tolerate for MJPEG streams.
package avi

import "os"

// Open MJPEG AVI stream
type Writer struct {
	file     *os.File
	path     string
	width    int
	height   int
	fps      float64
	frames   uint32
	offset   int64 // next write position in the file
	index    []indexEntry
	finished bool
}

// Bookkeeping for one idx1 entry
type indexEntry struct {
	chunkOffset uint32 // relative to the 'movi' fourcc
	chunkLength uint32
}
