package avi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/jpeg"
	"os"
)

// Creates the file and writes the fixed container header with placeholder
// sizes. Geometry and frame rate are fixed for the life of the stream.
func NewWriter(path string, width int, height int, fps float64) (writer *Writer, err error) {
	if width <= 0 || height <= 0 {
		err = fmt.Errorf("invalid frame geometry %dx%d", width, height)
		return
	}
	if fps <= 0 {
		err = fmt.Errorf("invalid frame rate %f", fps)
		return
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0640)
	if err != nil {
		err = fmt.Errorf("failed to create video file: %v", err)
		return
	}

	header := buildHeader(width, height, fps)
	_, err = file.Write(header)
	if err != nil {
		file.Close()
		err = fmt.Errorf("failed to write container header: %v", err)
		return
	}

	writer = &Writer{
		file:   file,
		path:   path,
		width:  width,
		height: height,
		fps:    fps,
		offset: headerLen,
	}
	return
}

// JPEG encodes the frame and appends it as a '00dc' chunk
func (writer *Writer) WriteFrame(frame image.Image) (err error) {
	if writer.finished {
		err = fmt.Errorf("stream is closed")
		return
	}

	var encoded bytes.Buffer
	err = jpeg.Encode(&encoded, frame, &jpeg.Options{Quality: frameQuality})
	if err != nil {
		err = fmt.Errorf("failed to encode frame: %v", err)
		return
	}

	data := encoded.Bytes()
	chunkLength := uint32(len(data))

	var chunk bytes.Buffer
	chunk.WriteString(fccFrameChunk)
	writeU32(&chunk, chunkLength)
	chunk.Write(data)
	if len(data)%2 != 0 {
		// RIFF chunks are word aligned
		chunk.WriteByte(0)
	}

	_, err = writer.file.Write(chunk.Bytes())
	if err != nil {
		err = fmt.Errorf("failed to write frame chunk: %v", err)
		return
	}

	writer.index = append(writer.index, indexEntry{
		chunkOffset: uint32(writer.offset - offMoviFourcc),
		chunkLength: chunkLength,
	})
	writer.offset += int64(chunk.Len())
	writer.frames++
	return
}

// Number of frames written so far
func (writer *Writer) Frames() (count uint32) {
	count = writer.frames
	return
}

// Path of the file being written
func (writer *Writer) Path() (path string) {
	path = writer.path
	return
}

// Appends the idx1 index, patches the placeholder sizes and closes the file.
// Safe to call more than once.
func (writer *Writer) Close() (err error) {
	if writer.finished {
		return
	}
	writer.finished = true

	defer writer.file.Close()

	// idx1 chunk
	var idx bytes.Buffer
	idx.WriteString(fccIdx1)
	writeU32(&idx, uint32(len(writer.index)*indexEntryLen))
	for _, entry := range writer.index {
		idx.WriteString(fccFrameChunk)
		writeU32(&idx, aviifKeyframe)
		writeU32(&idx, entry.chunkOffset)
		writeU32(&idx, entry.chunkLength)
	}

	_, err = writer.file.Write(idx.Bytes())
	if err != nil {
		err = fmt.Errorf("failed to write index: %v", err)
		return
	}

	fileSize := writer.offset + int64(idx.Len())
	moviSize := uint32(writer.offset - offMoviFourcc)

	patches := []struct {
		offset int64
		value  uint32
	}{
		{offRiffSize, uint32(fileSize - 8)},
		{offTotalFrames, writer.frames},
		{offStreamLength, writer.frames},
		{offMoviSize, moviSize},
	}

	patch := make([]byte, 4)
	for _, field := range patches {
		binary.LittleEndian.PutUint32(patch, field.value)
		_, err = writer.file.WriteAt(patch, field.offset)
		if err != nil {
			err = fmt.Errorf("failed to patch header field at %d: %v", field.offset, err)
			return
		}
	}

	err = writer.file.Close()
	if err != nil {
		err = fmt.Errorf("failed to close video file: %v", err)
		return
	}
	return
}

// Builds the fixed 224 byte header: RIFF/AVI wrapper, main header, single
// MJPEG video stream and the opening of the movi list
func buildHeader(width int, height int, fps float64) (header []byte) {
	var buffer bytes.Buffer

	microSecPerFrame := uint32(1_000_000 / fps)
	frameBufferSize := uint32(width * height * 3)

	// RIFF wrapper, size patched on Close
	buffer.WriteString(fccRIFF)
	writeU32(&buffer, 0)
	buffer.WriteString(fccAVI)

	// hdrl list: main header plus one stream list
	hdrlSize := 4 + (8 + mainHeaderLen) + (8 + 4 + (8 + streamHeaderLen) + (8 + bitmapInfoLen))
	buffer.WriteString(fccLIST)
	writeU32(&buffer, uint32(hdrlSize))
	buffer.WriteString(fccHdrl)

	// avih
	buffer.WriteString(fccAvih)
	writeU32(&buffer, uint32(mainHeaderLen))
	writeU32(&buffer, microSecPerFrame)
	writeU32(&buffer, 0) // max bytes per second
	writeU32(&buffer, 0) // padding granularity
	writeU32(&buffer, avifHasIndex)
	writeU32(&buffer, 0) // total frames, patched on Close
	writeU32(&buffer, 0) // initial frames
	writeU32(&buffer, 1) // streams
	writeU32(&buffer, frameBufferSize)
	writeU32(&buffer, uint32(width))
	writeU32(&buffer, uint32(height))
	for i := 0; i < 4; i++ {
		writeU32(&buffer, 0) // reserved
	}

	// strl list
	strlSize := 4 + (8 + streamHeaderLen) + (8 + bitmapInfoLen)
	buffer.WriteString(fccLIST)
	writeU32(&buffer, uint32(strlSize))
	buffer.WriteString(fccStrl)

	// strh
	buffer.WriteString(fccStrh)
	writeU32(&buffer, uint32(streamHeaderLen))
	buffer.WriteString(fccVids)
	buffer.WriteString(fccMJPG)
	writeU32(&buffer, 0) // flags
	writeU16(&buffer, 0) // priority
	writeU16(&buffer, 0) // language
	writeU32(&buffer, 0) // initial frames
	writeU32(&buffer, rateScale)
	writeU32(&buffer, uint32(fps*float64(rateScale))) // rate, fps = rate/scale
	writeU32(&buffer, 0)                              // start
	writeU32(&buffer, 0)                              // length in frames, patched on Close
	writeU32(&buffer, frameBufferSize)
	writeU32(&buffer, 0xFFFFFFFF) // quality, default
	writeU32(&buffer, 0)          // sample size, varies per frame
	writeU16(&buffer, 0)          // rcFrame left
	writeU16(&buffer, 0)          // rcFrame top
	writeU16(&buffer, uint16(width))
	writeU16(&buffer, uint16(height))

	// strf, BITMAPINFOHEADER
	buffer.WriteString(fccStrf)
	writeU32(&buffer, uint32(bitmapInfoLen))
	writeU32(&buffer, uint32(bitmapInfoLen))
	writeU32(&buffer, uint32(width))
	writeU32(&buffer, uint32(height))
	writeU16(&buffer, 1)  // planes
	writeU16(&buffer, 24) // bits per pixel
	buffer.WriteString(fccMJPG)
	writeU32(&buffer, frameBufferSize)
	writeU32(&buffer, 0) // x pixels per meter
	writeU32(&buffer, 0) // y pixels per meter
	writeU32(&buffer, 0) // colors used
	writeU32(&buffer, 0) // colors important

	// movi list, size patched on Close
	buffer.WriteString(fccLIST)
	writeU32(&buffer, 0)
	buffer.WriteString(fccMovi)

	header = buffer.Bytes()
	return
}

func writeU32(buffer *bytes.Buffer, value uint32) {
	var field [4]byte
	binary.LittleEndian.PutUint32(field[:], value)
	buffer.Write(field[:])
}

func writeU16(buffer *bytes.Buffer, value uint16) {
	var field [2]byte
	binary.LittleEndian.PutUint16(field[:], value)
	buffer.Write(field[:])
}
