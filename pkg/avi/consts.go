package avi

const (
	// RIFF fourcc tags
	fccRIFF string = "RIFF"
	fccAVI  string = "AVI "
	fccLIST string = "LIST"
	fccHdrl string = "hdrl"
	fccAvih string = "avih"
	fccStrl string = "strl"
	fccStrh string = "strh"
	fccStrf string = "strf"
	fccMovi string = "movi"
	fccIdx1 string = "idx1"
	fccVids string = "vids"
	fccMJPG string = "MJPG"

	// Video data chunk id for stream 0, compressed frames
	fccFrameChunk string = "00dc"

	// Fixed structure sizes
	mainHeaderLen   int = 56
	streamHeaderLen int = 56
	bitmapInfoLen   int = 40
	indexEntryLen   int = 16

	// Byte offsets of fields patched during finalization
	offRiffSize     int64 = 4
	offTotalFrames  int64 = 48
	offStreamLength int64 = 140
	offMoviSize     int64 = 216

	// Offset of the 'movi' fourcc; index entries are relative to it
	offMoviFourcc int64 = 220

	// Total fixed header length before the first frame chunk
	headerLen int64 = 224

	// Header flag advertising the idx1 chunk
	avifHasIndex uint32 = 0x00000010

	// Index flag marking every MJPEG frame as a keyframe
	aviifKeyframe uint32 = 0x00000010

	// Stream header timebase denominator (frame rates keep 3 decimals)
	rateScale uint32 = 1000

	// JPEG quality for encoded frames
	frameQuality int = 75
)
