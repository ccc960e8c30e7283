package global

type CommandSet struct {
	CommandName     string                 // Exact name of cli command
	UsageOption     string                 // Expected command value in usage top line
	Description     string                 // Short text displayed on parent command
	FullDescription string                 // Long text displayed on current command
	ChildCommands   map[string]*CommandSet // Available subcommands
}

type CtxKey string

// Per-writer rotation and retention settings
type RotationPolicy struct {
	FilePrefix       string `json:"filePrefix"`
	FileExtension    string `json:"fileExtension"`
	RotateSize       int64  `json:"rotateSizeBytes"`       // 0 disables size-based rotation
	Retain           int    `json:"retainCount"`           // matching files kept after a sweep plus the active file
	MinimumFreeSpace uint64 `json:"minimumFreeSpaceBytes"` // below this, no file is opened
}

// Capture engine settings for one process
type CaptureConfig struct {
	Directory   string  `json:"directory"`
	ToSystemLog bool    `json:"toSystemLog"`
	ToFile      bool    `json:"toFile"`
	MaxRecent   int     `json:"maxRecentEntries"`
	FrameRate   float64 `json:"frameRate"`

	Log   RotationPolicy `json:"log"`
	Video RotationPolicy `json:"video"`
}

// Fills in zero-valued fields with capture defaults
func (conf *CaptureConfig) ApplyDefaults() {
	if conf.MaxRecent <= 0 {
		conf.MaxRecent = DefaultMaxRecentEntries
	}
	if conf.FrameRate <= 0 {
		conf.FrameRate = DefaultFrameRate
	}
	if conf.Log.FilePrefix == "" {
		conf.Log.FilePrefix = LogFileName
	}
	if conf.Log.FileExtension == "" {
		conf.Log.FileExtension = LogFileExtension
	}
	if conf.Log.RotateSize <= 0 {
		conf.Log.RotateSize = DefaultRotateLogSize
	}
	if conf.Log.Retain <= 0 {
		conf.Log.Retain = DefaultKeepLogFiles
	}
	if conf.Log.MinimumFreeSpace == 0 {
		conf.Log.MinimumFreeSpace = DefaultMinimumFreeSpace
	}
	if conf.Video.FilePrefix == "" {
		conf.Video.FilePrefix = VideoFileName
	}
	if conf.Video.FileExtension == "" {
		conf.Video.FileExtension = VideoFileExtension
	}
	if conf.Video.Retain <= 0 {
		conf.Video.Retain = DefaultKeepVideoFiles
	}
	if conf.Video.MinimumFreeSpace == 0 {
		conf.Video.MinimumFreeSpace = DefaultMinimumFreeSpace
	}
}
