package global

const (
	// Descriptive names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion string = "v0.3.0"

	DefaultConfigPath string = "/etc/telemetrycap/config.json"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	// Telemetry log file naming
	LogFileName      string = "telemetry_log"
	LogFileExtension string = ".txt"

	// Video file naming
	VideoFileName      string = "video"
	VideoFileExtension string = ".avi"

	// Marker file that keeps media indexers out of the capture directory
	NoMediaFileName string = ".nomedia"

	// Log line that closes the active log file instead of being recorded
	CloseControlLine string = "TelemetryLog:close"

	// Capture defaults
	DefaultMaxRecentEntries int     = 50
	DefaultRotateLogSize    int64   = 2 * 1024 * 1024
	DefaultMinimumFreeSpace uint64  = 128 * 1024 * 1024
	DefaultKeepLogFiles     int     = 4
	DefaultKeepVideoFiles   int     = 12
	DefaultFrameRate        float64 = 12.0

	// Timestamp layouts
	RotateStampLayout string = "20060102_150405"
	StartStampLayout  string = "2006-01-02 15:04:05.000"

	// Namespacing Name Components
	NSTest      string = "Test"
	NSCapture   string = "Capture"
	NSTelemetry string = "Telemetry"
	NSVideo     string = "Video"
	NSStorage   string = "Storage"
)
