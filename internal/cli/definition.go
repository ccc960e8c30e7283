package cli

import "telemetrycap/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Telemetry Capture (telemetrycap)",
		FullDescription: "  Records telemetry lines and camera frames to rotating on-device files",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Capture
	root.ChildCommands["capture"] = &global.CommandSet{
		CommandName:     "capture",
		Description:     "Run Capture Session",
		FullDescription: "Runs a synthetic capture session writing telemetry lines and generated frames to the configured directory",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}
