package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"telemetrycap/internal/global"
)

const (
	RootCLICommand  string = "root"
	helpMenuTrailer string = `
Report bugs to: dev@telemetrycap.io
TelemetryCap home page: <https://github.com/telemetrycap/telemetrycap>
`
)

// Full standardized help menu (wraps option printer as well)
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	const baseIndentSpaces = 2

	curCmdSet := rootCmd
	if command != "" && command != RootCLICommand {
		cmd, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Printf("Unknown command: %s\n", command)
			return
		}
		curCmdSet = cmd
	}

	// Build full usage path
	usageParts := []string{os.Args[0]}
	if curCmdSet != rootCmd {
		usageParts = append(usageParts, curCmdSet.CommandName)
	} else if len(curCmdSet.ChildCommands) > 0 {
		usageParts = append(usageParts, "[subcommand]")
	}
	if curCmdSet.UsageOption != "" {
		usageParts = append(usageParts, curCmdSet.UsageOption)
	}

	fmt.Printf("Usage: %s\n\n", strings.Join(usageParts, " "))

	// Description
	if curCmdSet == rootCmd {
		fmt.Println(curCmdSet.Description)
		fmt.Println(curCmdSet.FullDescription)
		fmt.Println()
	} else if curCmdSet.FullDescription != "" {
		fmt.Println("  Description:")
		fmt.Printf("    %s\n\n", curCmdSet.FullDescription)
	}

	// Subcommands
	if len(curCmdSet.ChildCommands) > 0 {
		indent := strings.Repeat(" ", baseIndentSpaces)
		fmt.Printf("%sSubcommands:\n", indent)

		maxLen := 0
		subNames := make([]string, 0, len(curCmdSet.ChildCommands))
		for name := range curCmdSet.ChildCommands {
			subNames = append(subNames, name)
			if len(name) > maxLen {
				maxLen = len(name)
			}
		}
		sort.Strings(subNames)

		cmdIndent := strings.Repeat(" ", baseIndentSpaces+2)
		for _, name := range subNames {
			sub := curCmdSet.ChildCommands[name]
			padding := strings.Repeat(" ", maxLen-len(name)+2)
			fmt.Printf("%s%s%s - %s\n", cmdIndent, name, padding, sub.Description)
		}
		fmt.Println()
	}

	// Flags
	printFlagOptions(fs, baseIndentSpaces)

	// Top-level trailer
	if curCmdSet == rootCmd {
		fmt.Print(helpMenuTrailer)
	}
}

// Custom printer to deduplicate short/long usages and indent automatically
func printFlagOptions(fs *flag.FlagSet, baseIndentSpaces int) {
	type optInfo struct {
		names      []string
		usage      string
		defaultVal string
	}

	// Merge flags registered under a short and a long name for the same usage
	seen := make(map[string]*optInfo)
	fs.VisitAll(func(arg *flag.Flag) {
		prefix := "--"
		if len(arg.Name) == 1 {
			prefix = "-"
		}

		opt, known := seen[arg.Usage]
		if known {
			opt.names = append(opt.names, prefix+arg.Name)
			return
		}
		seen[arg.Usage] = &optInfo{
			names:      []string{prefix + arg.Name},
			usage:      arg.Usage,
			defaultVal: arg.DefValue,
		}
	})

	opts := make([]*optInfo, 0, len(seen))
	maxLen := 0
	for _, opt := range seen {
		// Short name first
		sort.Slice(opt.names, func(indexA, indexB int) bool {
			return len(opt.names[indexA]) < len(opt.names[indexB])
		})
		opts = append(opts, opt)

		if nameLen := len(strings.Join(opt.names, ", ")); nameLen > maxLen {
			maxLen = nameLen
		}
	}
	sort.Slice(opts, func(indexA, indexB int) bool {
		return strings.ToLower(opts[indexA].names[0]) < strings.ToLower(opts[indexB].names[0])
	})

	fmt.Printf("%sOptions:\n", strings.Repeat(" ", baseIndentSpaces))
	for _, opt := range opts {
		left := strings.Join(opt.names, ", ")
		padding := strings.Repeat(" ", maxLen-len(left)+2)

		// Skip printing any "empty" defaults
		desc := opt.usage
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}

		fmt.Printf("%s%s%s%s\n", strings.Repeat(" ", baseIndentSpaces+2), left, padding, desc)
	}
}
