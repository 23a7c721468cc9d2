package app

import "github.com/urfave/cli/v2"

var (
	startFlag = &cli.StringFlag{
		Name:     "start",
		Aliases:  []string{"s"},
		Usage:    "Start of the reporting window (e.g. '2024-03-01T09:00:00Z')",
		Required: true,
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "End of the reporting window. Defaults to the end of the log",
	}

	sessionFileFlag = &cli.StringFlag{
		Name:    "session-file",
		Aliases: []string{"f"},
		Usage:   "Analyze a specific session file instead of auto-locating one",
	}

	projectPathFlag = &cli.StringFlag{
		Name:    "project-path",
		Aliases: []string{"p"},
		Value:   ".",
		Usage:   "Project path used to auto-locate the session file",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the metrics as JSON instead of a formatted report",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
