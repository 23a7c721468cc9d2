package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/carlrannaberg/claudekit/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the claudekit app instance.
func Get() *cli.App {
	claudekitApp := &cli.App{
		Name: "claudekit",
		Usage: `
		Claudekit analyzes Claude Code session logs for productivity metrics
		and activity patterns. Point it at a time window and it reports
		throughput, active and idle time, break patterns, and peak hours.`,
		UsageText:            "[OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			startFlag,
			endFlag,
			sessionFileFlag,
			projectPathFlag,
			jsonFlag,
			noColorFlag,
		},
		Action: analyzeAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return claudekitApp
}
