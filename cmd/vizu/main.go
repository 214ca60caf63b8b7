package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/arloliu/vizu/internal/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("vizu"),
		kong.Description("Animated data visualizations (bar chart races, animated scatter plots) for the terminal."),
	)
	if err := ctx.Run(); err != nil {
		ctx.Errorf("%v", err)
		os.Exit(1)
	}
}
