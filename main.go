package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Dawnology/WplacePixelConverter/convert"
	"github.com/Dawnology/WplacePixelConverter/parallel"
)

var cli struct {
	Convert convert.CLICmd `cmd:"" help:"Convert images in a folder to a fixed palette with dithering"`

	Workers int  `help:"Number of parallel workers, 0 = one per CPU" default:"0"`
	Verbose bool `help:"Enable debug logging" short:"v"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("wplaceconv"),
		kong.Description("Converts images into palette-constrained pixel art."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pool := parallel.Start(cli.Workers)
	err := kctx.Run(pool.Do, pool.Wait)
	kctx.FatalIfErrorf(err)
}
