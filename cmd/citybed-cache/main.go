// Command citybed-cache rebuilds and validates the citybed corpus cache.
//
// Usage:
//
//	go run ./cmd/citybed-cache rebuild --data-dir ./citybed-data --cache-dir ./citybed-cache
//	go run ./cmd/citybed-cache validate --cache-dir ./citybed-cache
//
// Both subcommands are ordinary programs built entirely on top of the
// public citybed API — they hold no special access to the engine.
package main

import (
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/arwen-gis/citybed"
)

func main() {
	app := &cli.App{
		Name:  "citybed-cache",
		Usage: "rebuild or validate the offline geocoding corpus cache",
		Commands: []*cli.Command{
			{
				Name:  "rebuild",
				Usage: "download source data if needed and regenerate the binary cache",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data-dir", Value: "./citybed-data"},
					&cli.StringFlag{Name: "cache-dir", Value: "./citybed-cache"},
				},
				Action: runRebuild,
			},
			{
				Name:  "validate",
				Usage: "load the cache and run integrity/functional checks",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data-dir", Value: "./citybed-data"},
					&cli.StringFlag{Name: "cache-dir", Value: "./citybed-cache"},
				},
				Action: runValidate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "citybed-cache: %v\n", err)
		os.Exit(1)
	}
}

func runRebuild(ctx *cli.Context) error {
	bar := pb.StartNew(1)
	bar.SetTemplateString(`{{string . "stage"}} {{bar . }} {{percent .}}`)
	bar.Set("stage", "rebuilding corpus...")
	defer bar.Finish()

	opts := []citybed.Option{
		citybed.WithDataDir(ctx.String("data-dir")),
		citybed.WithCacheDir(ctx.String("cache-dir")),
	}

	if err := citybed.RegenerateCache(opts...); err != nil {
		return fmt.Errorf("regenerating cache: %w", err)
	}
	bar.Increment()

	fmt.Println("Cache regenerated. Compress it for distribution with:")
	fmt.Printf("  bzip2 -f %s/*.gob\n", ctx.String("cache-dir"))
	return nil
}

func runValidate(ctx *cli.Context) error {
	opts := []citybed.Option{
		citybed.WithDataDir(ctx.String("data-dir")),
		citybed.WithCacheDir(ctx.String("cache-dir")),
	}

	g, err := citybed.Create(opts...)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	fmt.Printf("countries: %s\n", humanize.Comma(int64(len(g.Countries()))))

	if err := g.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Println("OK")
	return nil
}
