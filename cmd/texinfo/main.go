package main

import (
	"flag"
	"fmt"
	"os"

	"softraster/internal/texture"
)

func inspect(path string, channels int, tex []texture.Option, grid int, span float64) error {
	info, err := texture.Stat(path)
	if err != nil {
		return err
	}
	img, err := texture.Load(path, channels)
	if err != nil {
		return err
	}
	fmt.Printf("OK  %s  %s %dx%d, %d channel(s)\n", path, info.Format, img.Width, img.Height, img.Channels)

	if grid <= 0 {
		return nil
	}
	t := texture.New(img, tex...)
	fmt.Printf("    samples (%s, %s), u/v from 0 to %.2f:\n", t.SampleMode(), t.WrapMode(), span)
	for j := 0; j < grid; j++ {
		fmt.Print("    ")
		for i := 0; i < grid; i++ {
			u := span * float64(i) / float64(max(grid-1, 1))
			v := span * float64(j) / float64(max(grid-1, 1))
			fmt.Printf(" %v", t.Sample(u, v))
		}
		fmt.Println()
	}
	return nil
}

func main() {
	channels := flag.Int("channels", 0, "Channel count to load with, 1-4 (default: from file)")
	sample := flag.String("sample", "nearest", "Sample mode: nearest or bilinear")
	wrap := flag.String("wrap", "clamp", "Wrap mode: clamp, repeat or mirror")
	grid := flag.Int("grid", 0, "Print an NxN grid of samples")
	span := flag.Float64("span", 1, "UV range covered by the sample grid")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: texinfo [flags] image...")
		os.Exit(2)
	}

	sm, err := texture.ParseSampleMode(*sample)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	wm, err := texture.ParseWrapMode(*wrap)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opts := []texture.Option{texture.WithSampleMode(sm), texture.WithWrapMode(wm)}

	errors := 0
	for _, path := range flag.Args() {
		if err := inspect(path, *channels, opts, *grid, *span); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
}
