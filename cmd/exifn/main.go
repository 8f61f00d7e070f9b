// Command exifn prints the EXIF data of the images passed as arguments.
package main

import (
	"fmt"
	"os"

	"github.com/gen2brain/exifn"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s image1 image2 ...\n", os.Args[0])
		os.Exit(2)
	}

	for _, name := range os.Args[1:] {
		data, err := exifn.ParseFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in %s: %v\n", name, err)
			continue
		}

		fmt.Printf("%s %s exif entries: %d\n", name, data.Mime, len(data.Entries))

		for _, entry := range data.Entries {
			if entry.Tag == exifn.TagUnknownToMe {
				continue
			}
			fmt.Printf("\t%s: %s\n", entry.Tag, entry.Readable)
		}

		for _, warning := range data.Warnings {
			fmt.Fprintf(os.Stderr, "Warning in %s: %s\n", name, warning)
		}
	}
}
