// Command folio is a terminal portfolio: a scrolling page with a typed-out
// tagline, a photo carousel, a media lightbox and scroll-spy navigation.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
