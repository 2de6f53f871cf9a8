// Command vlistdemo shows lines of text in a scrolling list and prints the
// one chosen.
//
//	ls /roms | vlistdemo --fullscreen
//	vlistdemo --backend term items.txt
package main

import (
	"os"
	"runtime"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
