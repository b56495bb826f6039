package main

import (
	"log"
	"os/exec"
	"runtime"
)

// openTarget hands the activated value to the platform's default
// handler.
func openTarget(value string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", value)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", value)
	default:
		cmd = exec.Command("xdg-open", value)
	}

	log.Printf("Opening %s", value)
	return cmd.Start()
}
