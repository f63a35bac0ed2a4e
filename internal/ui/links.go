package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoLink is returned when an item has no external reference to open.
var ErrNoLink = errors.New("no link")

// LinkOpener hands an external reference (https:, mailto:, tel: or a file
// path) to something outside the terminal.
type LinkOpener interface {
	Open(ref string) error
}

// SystemOpener opens references with the platform's default handler.
type SystemOpener struct{}

// Open starts the platform opener and returns without waiting for it.
func (SystemOpener) Open(ref string) error {
	if ref == "" {
		return ErrNoLink
	}
	name, args := openerCommand(runtime.GOOS)
	cmd := exec.Command(name, append(args, ref)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", ref, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func openerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// mailtoLink and telLink build contact references; empty input yields "".
func mailtoLink(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

func telLink(phone string) string {
	if phone == "" {
		return ""
	}
	return "tel:" + strings.Join(strings.Fields(phone), "")
}
