package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/energye/systray"
	_ "github.com/sergeymakinen/go-ico" // registers "ico" with image.Decode

	"github.com/Mavwarf/mkicon/internal/config"
)

// runPreview shows the generated icon in the system tray until Quit is
// chosen. Blocks.
func runPreview(cfg config.Config) {
	data, err := build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// systray's hidden window and its message loop must share a thread.
	runtime.LockOSThread()
	systray.Run(func() { onTrayReady(cfg, data) }, func() {})
}

// onTrayReady installs the icon. The full ICO container is passed as-is:
// Windows loads it natively, while the Unix backend runs it through
// image.Decode, which needs the go-ico decoder registered above.
func onTrayReady(cfg config.Config, data []byte) {
	systray.SetIcon(data)
	systray.SetTooltip(fmt.Sprintf("mkicon preview (%d sizes)", len(cfg.Sizes)))

	write := func() {
		if err := writeIcon(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	systray.SetOnDClick(func(menu systray.IMenu) { write() })

	mWrite := systray.AddMenuItem("Write "+cfg.Output, "Write the previewed icon to disk")
	mWrite.Click(write)

	systray.AddSeparator()

	mQuit := systray.AddMenuItem("Quit", "Close the preview")
	mQuit.Click(func() {
		systray.Quit()
		os.Exit(0)
	})
}
