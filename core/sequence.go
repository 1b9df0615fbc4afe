package core

import (
	"time"

	"pkt.systems/termfolio/schema"
)

// Step is one animation step: either a line (optionally typed out rune by
// rune) or a buffer clear, followed by a pause.
type Step struct {
	Text      string
	Type      schema.LineType
	Color     string
	CharDelay time.Duration
	Delay     time.Duration
	Clear     bool
}

var kernelMessages = []string{
	"Loading Linux kernel version 6.8.9-arch1-1...",
	"Loading initial ramdisk (initramfs)...",
	"Starting systemd-udevd v254.5-1...",
	"Probing hardware...",
	"Detected storage device: /dev/nvme0n1",
	"Detected storage device: /dev/sda",
	"Started udev Kernel Device Manager.",
	"Activating swap on /dev/sda2...",
	"Mounting root filesystem...",
	"Checking file system on /dev/sda1...",
	"Mounting /boot...",
	"Mounting /home...",
	"Mounting /var...",
	"Starting systemd-journald.service...",
	"Starting systemd-tmpfiles-setup-dev.service...",
	"Starting systemd-sysctl.service...",
	"Starting Load Kernel Modules...",
	"Loading kernel modules: i915 ext4 fuse...",
	"Started Rule-based Manager for Device Events and Filesystems.",
	"Starting Network Manager...",
	"Started Network Time Synchronization.",
	"Starting Login Service (systemd-logind)...",
	"Starting Authorization Manager (polkitd)...",
	"Starting User Manager for UID 1000...",
	"Started Getty on tty1.",
	"Reached target Multi-User System.",
	"Starting Interface...",
}

var logoLines = []string{
	"                                                    ",
	" ░▒▓██████▓▒░░▒▓███████▓▒░       ░▒▓█▓▒░▒▓████████▓▒░ ",
	"░▒▓█▓▒░░▒▓█▓▒░▒▓█▓▒░░▒▓█▓▒░      ░▒▓█▓▒░      ░▒▓█▓▒░",
	"░▒▓█▓▒░░▒▓█▓▒░▒▓█▓▒░░▒▓█▓▒░      ░▒▓█▓▒░    ░▒▓██▓▒░ ",
	"░▒▓█▓▒░░▒▓█▓▒░▒▓███████▓▒░       ░▒▓█▓▒░  ░▒▓██▓▒░   ",
	"░▒▓█▓▒░░▒▓█▓▒░▒▓█▓▒░░▒▓█▓▒░▒▓█▓▒░░▒▓█▓▒░░▒▓██▓▒░     ",
	"░▒▓█▓▒░░▒▓█▓▒░▒▓█▓▒░░▒▓█▓▒░▒▓█▓▒░░▒▓█▓▒░▒▓█▓▒░       ",
	" ░▒▓██████▓▒░░▒▓███████▓▒░ ░▒▓██████▓▒░░▒▓████████▓▒░",
	"                                                    ",
}

// BootSequence returns kernel messages, the logo and the login banner for user.
func BootSequence(user string) []Step {
	steps := make([]Step, 0, len(kernelMessages)+len(logoLines)+12)
	for _, msg := range kernelMessages {
		steps = append(steps, Step{Text: msg, Type: schema.LineBoot, Delay: 15 * time.Millisecond})
	}
	steps = append(steps,
		Step{Type: schema.LineNormal},
		Step{Text: "Started objz Terminal", Type: schema.LineBoot, Delay: 200 * time.Millisecond},
		Step{Type: schema.LineNormal},
	)
	for _, line := range logoLines {
		steps = append(steps, Step{
			Text:      line,
			Type:      schema.LineTyping,
			Color:     schema.ColorCyan,
			CharDelay: 10 * time.Millisecond,
			Delay:     30 * time.Millisecond,
		})
	}
	pause := 60 * time.Millisecond
	steps = append(steps,
		Step{Text: "Arch Linux 6.6.32-1-lts (tty1)", Type: schema.LineSystem, Color: schema.ColorGreen, Delay: pause},
		Step{Type: schema.LineNormal, Delay: pause},
		Step{Text: "login: " + user, Type: schema.LineTyping, CharDelay: 50 * time.Millisecond, Delay: pause},
		Step{Text: "password: ••••••••", Type: schema.LineTyping, CharDelay: 50 * time.Millisecond, Delay: pause},
		Step{Type: schema.LineNormal, Delay: pause},
		Step{Text: "Last login: Mon May 27 13:59:36 2025", Type: schema.LineSystem, Color: schema.ColorWhite, Delay: pause},
		Step{Text: "Type 'help' for further information", Type: schema.LineSystem, Color: schema.ColorYellow, Delay: pause},
		Step{Type: schema.LineNormal, Delay: pause},
	)
	return steps
}

// PanicSequence is played after "sudo rm -rf /".
func PanicSequence() []Step {
	step := 500 * time.Millisecond
	line := func(text, color string) Step {
		return Step{Text: text, Type: schema.LineSystem, Color: color, Delay: step}
	}
	return []Step{
		{Clear: true},
		line("⚠️  CRITICAL SYSTEM ERROR ⚠️", schema.ColorError),
		line("", ""),
		line("Deleting root filesystem...", schema.ColorWarning),
		line("rm: removing /usr... ████████████░░░░ 75%", schema.ColorWarning),
		line("rm: removing /var... ██████████████░░ 87%", schema.ColorWarning),
		line("rm: removing /etc... ████████████████ 100%", schema.ColorWarning),
		line("", ""),
		line("SYSTEM DESTROYED ☠️", schema.ColorError),
		line("", ""),
		line("Just kidding! This is a just website, not your actual system.", schema.ColorSuccess),
		line("Nice try though! 😉", schema.ColorSuccess),
		line("", ""),
		{Text: "(Don't actually run 'sudo rm -rf /' on real systems!)", Type: schema.LineSystem, Color: schema.ColorWarning, Delay: step + 2*time.Second},
		{Clear: true},
		{Text: "System restored! Terminal is back online.", Type: schema.LineSystem, Color: schema.ColorSuccess},
		{Type: schema.LineNormal},
	}
}
