package sshserver

import "pkt.systems/termfolio/schema"

// Config defines SSH server settings.
type Config struct {
	Addr        string
	HostKeyPath string
	Theme       schema.ThemeName
	// Boot plays the boot sequence on every new session.
	Boot bool
}
