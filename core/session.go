package core

import (
	"path"
	"strings"

	"pkt.systems/termfolio/schema"
)

// SessionState is the per-session shell state that commands read and mutate.
type SessionState struct {
	History   *CommandHistory
	Cwd       string
	Home      string
	User      string
	Host      string
	ShellName string
}

// NewSessionState builds a session rooted at the configured home.
func NewSessionState(cfg schema.ShellConfig) *SessionState {
	return &SessionState{
		History:   NewCommandHistory(cfg.HistorySize),
		Cwd:       cfg.Home,
		Home:      cfg.Home,
		User:      cfg.User,
		Host:      cfg.Host,
		ShellName: cfg.ShellName,
	}
}

// DisplayPath renders the cwd with the home prefix shortened to ~.
func (s *SessionState) DisplayPath() string {
	cwd := path.Clean(s.Cwd)
	home := path.Clean(s.Home)
	switch {
	case cwd == home:
		return "~"
	case strings.HasPrefix(cwd, home+"/"):
		return "~" + strings.TrimPrefix(cwd, home)
	default:
		return cwd
	}
}

// Prompt returns the shell prompt, for example "anonym@objz:~$ ".
func (s *SessionState) Prompt() string {
	return s.User + "@" + s.Host + ":" + s.DisplayPath() + "$ "
}
