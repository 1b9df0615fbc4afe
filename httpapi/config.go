package httpapi

// Config defines HTTP API and UI settings.
type Config struct {
	Addr            string
	SessionCookie   string
	SessionTTLHours int
	BaseURL         string
	BasePath        string
	// HubHistory bounds the per-session replay buffer for reconnecting streams.
	HubHistory int
	// Boot plays the boot sequence when a session is created.
	Boot bool
}
