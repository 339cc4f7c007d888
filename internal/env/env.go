package env

const AppName = "crackvault"

// Set at build time via -ldflags.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
