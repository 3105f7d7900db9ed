package version

// Version is the suite version reported by --version.
// Overridable at build time via -ldflags "-X patlas2json/internal/version.Version=...".
var Version = "1.0.0"
