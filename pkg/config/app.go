package config

// AppVersion is set at build time with -ldflags.
var AppVersion = "DEVELOPMENT"
