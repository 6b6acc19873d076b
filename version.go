package tracediff

// Version is the library version, overridable at build time with
// -ldflags "-X github.com/verticelabs/tracediff.Version=...".
var Version = "0.3.0"
