package util

// Version is the release of the chart tools, overridden with
// -ldflags "-X simplechart/lib/util.Version=...".
var Version = "0.1.0"

// GitCommit is the commit the tools were built from, set the same way.
var GitCommit = "unknown"
