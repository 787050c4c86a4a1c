package conform

// Version is the release of the conform module and CLI.
const Version = "0.3.0"
