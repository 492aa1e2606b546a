package estate

// Version is the estatedesk release version.
const Version = "0.3.0"
