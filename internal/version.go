package internal

// Version is the goodtranslator release version
const Version = "0.3.0"
