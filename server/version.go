package server

// Version is reported in ServerInfo and by --version.
const Version = "0.1.0"
