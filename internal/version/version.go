package version

// Version is the hwscan release version. It can be overridden at build time:
//
//	go build -ldflags "-X hwscan/internal/version.Version=1.2.3"
var Version = "0.1.0-dev"
