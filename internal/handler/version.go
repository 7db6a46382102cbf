package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo describes the running build
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit,omitempty"`
	BuiltAt   string `json:"built_at,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/VineyardSim_Go/internal/handler.Version=..."
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

const ServiceName = "vineyard"

// HandleVersion reports the build
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	info := currentVersion()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// currentVersion fills gaps in the linker flags from the embedded VCS stamp
func currentVersion() VersionInfo {
	info := VersionInfo{
		Service:   ServiceName,
		Version:   ResolveVersion(),
		GoVersion: runtime.Version(),
		Commit:    GitCommit,
		BuiltAt:   BuildTime,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuiltAt == "" {
				info.BuiltAt = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ResolveVersion prefers the linker flag, then $VERSION, then "dev"
func ResolveVersion() string {
	for _, v := range []string{Version, os.Getenv("VERSION")} {
		if v != "" && v != "dev" {
			return v
		}
	}
	return "dev"
}
