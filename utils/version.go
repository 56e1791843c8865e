package utils

import "fmt"

// Version holds the components of the build version.
type Version struct {
	Str       string `json:"str"`
	Branch    string `json:"branch"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// ServiceReport is the structure for the /service endpoint response.
type ServiceReport struct {
	Version Version `json:"version"`
	Health  Health  `json:"health"`
}

var (
	// Version information is injected by the build process.
	versionStr = "0.0.0"
	gitBranch  = "unknown"
	gitCommit  = "unknown"
	buildDate  = "unknown"
)

// SetVersion sets the version information for the service.
func SetVersion(version, branch, commit, date string) {
	if version != "" {
		versionStr = version
	}
	if branch != "" {
		gitBranch = branch
	}
	if commit != "" {
		gitCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

// GetVersion returns the version information for the service.
func GetVersion() Version {
	return Version{
		Str:       fmt.Sprintf("%s.%s.%s", versionStr, gitBranch, gitCommit),
		Branch:    gitBranch,
		Commit:    gitCommit,
		BuildDate: buildDate,
	}
}
