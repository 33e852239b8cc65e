package config

import (
	"os/exec"
	"strings"
	"time"
)

// MetadataCollector stamps saved configs with when and from which commit they
// were written
type MetadataCollector struct {
	timestamp time.Time
	gitCommit string
}

// NewMetadataCollector captures the current time and, when run inside a git
// checkout, the HEAD commit
func NewMetadataCollector() *MetadataCollector {
	commit, _ := currentGitCommit()
	return &MetadataCollector{
		timestamp: time.Now().UTC(),
		gitCommit: commit,
	}
}

func currentGitCommit() (string, error) {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PopulateMetadata fills in the metadata fields of the config
func (mc *MetadataCollector) PopulateMetadata(config *RenderConfig) {
	config.Metadata.Timestamp = mc.timestamp.Format("2006-01-02 15:04:05")
	config.Metadata.GitCommit = mc.gitCommit
}
