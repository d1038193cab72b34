package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pavel-webdev/file-organizer/models"
)

// SaveFileInfo writes the metadata record for one organized file into the
// metadata directory, named after the new name's stem. Output is indented
// UTF-8 with no HTML escaping so non-Latin names survive byte for byte.
func SaveFileInfo(metaDir string, info models.FileInfo) error {
	if err := os.MkdirAll(metaDir, 0755); err != nil {
		return fmt.Errorf("failed to create metadata dir: %w", err)
	}

	stem := strings.TrimSuffix(info.NewName, filepath.Ext(info.NewName))
	path := filepath.Join(metaDir, stem+".json")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metadata file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	return nil
}

// LoadFileInfo reads a metadata record back. Used by the web UI and tests.
func LoadFileInfo(path string) (models.FileInfo, error) {
	var info models.FileInfo

	data, err := os.ReadFile(path)
	if err != nil {
		return info, fmt.Errorf("failed to read metadata: %w", err)
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("failed to decode metadata: %w", err)
	}
	return info, nil
}
