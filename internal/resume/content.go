// Package resume serves the static site content.
package resume

import (
	"fmt"
	"os"

	"resume_portal_backend/sitekit/content"

	"gopkg.in/yaml.v3"
)

// LoadContent reads resume content from a YAML file. An empty path returns
// the built-in default content.
func LoadContent(path string) (content.Resume, error) {
	if path == "" {
		return content.Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return content.Resume{}, fmt.Errorf("read resume content: %w", err)
	}

	var res content.Resume
	if err := yaml.Unmarshal(data, &res); err != nil {
		return content.Resume{}, fmt.Errorf("parse resume content: %w", err)
	}

	if res.Name == "" {
		return content.Resume{}, fmt.Errorf("resume content: name is required")
	}

	return res, nil
}
