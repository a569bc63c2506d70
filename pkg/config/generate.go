package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/projmarks/pkg/errors"
)

const generatedHeader = "# projmarks configuration\n# Generated by \"projmarks genconfig\".\n\n"

// Generate renders cfg as a TOML config file.
func Generate(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return append([]byte(generatedHeader), data...), nil
}

// GenerateCommented renders cfg with every setting commented out, as a
// starting point that changes nothing until edited.
func GenerateCommented(cfg *Config) ([]byte, error) {
	data, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	return []byte(commentOutValues(string(data))), nil
}

// commentOutValues comments out every assignment, leaving blank lines,
// comments and table headers alone.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			continue
		}
		lines[i] = "# " + line
	}
	return strings.Join(lines, "\n")
}
