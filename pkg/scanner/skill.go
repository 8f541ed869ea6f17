package scanner

import (
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/types"
	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// SkillMetadata is the YAML frontmatter of a SKILL.md file
type SkillMetadata struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	License     string            `yaml:"license,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// ReadSkillMetadata parses the frontmatter of the skill file at path. A
// file without frontmatter yields empty metadata and no error.
func ReadSkillMetadata(fsys types.FS, path string) (*SkillMetadata, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return ParseSkillMetadata(string(data))
}

// ParseSkillMetadata extracts the frontmatter block delimited by "---"
// lines at the very start of content
func ParseSkillMetadata(content string) (*SkillMetadata, error) {
	meta := &SkillMetadata{}

	block, ok := frontmatter(content)
	if !ok {
		return meta, nil
	}

	if err := yaml.Unmarshal([]byte(block), meta); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid skill frontmatter")
	}
	return meta, nil
}

func frontmatter(content string) (string, bool) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return "", false
	}

	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == frontmatterDelimiter {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}
