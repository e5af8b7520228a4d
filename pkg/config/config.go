// Package config carries the document-local, .editorconfig-style record
// named in §6: a passive, yaml-tagged value type the core consumes. It
// neither discovers nor parses .editorconfig files (an external
// collaborator per §1) — only (de)serializes Config values, the same
// restricted role gopkg.in/yaml.v3 plays in the teacher's
// internal/config/frontmatter.go for frontmatter blocks.
package config

import "gopkg.in/yaml.v3"

// IndentStyle is either tabs or spaces.
type IndentStyle string

const (
	IndentTab   IndentStyle = "tab"
	IndentSpace IndentStyle = "space"
)

// EndOfLine is the line-ending convention a buffer is saved with.
type EndOfLine string

const (
	EOLLF   EndOfLine = "lf"
	EOLCR   EndOfLine = "cr"
	EOLCRLF EndOfLine = "crlf"
)

// Config is a document-local editing configuration record. Every field has
// a yaml tag so it round-trips through gopkg.in/yaml.v3, matching the
// teacher's frontmatter convention.
type Config struct {
	IndentStyle       IndentStyle `yaml:"indent_style"`
	IndentSize        int         `yaml:"indent_size"`
	TabWidth          int         `yaml:"tab_width"`
	EndOfLine         EndOfLine   `yaml:"end_of_line"`
	InsertFinalNewline bool       `yaml:"insert_final_newline"`
	// BackupIdleTimeoutSeconds is how long the buffer must sit unedited
	// before the external saver mirrors it to a sibling backup file (§2.3);
	// the core only carries the value, the timer and file I/O live outside.
	BackupIdleTimeoutSeconds int `yaml:"backup_idle_timeout_seconds"`
}

// Default returns the fallback configuration used when no document-local
// record and no heuristic guess are available.
func Default() Config {
	return Config{
		IndentStyle:              IndentSpace,
		IndentSize:               4,
		TabWidth:                 4,
		EndOfLine:                EOLLF,
		InsertFinalNewline:       true,
		BackupIdleTimeoutSeconds: 30,
	}
}

// Marshal serializes c to YAML.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// Unmarshal parses a YAML document into a Config, starting from Default()
// so any fields the document omits keep their default values.
func Unmarshal(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
