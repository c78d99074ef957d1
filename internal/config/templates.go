package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/discodec/internal/logging"
)

func Template() string {
	return fmt.Sprintf(defaultTemplate, strings.Join(logging.LevelNames(), " | "))
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(Template()), 0o600)
}

const defaultTemplate = `# disctl configuration
input_format = "hex"     # hex | raw
dump_indent = 2
strict_trailing = true   # reject bytes after the decoded record
log_level = "info"       # %s
stats = false            # print codec metrics after each command
`
