package cmd

import (
	"strings"

	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// ParseHeaders converts repeated "Key: Value" options into a header map. A
// header without a colon fails argument parsing.
func ParseHeaders(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))
	for _, value := range values {
		key, val, ok := strings.Cut(value, ":")
		if !ok {
			return nil, tool.NewConfigError("header must be in 'Key: Value' format, got %q", value)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return headers, nil
}
