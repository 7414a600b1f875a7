package tool

import "encoding/json"

// Dialect selects the output key naming convention of the target LLM
// function-calling API.
type Dialect string

const (
	// DialectOpenAI keys the parameter schema as "parameters".
	DialectOpenAI Dialect = "openai"
	// DialectClaude keys the parameter schema as "input_schema".
	DialectClaude Dialect = "claude"
)

// Validate reports a ConfigError for any dialect other than openai or claude.
func (d Dialect) Validate() error {
	switch d {
	case DialectOpenAI, DialectClaude:
		return nil
	}
	return NewConfigError("fmt must be 'openai' or 'claude', got %q", string(d))
}

// ParametersKey returns the JSON key under which the parameter schema is
// emitted for this dialect.
func (d Dialect) ParametersKey() string {
	if d == DialectClaude {
		return "input_schema"
	}
	return "parameters"
}

// ParseDialect converts a raw format string into a Dialect.
func ParseDialect(value string) (Dialect, error) {
	d := Dialect(value)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Tool describes one invocable operation: its name, description and the
// schema of its parameters. The dialect decides the JSON key the parameter
// schema is emitted under.
type Tool struct {
	Name        string
	Description string
	Dialect     Dialect
	Parameters  *Schema
}

func (t Tool) MarshalJSON() ([]byte, error) {
	record := struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Parameters  *Schema `json:"parameters,omitempty"`
		InputSchema *Schema `json:"input_schema,omitempty"`
	}{Name: t.Name, Description: t.Description}
	if t.Dialect.ParametersKey() == "input_schema" {
		record.InputSchema = t.Parameters
	} else {
		record.Parameters = t.Parameters
	}
	return json.Marshal(record)
}
