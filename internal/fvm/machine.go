package fvm

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/list.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// SchemaError reports machine output that parsed as JSON but does not have
// the expected shape.
type SchemaError struct {
	Issues []string
}

func (e *SchemaError) Error() string {
	return "unexpected fvm list --machine output: " + strings.Join(e.Issues, "; ")
}

// machineVersion is one entry of the machine listing. fvm has shipped both
// "channel" and "releaseFromChannel" for the same information.
type machineVersion struct {
	Name               string  `json:"name"`
	Channel            *string `json:"channel"`
	ReleaseFromChannel *string `json:"releaseFromChannel"`
	IsGlobal           bool    `json:"isGlobal"`
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("list.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("list.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ParseMachine parses the JSON printed by `fvm list --machine`. Both a bare
// array of versions and an object with a "versions" array are accepted.
// Entries with an empty name are dropped.
func ParseMachine(data []byte) ([]Record, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing machine listing: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("validating machine listing: %w", err)
		}
		return nil, &SchemaError{Issues: collectIssues(ve)}
	}

	var entries []machineVersion
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &entries)
	} else {
		var wrapped struct {
			Versions []machineVersion `json:"versions"`
		}
		err = json.Unmarshal(trimmed, &wrapped)
		entries = wrapped.Versions
	}
	if err != nil {
		return nil, fmt.Errorf("decoding machine listing: %w", err)
	}

	records := []Record{}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		rec := Record{Name: name, IsGlobal: e.IsGlobal}
		switch {
		case e.Channel != nil:
			rec.Channel = *e.Channel
		case e.ReleaseFromChannel != nil:
			rec.Channel = *e.ReleaseFromChannel
		}
		records = append(records, rec)
	}
	return records, nil
}

// collectIssues flattens the validation error tree into leaf messages.
func collectIssues(ve *jsonschema.ValidationError) []string {
	var issues []string
	seen := make(map[string]bool)

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		if e.ErrorKind == nil {
			return
		}
		msg := e.ErrorKind.LocalizedString(printer)
		if len(e.InstanceLocation) > 0 {
			msg = "/" + strings.Join(e.InstanceLocation, "/") + ": " + msg
		}
		if !seen[msg] {
			seen[msg] = true
			issues = append(issues, msg)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		issues = append(issues, ve.Error())
	}
	return issues
}
