// Where: internal/infra/config/profile.go
// What: Optional YAML profile with generation defaults.
// Why: Let a project pin its tileset name and size without repeating arguments.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/poruru/tileblank/internal/constants"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

const schemaURL = "file:///tileblank/profile.schema.json"

//go:embed profile.schema.json
var profileSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Profile holds defaults read from a YAML file such as:
//
//	filename: bank0.chr
//	banks: 2
//	strict: true
type Profile struct {
	Filename string `yaml:"filename,omitempty"`
	Size     *int64 `yaml:"size,omitempty"`
	Banks    int    `yaml:"banks,omitempty"`
	Strict   bool   `yaml:"strict,omitempty"`
}

// ResolveProfilePath returns the explicit path if set, otherwise the
// TILEBLANK_CONFIG env var. Empty means no profile.
func ResolveProfilePath(explicit string) string {
	if path := strings.TrimSpace(explicit); path != "" {
		return path
	}
	return strings.TrimSpace(os.Getenv(constants.EnvConfigPath))
}

// LoadProfile reads, validates and decodes a profile file.
func LoadProfile(path string) (Profile, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return ParseProfile(payload)
}

// ParseProfile validates payload against the profile schema and decodes it.
// An empty document yields a zero Profile.
func ParseProfile(payload []byte) (Profile, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return Profile{}, nil
	}
	if err := validateProfile(payload); err != nil {
		return Profile{}, fmt.Errorf("validate profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(payload, &profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

func validateProfile(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(profileSchema)); err != nil {
			schemaErr = fmt.Errorf("add profile schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
