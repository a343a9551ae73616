package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

type Configuration struct {
	// Prompt is printed before each line is read.
	Prompt string `json:"prompt"`

	// LineCapacity is the size of the input buffer, including the newline.
	LineCapacity int `json:"line_capacity" validate:"gte=2"`

	// ExitKeyword ends the session when it's the entire line.
	ExitKeyword string `json:"exit_keyword" validate:"required,alphanum"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// LineLimit is the number of usable characters in a line.
func (c *Configuration) LineLimit() int {
	return c.LineCapacity - 1
}

// MaxArgs is the largest number of arguments a line can be split into. The
// shortest argument is one character followed by a space, and one slot of
// the capacity is reserved for the end of the list.
func (c *Configuration) MaxArgs() int {
	return c.LineCapacity / 2
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
