// SPDX-License-Identifier: Unlicense OR MIT

/*
Package preset loads declarative button styles from YAML.

A preset file holds a list of named presets. Each preset describes the
geometry of a button and the appearance of its Normal state, with
optional overrides for the Selected and Disabled states:

	presets:
	  - name: primary
	    layout: image_left
	    corner_radius: 8
	    normal:
	      title: Continue
	      icon: send
	      background: "#2196f3"
	      title_color: "#ffffff"
	    selected:
	      title: Sent

Files are validated as a whole when loaded; Apply only converts.
*/
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// File is the top-level document of a preset file.
type File struct {
	Presets []Preset `yaml:"presets" validate:"required,min=1,dive"`
}

// Preset is the declarative description of a button.
type Preset struct {
	Name      string   `yaml:"name" validate:"required,preset_name"`
	Layout    string   `yaml:"layout" validate:"omitempty,layoutmode"`
	Alignment string   `yaml:"alignment" validate:"omitempty,alignment"`
	Spacing   *float32 `yaml:"spacing" validate:"omitempty,gte=0"`
	Insets    *Insets  `yaml:"insets"`
	// ImageSize is the size of icons, which have no natural size.
	ImageSize *Size  `yaml:"image_size"`
	Animation string `yaml:"animation" validate:"omitempty,animation"`
	Animated  *bool  `yaml:"animated"`
	FixedSize *Size  `yaml:"fixed_size"`

	CornerRadius float32 `yaml:"corner_radius" validate:"gte=0"`
	Circular     bool    `yaml:"circular"`
	Border       *Border `yaml:"border"`
	Shadow       bool    `yaml:"shadow"`

	Normal   StateStyle  `yaml:"normal"`
	Selected *StateStyle `yaml:"selected"`
	Disabled *StateStyle `yaml:"disabled"`
}

// StateStyle is the appearance of one button state. Empty fields are
// left unset.
type StateStyle struct {
	Title      *string  `yaml:"title"`
	Icon       string   `yaml:"icon" validate:"omitempty,icon"`
	Background string   `yaml:"background" validate:"omitempty,color"`
	ImageTint  string   `yaml:"image_tint" validate:"omitempty,color"`
	TitleColor string   `yaml:"title_color" validate:"omitempty,color"`
	Font       *Font    `yaml:"font"`
	ImageSize  *Size    `yaml:"image_size"`
	Alpha      *float32 `yaml:"alpha" validate:"omitempty,gte=0,lte=1"`
}

type Font struct {
	Typeface string  `yaml:"typeface"`
	Style    string  `yaml:"style" validate:"omitempty,oneof=regular italic"`
	Weight   int     `yaml:"weight" validate:"omitempty,min=100,max=900"`
	Size     float32 `yaml:"size" validate:"omitempty,gt=0"`
}

type Size struct {
	Width  float32 `yaml:"width" validate:"gt=0"`
	Height float32 `yaml:"height" validate:"gt=0"`
}

type Insets struct {
	Top    float32 `yaml:"top" validate:"gte=0"`
	Right  float32 `yaml:"right" validate:"gte=0"`
	Bottom float32 `yaml:"bottom" validate:"gte=0"`
	Left   float32 `yaml:"left" validate:"gte=0"`
}

type Border struct {
	Width float32 `yaml:"width" validate:"gt=0"`
	Color string  `yaml:"color" validate:"required,color"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, parses and validates the preset file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse parses and validates a preset file. Path is only used in
// errors.
func Parse(path string, data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewParseError(path, extractLine(err), err)
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Lookup returns the preset called name.
func (f *File) Lookup(name string) (*Preset, bool) {
	for i := range f.Presets {
		if f.Presets[i].Name == name {
			return &f.Presets[i], true
		}
	}
	return nil, false
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, err := fmt.Sscanf(matches[1], "%d", &line); err != nil {
		return 0
	}
	return line
}
