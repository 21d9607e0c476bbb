// SPDX-License-Identifier: Unlicense OR MIT

package preset

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/flexui/flexbutton/widget"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	namePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

	layoutModes = map[string]widget.LayoutMode{
		"image_left":   widget.ImageLeft,
		"image_right":  widget.ImageRight,
		"image_top":    widget.ImageTop,
		"image_bottom": widget.ImageBottom,
	}
	alignments = map[string]widget.Alignment{
		"center":          widget.AlignCenter,
		"leading":         widget.AlignLeading,
		"trailing":        widget.AlignTrailing,
		"top":             widget.AlignTop,
		"bottom":          widget.AlignBottom,
		"leading_top":     widget.AlignLeadingTop,
		"leading_bottom":  widget.AlignLeadingBottom,
		"trailing_top":    widget.AlignTrailingTop,
		"trailing_bottom": widget.AlignTrailingBottom,
	}
	animations = map[string]widget.TapAnimation{
		"none":       widget.TapNone,
		"scale":      widget.TapScale,
		"bounce":     widget.TapBounce,
		"flash":      widget.TapFlash,
		"shake":      widget.TapShake,
		"pulse":      widget.TapPulse,
		"fade_scale": widget.TapFadeScale,
	}
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("preset_name", func(fl validator.FieldLevel) bool {
			return namePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("layoutmode", keyOf(layoutModes))
		_ = v.RegisterValidation("alignment", keyOf(alignments))
		_ = v.RegisterValidation("animation", keyOf(animations))
		_ = v.RegisterValidation("icon", keyOf(iconData))

		validateInst = v
	})

	return validateInst
}

func keyOf[T any](m map[string]T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := m[fl.Field().String()]
		return ok
	}
}

// Validate checks every preset of f and reports the first problem.
func Validate(f *File) error {
	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}
	seen := make(map[string]bool)
	for i, p := range f.Presets {
		if seen[p.Name] {
			return NewValidationError(fmt.Sprintf("presets[%d].name", i), fmt.Sprintf("duplicate preset name %q", p.Name), nil)
		}
		seen[p.Name] = true
	}
	return nil
}

// convertValidationError normalizes validator errors into preset
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return NewValidationError(field, msg, err)
	}

	return NewValidationError("presets", err.Error(), err)
}

// yamlFieldName returns the namespace of fe without the root type.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
