package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// ErrUnknownKey is returned for keys that are not registered.
var ErrUnknownKey = errors.New("unknown key")

// Lookup returns the field registered under k. Unknown keys fail with the closest registered key as a hint.
func Lookup(k string) (Field, error) {
	if f, ok := Default[k]; ok {
		return f, nil
	}

	return Field{}, fmt.Errorf(
		"%w %s, did you mean %s?",
		ErrUnknownKey,
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(Closest(k)),
	)
}

// Closest returns the registered key with the smallest edit distance to k.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		da, db := levenshtein.Distance(k, a), levenshtein.Distance(k, b)
		if da == db {
			return a < b
		}
		return da < db
	})
}

// Parse converts command-line values to the type of the field registered under k.
func Parse(k string, raw []string) (any, error) {
	f, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	if _, ok := f.Value.([]string); ok {
		return raw, nil
	}

	if len(raw) != 1 {
		return nil, fmt.Errorf("%s takes exactly one value, got %d", k, len(raw))
	}
	value := raw[0]

	switch f.Value.(type) {
	case string:
		return value, nil
	case int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", k, value)
		}
		return n, nil
	case float64:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", k, value)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", k, value)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", k, f.Type())
	}
}
