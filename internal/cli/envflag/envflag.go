// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envflag defines flags whose defaults can be overridden by
// environment variables.
package envflag

import (
	"flag"
	"strconv"
	"time"
)

// Type is a constraint that permits only types supported by envflag package.
type Type interface {
	int | bool | string | time.Duration
}

// Value defines a flag with the given name, default value and usage on fs.
//
// If the environment variable envName is set and parses as T, it replaces the
// default. Invalid values are ignored and the default is kept.
func Value[T Type](
	fs *flag.FlagSet, getenv func(string) string,
	name, envName string, value T, usage string,
) *T {
	p := new(T)
	*p = value
	if s := getenv(envName); s != "" {
		// Errors leave *p at the default.
		_ = set(p, s)
	}
	fs.Var(&flagValue[T]{p: p}, name, usage+" Can be overridden by "+envName+" environment variable.")
	return p
}

type flagValue[T Type] struct{ p *T }

func (f *flagValue[T]) String() string {
	if f.p == nil {
		return ""
	}
	switch v := any(*f.p).(type) {
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case time.Duration:
		return v.String()
	}
	return ""
}

func (f *flagValue[T]) Set(s string) error { return set(f.p, s) }

// IsBoolFlag lets boolean flags be passed without a value.
func (f *flagValue[T]) IsBoolFlag() bool {
	_, ok := any(f.p).(*bool)
	return ok
}

func set[T Type](p *T, s string) error {
	switch p := any(p).(type) {
	case *int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*p = v
	case *string:
		*p = s
	case *time.Duration:
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}
