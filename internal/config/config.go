// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config layers an optional dotenv file under the process
// environment.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFile returns the path of the dotenv file: $TLDRR_ENV_FILE, else
// $XDG_CONFIG_HOME/tldrr/env, else $HOME/.config/tldrr/env. It returns ""
// if none of these variables is set.
func EnvFile(getenv func(string) string) string {
	if p := getenv("TLDRR_ENV_FILE"); p != "" {
		return p
	}
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tldrr", "env")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "tldrr", "env")
	}
	return ""
}

// Overlay returns a getenv function that falls back to the variables of the
// dotenv file when getenv returns an empty string.
//
// A missing file is not an error. If the file can't be read or parsed,
// Overlay returns getenv unchanged along with the error.
func Overlay(getenv func(string) string) (func(string) string, error) {
	path := EnvFile(getenv)
	if path == "" {
		return getenv, nil
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return getenv, nil
	}
	if err != nil {
		return getenv, err
	}

	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return vars[key]
	}, nil
}
