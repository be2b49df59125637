// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

const defaultLinkPath = "/usr/local/bin/tldrr"

// installLink symlinks the running executable to link and reports the outcome
// to w. Failures are reported, not returned.
func installLink(w io.Writer, link string, executable func() (string, error)) {
	target, err := executable()
	if err != nil {
		fmt.Fprintf(w, "Error adding tldrr to PATH: %v\n", err)
		return
	}

	if _, err := os.Lstat(link); err == nil {
		fmt.Fprintf(w, "Symlink already exists at %s.\n", link)
		return
	}

	switch err := os.Symlink(target, link); {
	case err == nil:
		fmt.Fprintf(w, "Linked %s to %s. You can now use 'tldrr' globally.\n", link, target)
	case errors.Is(err, fs.ErrPermission):
		fmt.Fprintln(w, "Permission denied: Try running with sudo to add tldrr to PATH.")
	default:
		fmt.Fprintf(w, "Error adding tldrr to PATH: %v\n", err)
	}
}
