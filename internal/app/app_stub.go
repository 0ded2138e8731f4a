//go:build !ebiten

package app

import "errors"

// ErrNoGUI reports that the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the viewer requires building with the 'ebiten' tag")

// Run always fails in the headless build.
func Run(*Playback, Options) error { return ErrNoGUI }
