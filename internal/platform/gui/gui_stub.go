//go:build !ebiten

package gui

// Run reports ErrNotBuilt; the window needs the ebiten build tag.
func Run(opts Options) error {
	return ErrNotBuilt
}
