//go:build !linux

package framebuffer

// Open is only supported on Linux.
func Open(_ *Config) (*Device, error) {
	return nil, ErrNotSupported
}

// RestoreTextMode is only supported on Linux.
func RestoreTextMode(_ string) error {
	return ErrNotSupported
}
