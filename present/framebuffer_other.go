//go:build !linux

package present

// Framebuffer is only available on Linux.
type Framebuffer struct{}

func OpenFramebuffer(path string) (*Framebuffer, error) {
	return nil, ErrUnsupported
}

func (f *Framebuffer) Present(frame []byte, width, height int) error {
	return ErrUnsupported
}

func (f *Framebuffer) Close() error {
	return nil
}
