package framebuffer

import (
	"os"
	"os/signal"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/dgl"
	"github.com/BeatGlow/dgl/internal/ioctl"
)

// Open a Linux framebuffer device (fbdev). A nil config selects [DefaultConfig].
func Open(config *Config) (*Device, error) {
	return open(config, linuxSystem)
}

var linuxSystem = system{
	openDevice: func(name string) (memoryDevice, error) {
		return openFile(name)
	},
	openConsole: func(name string) (device, error) {
		return openFile(name)
	},
	notify: notifySignals,
	sleep:  time.Sleep,
}

type linuxFile struct {
	f  *os.File
	fd uintptr
}

func openFile(name string) (*linuxFile, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}
	return &linuxFile{f: f, fd: f.Fd()}, nil
}

func (f *linuxFile) do(cmd ioctl.Command, arg unsafe.Pointer) error {
	return ioctl.Do(f.fd, cmd, arg)
}

func (f *linuxFile) call(cmd ioctl.Command, arg uintptr) error {
	return ioctl.Call(f.fd, cmd, arg)
}

func (f *linuxFile) mmap(length int) ([]byte, error) {
	return unix.Mmap(int(f.fd), 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func (f *linuxFile) munmap(b []byte) error {
	return unix.Munmap(b)
}

func (f *linuxFile) Close() error {
	return f.f.Close()
}

// notifySignals runs restore when a termination signal arrives, then delivers the signal again
// with its default disposition.
func notifySignals(restore func()) (stop func()) {
	var (
		c    = make(chan os.Signal, 1)
		done = make(chan struct{})
	)
	signal.Notify(c, unix.SIGINT, unix.SIGQUIT, unix.SIGTERM, unix.SIGHUP)
	go func() {
		select {
		case sig := <-c:
			restore()
			signal.Reset(sig)
			if s, ok := sig.(unix.Signal); ok {
				_ = unix.Kill(unix.Getpid(), s)
			}
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(c)
			close(done)
		})
	}
}

// RestoreTextMode switches the console back to text mode, for consoles left in graphics mode
// by a program that did not exit cleanly.
func RestoreTextMode(console string) error {
	c := &consoleMode{name: console, sys: linuxSystem, log: dgl.Discard()}
	return c.restoreText()
}
