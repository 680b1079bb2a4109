package framebuffer

import (
	"sync"
	"time"
	"unsafe"

	"github.com/BeatGlow/dgl"
)

// consoleMode owns the graphics mode of a console while a framebuffer is open.
type consoleMode struct {
	name string
	sys  system
	log  *dgl.Logger

	// set is true when graphics mode was switched on by us.
	set         bool
	stop        func()
	restoreOnce sync.Once
	restoreErr  error
}

// acquire switches the console to graphics mode, reporting if the console ends up in graphics mode.
func (c *consoleMode) acquire() bool {
	con, err := c.sys.openConsole(c.name)
	if err != nil {
		c.log.Log("cannot open console", "console", c.name, "error", err)
		return false
	}
	defer con.Close()

	var mode int32
	if err = con.do(kdGetMode, unsafe.Pointer(&mode)); err != nil {
		c.log.Log("cannot get console mode", "console", c.name, "error", err)
		return false
	}
	if mode != kdText {
		// Already in graphics mode, leave it that way on exit.
		return true
	}
	if err = con.call(kdSetMode, kdGraphics); err != nil {
		c.log.Log("cannot set console graphics mode", "console", c.name, "error", err)
		return false
	}
	c.set = true
	c.stop = c.sys.notify(func() {
		_ = c.restore()
	})
	return true
}

// release stops watching for signals and restores text mode.
func (c *consoleMode) release() error {
	if !c.set {
		return nil
	}
	c.stop()
	return c.restore()
}

// restore switches the console back to text mode, once.
func (c *consoleMode) restore() error {
	c.restoreOnce.Do(func() {
		c.restoreErr = c.restoreText()
	})
	return c.restoreErr
}

func (c *consoleMode) restoreText() error {
	con, err := c.sys.openConsole(c.name)
	if err != nil {
		return err
	}
	defer con.Close()

	var mode int32
	if err = con.do(kdGetMode, unsafe.Pointer(&mode)); err != nil {
		return err
	}
	if mode == kdText {
		return nil
	}
	if err = con.call(kdSetMode, kdText); err != nil {
		return err
	}
	c.sys.sleep(100 * time.Millisecond)

	// Switch to another virtual terminal and back to redraw the text contents.
	var state vtStat
	if err = con.do(vtGetState, unsafe.Pointer(&state)); err != nil {
		c.log.Log("cannot get virtual terminal state", "console", c.name, "error", err)
		return nil
	}
	current, temp := uintptr(state.Active), uintptr(1)
	if current == 1 {
		temp = 2
	}
	for _, vt := range []uintptr{temp, current} {
		if err = con.call(vtActivate, vt); err == nil {
			err = con.call(vtWaitActive, vt)
		}
		if err != nil {
			c.log.Log("cannot switch virtual terminal", "vt", vt, "error", err)
			return nil
		}
	}
	return nil
}
