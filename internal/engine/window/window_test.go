package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowFlags(t *testing.T) {
	windowed := windowFlags(Config{})
	if windowed&sdl.WINDOW_OPENGL == 0 {
		t.Error("window must request an OpenGL surface")
	}
	if windowed&sdl.WINDOW_FULLSCREEN_DESKTOP != 0 {
		t.Error("windowed config requested fullscreen")
	}

	if full := windowFlags(Config{Fullscreen: true}); full&sdl.WINDOW_FULLSCREEN_DESKTOP == 0 {
		t.Error("fullscreen config did not request desktop fullscreen")
	}
}

func TestSwapInterval(t *testing.T) {
	if swapInterval(true) != 1 || swapInterval(false) != 0 {
		t.Error("vsync should map to interval 1, off to 0")
	}
}
