//go:build profile && windows

package profiler

import "syscall"

// hideWindowAttr keeps speedscope from opening a console window.
func hideWindowAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true}
}
