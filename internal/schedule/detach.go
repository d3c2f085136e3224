package schedule

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// spawnDetached re-executes the current binary with the given arguments as
// a fully detached process: new session (no controlling terminal) and all
// standard streams on /dev/null, so the timer survives the caller's shell
// exiting and the caller's prompt returns immediately.
func spawnDetached(args []string) (int, error) {
	executable, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("locating own executable: %w", err)
	}

	cmd := exec.Command(executable, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", os.DevNull, err)
	}
	defer devNull.Close()
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting timer process: %w", err)
	}

	pid := cmd.Process.Pid

	// Release rather than wait: the timer is fire-and-forget and must not
	// tie its lifetime to ours.
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("releasing timer process: %w", err)
	}

	return pid, nil
}
