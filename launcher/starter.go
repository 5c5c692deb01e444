package launcher

import (
	"os/exec"
)

// ExecStarter starts launches as real detached OS processes with no attached
// stdio. The child outlives this process; Wait is never called.
type ExecStarter struct{}

// Start builds and starts the command. The returned PID identifies the child;
// no handle beyond that is retained.
func (ExecStarter) Start(l Launch) (int, error) {
	cmd := exec.Command(l.Binary, l.Args...)
	cmd.Dir = l.WorkDir
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachedSysProcAttr()

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	// Detach: release our handle so the child is not tied to this process.
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

// FakeStarter records launches instead of starting processes. Test double.
type FakeStarter struct {
	Launches []Launch
	Err      error
	NextPID  int
}

// Start records the launch and returns a synthetic PID.
func (f *FakeStarter) Start(l Launch) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	f.Launches = append(f.Launches, l)
	if f.NextPID == 0 {
		f.NextPID = 1000
	}
	f.NextPID++
	return f.NextPID, nil
}
