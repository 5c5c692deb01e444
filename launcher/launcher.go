// Package launcher classifies a target path and starts the IDE against it.
//
// Classification is a strict priority list, first match wins:
//
//  1. existing regular file       -> open that file, workdir = its directory
//  2. directory with .idea/       -> open the directory as a project
//  3. directory with pom.xml      -> import from the Maven descriptor
//  4. directory with a *.ipr file -> open the legacy project file
//  5. anything else               -> start the IDE with no project
//
// The spawned IDE is detached and unmanaged: no wait, no exit-code
// propagation. The Starter seam exposes the launch decision so tests can
// assert on arguments and working directory without starting a GUI.
package launcher

import (
	"fmt"
	"path/filepath"

	"github.com/mattsre/idealaunch/fileutil"
	"github.com/mattsre/idealaunch/logutil"
	"github.com/mattsre/idealaunch/procutil"
)

// Project markers probed during classification.
const (
	// markerDir is the IDE-native project marker directory.
	markerDir = ".idea"

	// mavenDescriptor is the build descriptor imported when no native
	// project marker exists.
	mavenDescriptor = "pom.xml"

	// legacyProjectExt is the single-file legacy project format.
	legacyProjectExt = ".ipr"
)

// Kind is the classification outcome for a target path.
type Kind string

const (
	KindFile          Kind = "file"
	KindProjectDir    Kind = "project-dir"
	KindMavenImport   Kind = "maven-import"
	KindLegacyProject Kind = "legacy-project"
	KindDefault       Kind = "default"
)

// Launch describes one IDE invocation: the binary, the working directory it
// starts in, and its arguments.
type Launch struct {
	Binary  string
	WorkDir string
	Args    []string
}

// Starter starts a Launch and returns the new process ID. The process is not
// supervised after start.
type Starter interface {
	Start(l Launch) (pid int, err error)
}

// Classify maps a target path to a working directory and argument list.
// It only reads the filesystem; the target is never mutated. For rule 4 the
// lowest-sorting *.ipr file is chosen, keeping the pick deterministic across
// filesystems with different enumeration orders.
func Classify(target string) (workDir string, args []string, kind Kind) {
	switch {
	case fileutil.IsRegularFile(target):
		return filepath.Dir(target), []string{target}, KindFile

	case fileutil.DirExists(target, markerDir):
		return target, []string{target}, KindProjectDir

	case fileutil.FileExists(target, mavenDescriptor):
		return target, []string{mavenDescriptor}, KindMavenImport

	case fileutil.HasFileWithExt(target, legacyProjectExt):
		return target, []string{fileutil.FirstFileWithExt(target, legacyProjectExt)}, KindLegacyProject

	default:
		return "", nil, KindDefault
	}
}

// Open classifies target and starts binary accordingly. An empty binary path
// means no IDE was resolved: the whole step is skipped as a silent no-op, not
// an error. The launch is fire-and-forget; the post-start liveness probe is
// diagnostic only.
func Open(binary, target string, starter Starter) error {
	if binary == "" {
		logutil.Debug("no IDE binary resolved, skipping launch", "target", target)
		return nil
	}

	workDir, args, kind := Classify(target)
	l := Launch{Binary: binary, WorkDir: workDir, Args: args}

	pid, err := starter.Start(l)
	if err != nil {
		return fmt.Errorf("failed to start IDE: %w", err)
	}

	// The liveness probe is diagnostic only; skip it unless the trace is
	// actually emitted.
	if logutil.IsDebugEnabled() {
		logutil.Debug("started IDE",
			"pid", pid,
			"kind", string(kind),
			"workdir", l.WorkDir,
			"args", l.Args,
			"running", procutil.IsRunning(pid))
	}
	return nil
}
