package osenv

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.lepovirta.org/shopkit/internal/envvar"
)

// OsEnv bundles everything the app reads from its surrounding OS
// environment. Tests can fill this with an in-memory filesystem and
// byte buffers instead of the real thing.
type OsEnv struct {
	Args    []string
	Fs      billy.Filesystem
	EnvVars envvar.Vars
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func (this *OsEnv) FromRealEnv() {
	this.Args = os.Args
	this.Fs = osfs.New("")
	this.EnvVars.FromEnv()
	this.Stdin = os.Stdin
	this.Stdout = os.Stdout
	this.Stderr = os.Stderr
}
