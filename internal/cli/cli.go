package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/graeme-hill/wktstuff-go/internal/config"
	"github.com/graeme-hill/wktstuff-go/internal/logging"
	"github.com/graeme-hill/wktstuff-go/lib"
)

// Env is what every command starts from: validated config and an installed
// default logger.
type Env struct {
	Config *config.Config
	Close  func() error
}

func Bootstrap() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	closeFn, err := logging.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	return &Env{Config: cfg, Close: closeFn}, nil
}

func (e *Env) ParseOptions() lib.Options {
	return lib.Options{MaxDepth: e.Config.Parser.MaxDepth}
}

// PrintError writes err followed by one HINT line per attached hint.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "HINT: %s\n", hint)
	}
}

// Exit prints err to stderr and exits non-zero. A nil err exits zero.
func Exit(err error) {
	if err == nil {
		os.Exit(0)
	}
	PrintError(os.Stderr, err)
	os.Exit(1)
}
