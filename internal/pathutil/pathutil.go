// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir         = "pacer"
	exportFileName = "Activities.csv"
	envPacer       = "PACER_ENV"
)

// Paths holds all application path configurations.
type Paths struct {
	configFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			configFileName: "config.yml",
			logFileName:    "pacer.log",
		}

		p.applyEnvironmentOverrides()

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// DefaultExportPath is where the activity export lands when it is downloaded
// from the browser.
func DefaultExportPath() string {
	return filepath.Join(xdg.UserDirs.Download, exportFileName)
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envPacer))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("pacer_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(appDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	p.logFilePath, err = xdg.DataFile(
		filepath.Join(appDir, "log", p.logFileName),
	)
	if err != nil {
		return err
	}

	return nil
}
