package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/workspace"
	inmemdb "github.com/trezcool/mentorhub/storage/inmem"
)

// Logger is a core.Logger recording what it is given.
type Logger struct {
	mutex   sync.Mutex
	entries []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.entries = append(l.entries, fmt.Sprintf("%s: %s %v", level, msg, args))
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args) }

func (l *Logger) Entries() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string(nil), l.entries...)
}

func NewValidator() *validator.Validate {
	validate, _ := core.NewValidator()
	return validate
}

// NewWorkspaceDeps returns the dependencies of a workspace over freshly seeded in-memory data.
func NewWorkspaceDeps() workspace.Deps {
	return workspace.Deps{
		Open:     inmemdb.OpenSeededStore,
		Validate: NewValidator(),
		Logger:   new(Logger),
	}
}

func NewWorkspace() *workspace.Workspace {
	return workspace.New(NewWorkspaceDeps())
}

// FreezeTime sets core.NowFunc to return `now` until the test ends.
func FreezeTime(t *testing.T, now time.Time) {
	orig := core.NowFunc
	core.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { core.NowFunc = orig })
}
