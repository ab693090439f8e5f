package logsvc

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/user"
)

var scrubFields = regexp.MustCompile(`(?i)^(password|password_confirm|token|secret|session_key)$`)

// RollbarLogger prints to a std logger and reports to Rollbar when enabled.
// The person of an item is carried by its context, several requests can log at once.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetScrubFields(scrubFields)
	return &RollbarLogger{std: std}
}

// New returns a RollbarLogger printing to stdout, reporting to Rollbar outside of debug mode.
func New(prefix string, conf *core.Config) *RollbarLogger {
	logger := NewRollbarLogger(log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)
	return logger
}

func (l *RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// Close flushes the pending items.
func (l *RollbarLogger) Close() {
	rollbar.Close()
}

// item is one log call split into what Rollbar wants.
type item struct {
	person *rollbar.Person
	err    error
	extras map[string]interface{}
}

// newItem sorts `args`: the first user.User or auth.Session names the person,
// the first error is reported as such, maps are merged into the extras and anything else is listed under "args".
func newItem(msg string, args []interface{}) item {
	it := item{extras: map[string]interface{}{}}
	var rest []interface{}
	for _, arg := range args {
		switch a := arg.(type) {
		case auth.Session:
			if it.person == nil {
				it.person = personOf(a.User)
				it.extras["session_id"] = a.ID
				it.extras["role"] = string(a.User.Role)
			}
		case user.User:
			if it.person == nil {
				it.person = personOf(a)
				it.extras["role"] = string(a.Role)
			}
		case error:
			if it.err == nil {
				it.err = a
			} else {
				rest = append(rest, a.Error())
			}
		case map[string]interface{}:
			for k, v := range a {
				it.extras[k] = v
			}
		default:
			rest = append(rest, a)
		}
	}
	if it.err != nil {
		it.extras["message"] = msg
	}
	if len(rest) > 0 {
		it.extras["args"] = rest
	}
	return it
}

func personOf(usr user.User) *rollbar.Person {
	return &rollbar.Person{Id: usr.ID, Username: usr.Name, Email: usr.Email}
}

func (it item) context() context.Context {
	ctx := context.Background()
	if it.person != nil {
		ctx = rollbar.NewPersonContext(ctx, it.person)
	}
	return ctx
}

func (l *RollbarLogger) report(level, msg string, args []interface{}) {
	it := newItem(msg, args)
	if it.err != nil {
		rollbar.ErrorWithExtrasAndContext(it.context(), level, it.err, it.extras)
	} else {
		rollbar.MessageWithExtrasAndContext(it.context(), level, msg, it.extras)
	}
	l.print(level, msg, args)
}

func (l *RollbarLogger) print(level, msg string, args []interface{}) {
	l.std.Output(3, fmt.Sprintf("%s: %s", strings.ToUpper(level), msg))
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	l.report(rollbar.DEBUG, msg, args)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	l.report(rollbar.INFO, msg, args)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	l.report(rollbar.WARN, msg, args)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	l.report(rollbar.ERR, msg, args)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.report(rollbar.CRIT, msg, args)
	l.Close()
	os.Exit(1)
}
