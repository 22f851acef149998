// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bidiflip/bidi"
	"bidiflip/config"
	"bidiflip/css"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// set by PrepareEngine
	Engine   *bidi.Engine
	Rewriter *css.Rewriter

	// used by transform and flip subcommands
	Direction bidi.Direction
	UseRem    bool

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

// PrepareEngine builds engine and stylesheet rewriter from configuration and
// takes default direction and rem conversion from it.
func (e *LocalEnv) PrepareEngine() error {
	if e.Cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	dir, err := e.Cfg.Bidi.ResolveDirection()
	if err != nil {
		return fmt.Errorf("unable to resolve direction: %w", err)
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	e.Direction = dir
	e.UseRem = e.Cfg.Bidi.Rem.Enable
	e.Engine = bidi.NewEngine(log, e.Cfg.Bidi.EngineOptions()...)
	e.Rewriter = css.NewRewriter(log, e.Engine)
	return nil
}

// DirectionContext returns ctx carrying selected direction.
func (e *LocalEnv) DirectionContext(ctx context.Context) context.Context {
	return bidi.ContextWithDirection(ctx, e.Direction)
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
