// hookwatch - Global input event capture daemon
//
//	hookwatch init            Write the default config file
//	hookwatch run             Capture input events into the store
//	hookwatch recent          Show recently captured events
//	hookwatch stats           Show stored event counts per kind
//	hookwatch info            Show screens and input subsystem settings
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"uiohook/internal/config"
	"uiohook/internal/logging"
	"uiohook/internal/store"
	"uiohook/pkg/hook"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		cmdInit()
	case "run":
		cmdRun()
	case "recent":
		cmdRecent()
	case "stats":
		cmdStats()
	case "info":
		cmdInfo()
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`hookwatch - Global input event capture

USAGE:
    hookwatch <command> [options]

COMMANDS:
    init      Write the default config file if none exists
    run       Capture keyboard, mouse and wheel events into the store
    recent    Show recently captured events
    stats     Show stored event counts per kind
    info      Show attached screens and input subsystem settings
    help      Show this help message

PRIVACY NOTE:
    Captured characters are never written to logs. Remove the event
    database to discard recorded input.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", config.ConfigPath(), "config file path")
	fs.Parse(os.Args[2:])

	_, created, err := config.LoadOrCreate(*path)
	if err != nil {
		fatal("init: %v", err)
	}
	if created {
		fmt.Printf("Wrote default config to %s\n", *path)
	} else {
		fmt.Printf("Config already exists at %s\n", *path)
	}
}

func loadConfig(path string) *config.Config {
	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		fatal("load config: %v", err)
	}
	return cfg
}

func newLogger(cfg *config.Config) *logging.Logger {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fatal("%v", err)
	}
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		fatal("%v", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = format
	logCfg.Output = cfg.Logging.Output
	if cfg.Logging.FilePath != "" {
		logCfg.FilePath = cfg.Logging.FilePath
	}

	log, err := logging.New(logCfg)
	if err != nil {
		fatal("init logging: %v", err)
	}
	return log
}

// recorder persists captured events, filtered by the capture config.
// The filter can be swapped at runtime by a config reload.
type recorder struct {
	log     *logging.Logger
	store   *store.Store
	session int64

	mu      sync.Mutex
	capture config.CaptureConfig
}

func (r *recorder) setCapture(c config.CaptureConfig) {
	r.mu.Lock()
	r.capture = c
	r.mu.Unlock()
}

func (r *recorder) wants(ev hook.Event) bool {
	r.mu.Lock()
	c := r.capture
	r.mu.Unlock()

	switch e := ev.(type) {
	case *hook.KeyboardEvent:
		return c.Keyboard
	case *hook.MouseEvent:
		if e.Phase == hook.MouseMoved || e.Phase == hook.MouseDragged {
			return c.Mouse && c.MouseMoves
		}
		return c.Mouse
	case *hook.WheelEvent:
		return c.Wheel
	}
	// Hook lifecycle events are always kept.
	return true
}

func (r *recorder) HandleEvent(ev hook.Event) {
	if !r.wants(ev) {
		return
	}
	if _, err := r.store.Append(r.session, ev); err != nil {
		r.log.Error("persist event failed", "error", err)
	}
}

func cmdRun() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", config.ConfigPath(), "config file path")
	fs.Parse(os.Args[2:])

	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	log := newLogger(cfg)
	defer log.Close()
	logging.SetDefault(log)

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		fatal("open store: %v", err)
	}
	defer db.Close()

	hostname, _ := os.Hostname()
	session, err := db.BeginSession(hostname)
	if err != nil {
		fatal("begin session: %v", err)
	}

	rec := &recorder{log: log, store: db, session: session}
	rec.setCapture(cfg.Capture)

	// Capture filters follow config file edits without a restart.
	loader.OnChange(func(c *config.Config) {
		rec.setCapture(c.Capture)
		log.Info("config reloaded")
	})
	if err := loader.Watch(); err != nil {
		log.Warn("config watch unavailable", "error", err)
	}
	defer loader.Close()

	h := hook.New(rec)
	if err := h.Run(); err != nil {
		fatal("start hook: %v", err)
	}
	log.Info("capture started", "store", cfg.Store.Path, "session", session)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	if err := h.Stop(); err != nil {
		log.Error("stop hook", "error", err)
	}
	if err := db.EndSession(session); err != nil {
		log.Error("end session", "error", err)
	}
}

func cmdRecent() {
	fs := flag.NewFlagSet("recent", flag.ExitOnError)
	configPath := fs.String("config", config.ConfigPath(), "config file path")
	n := fs.Int("n", 20, "number of events to show")
	fs.Parse(os.Args[2:])

	cfg := loadConfig(*configPath)
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		fatal("open store: %v", err)
	}
	defer db.Close()

	records, err := db.Recent(*n)
	if err != nil {
		fatal("query events: %v", err)
	}
	for _, rec := range records {
		fmt.Printf("%s  %-14s", rec.CapturedAt.Format("2006-01-02 15:04:05.000"), rec.Kind)
		switch {
		case rec.Kind == store.KindKeyPressed || rec.Kind == store.KindKeyReleased || rec.Kind == store.KindKeyTyped:
			fmt.Printf("  key=%v raw=%#x", hook.KeyCode(rec.KeyCode), rec.RawCode)
		case rec.Kind == store.KindWheel:
			fmt.Printf("  rotation=%d amount=%d", rec.Rotation, rec.Amount)
		case rec.Kind == store.KindHookEnabled || rec.Kind == store.KindHookDisabled:
		default:
			fmt.Printf("  button=%d clicks=%d pos=(%d,%d)", rec.Button, rec.Clicks, rec.X, rec.Y)
		}
		fmt.Println()
	}
}

func cmdStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	configPath := fs.String("config", config.ConfigPath(), "config file path")
	fs.Parse(os.Args[2:])

	cfg := loadConfig(*configPath)
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		fatal("open store: %v", err)
	}
	defer db.Close()

	counts, err := db.CountByKind()
	if err != nil {
		fatal("count events: %v", err)
	}
	var total int64
	for kind, n := range counts {
		fmt.Printf("%-16s %d\n", kind, n)
		total += n
	}
	fmt.Printf("%-16s %d\n", "total", total)
}

func cmdInfo() {
	screens, err := hook.ScreenInfo()
	if err != nil {
		fatal("screen info: %v", err)
	}
	fmt.Println("Screens:")
	for _, s := range screens {
		fmt.Printf("  #%d  %dx%d at (%d,%d)\n", s.Number, s.Width, s.Height, s.X, s.Y)
	}

	fmt.Println("Input settings:")
	printSetting := func(name string, fn func() (int64, error)) {
		if v, err := fn(); err == nil {
			fmt.Printf("  %-32s %d\n", name, v)
		} else {
			fmt.Printf("  %-32s unavailable\n", name)
		}
	}
	printSetting("auto-repeat rate", hook.AutoRepeatRate)
	printSetting("auto-repeat delay", hook.AutoRepeatDelay)
	printSetting("pointer acceleration multiplier", hook.PointerAccelerationMultiplier)
	printSetting("pointer acceleration threshold", hook.PointerAccelerationThreshold)
	printSetting("pointer sensitivity", hook.PointerSensitivity)
	printSetting("multi-click time", hook.MultiClickTime)
}
