package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/exporter"
	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
	"github.com/EaseCHAOS/easechaos/pkg/tui"
)

// deps is what every timetable command needs, built from the saved config
// with environment overrides and flags applied
type deps struct {
	cfg    *config.AppConfig
	client *timetable.Client
	cache  timetable.Cache
	engine *layout.Engine
	loc    *time.Location
	// prefersDark is the terminal background, for the system theme
	prefersDark bool

	closers []io.Closer
}

func loadDeps(ctx context.Context) (*deps, error) {
	saved, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg := saved.WithEnv()
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg}

	cache, err := d.newCache(ctx)
	if err != nil {
		return nil, err
	}

	colors, err := palette.LoadFile(cfg.PaletteFile)
	if err != nil {
		return nil, err
	}

	loc, err := exporter.LoadLocation()
	if err != nil {
		return nil, err
	}

	d.cache = cache
	d.client = timetable.NewClient(cfg.APIURL, cache, log)
	d.engine = layout.NewEngine(colors)
	d.loc = loc
	d.prefersDark = lipgloss.HasDarkBackground()
	return d, nil
}

func (d *deps) newCache(ctx context.Context) (timetable.Cache, error) {
	switch d.cfg.CacheBackend {
	case "none":
		return nil, nil
	case "redis":
		addr := d.cfg.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		client, err := timetable.NewRedisClient(ctx, addr, d.cfg.RedisPassword)
		if err == nil {
			d.closers = append(d.closers, client)
			return timetable.NewRedisCache(client), nil
		}
		log.Warn("redis unavailable, falling back to the file cache", zap.Error(err))
	}

	dir, err := timetable.DefaultCacheDir()
	if err != nil {
		return nil, err
	}
	return timetable.NewFileCache(dir), nil
}

// close waits for background cache refreshes and releases connections
func (d *deps) close() {
	d.client.Wait()
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			log.Debug("close", zap.Error(err))
		}
	}
}

func (d *deps) now() time.Time {
	return time.Now().In(d.loc)
}

func (d *deps) theme(flag string) (palette.ThemeContext, error) {
	name := flag
	if name == "" {
		name = d.cfg.Theme
	}
	theme, err := palette.ParseTheme(name)
	if err != nil {
		return palette.ThemeContext{}, err
	}
	return palette.ThemeContext{Theme: theme, PrefersDark: d.prefersDark}, nil
}

// classRequest resolves --dept/--year against the saved defaults
func (d *deps) classRequest(dept string, year int, draft string) (timetable.Request, error) {
	if dept == "" {
		dept = d.cfg.Department
	}
	if year == 0 {
		year = d.cfg.Year
	}
	if dept == "" || year == 0 {
		return timetable.Request{}, fmt.Errorf("no class selected: pass --dept and --year or save defaults with `easechaos config --set-dept CE --set-year 3`")
	}
	pattern, err := timetable.ClassPattern(dept, year)
	if err != nil {
		return timetable.Request{}, err
	}
	return timetable.Request{Filename: draft, ClassPattern: pattern}, nil
}

func (d *deps) tuiApp() *tui.App {
	return &tui.App{
		Client:      d.client,
		Engine:      d.engine,
		PrefersDark: d.prefersDark,
		Location:    d.loc,
	}
}

func warnIfStale(stale bool) {
	if stale {
		fmt.Println(warnStyle.Render("⚠️  Could not reach the timetable service, showing a cached copy."))
	}
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
