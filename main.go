// zoombar: zoomable terminal charts with discoverable zoom bars, buttons and wheel zoom
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"zoombar/internal/config"
	"zoombar/internal/data"
	"zoombar/internal/export"
	"zoombar/internal/plot"
	"zoombar/internal/tui"
	"zoombar/internal/tui/util"
	"zoombar/internal/zoom"
)

const Version = "0.3.0"

const (
	defaultConfig = "zoombar.json"
	defaultOut    = "zoombar.html"
	sampleCSV     = "iris.csv"
)

// logFile is the --log-file target, closed when the app exits.
var logFile *os.File

func init() {
	// -v is the verbosity counter.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "zoombar:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var verbosity int
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   defaultConfig,
		Usage:   "dashboard config `PATH`",
	}
	return &cli.App{
		Name:                   "zoombar",
		Usage:                  "zoomable terminal charts",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "v",
				Usage: "verbose logs (-v info, -vv debug, -vvv trace)",
				Count: &verbosity,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append logs to `PATH` (created if missing)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "panic on domain/scale mismatches instead of logging them",
			},
		},
		Before: func(cCtx *cli.Context) error {
			zoom.Strict = cCtx.Bool("strict")
			return setupLogging(verbosity, cCtx.String("log-file"))
		},
		After: func(*cli.Context) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Scaffold " + defaultConfig + " and a sample CSV",
				Flags:  []cli.Flag{configFlag},
				Action: func(cCtx *cli.Context) error { return cmdInit(cCtx.String("config")) },
			},
			{
				Name:  "view",
				Usage: "Open the dashboard in the terminal",
				Flags: []cli.Flag{
					configFlag,
					&cli.BoolFlag{Name: "no-color", Usage: "disable colours (NO_COLOR is also honoured)"},
				},
				Action: func(cCtx *cli.Context) error {
					return cmdView(cCtx.String("config"), cCtx.Bool("no-color"), cCtx.String("log-file") != "")
				},
			},
			{
				Name:  "export",
				Usage: "Write the dashboard as an HTML page of echarts charts",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: defaultOut, Usage: "output `PATH`"},
				},
				Action: func(cCtx *cli.Context) error {
					return cmdExport(cCtx.String("config"), cCtx.String("out"))
				},
			},
			{
				Name:      "inspect",
				Usage:     "Describe the columns of data sources",
				ArgsUsage: "[PATH | sample:NAME ...]",
				Flags:     []cli.Flag{configFlag},
				Action: func(cCtx *cli.Context) error {
					return cmdInspect(os.Stdout, cCtx.String("config"), cCtx.Args().Slice())
				},
			},
			{
				Name:   "doctor",
				Usage:  "Check the config, its data sources and the clipboard",
				Flags:  []cli.Flag{configFlag},
				Action: func(cCtx *cli.Context) error { return cmdDoctor(os.Stdout, cCtx.String("config")) },
			},
			{
				Name:  "version",
				Usage: "Print version",
				Action: func(*cli.Context) error {
					fmt.Println("zoombar", Version)
					return nil
				},
			},
		},
	}
}

/* ---------- logging ---------- */

func setupLogging(verbosity int, path string) error {
	switch {
	case verbosity >= 3:
		log.SetLevel(log.TraceLevel)
	case verbosity == 2:
		log.SetLevel(log.DebugLevel)
	case verbosity == 1:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
	f, err := openLogFile(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if f != nil {
		logFile = f
		log.SetOutput(f)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== zoombar %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
	return f, nil
}

/* ---------- commands ---------- */

func cmdInit(path string) error {
	if _, err := os.Stat(sampleCSV); errors.Is(err, os.ErrNotExist) {
		if err := writeSample(sampleCSV); err != nil {
			return err
		}
		fmt.Println("Wrote", sampleCSV)
	} else {
		fmt.Println(sampleCSV, "already exists; not overwriting")
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		fmt.Println(path, "already exists; not overwriting")
		return nil
	}
	c := config.Default()
	// The scatter reads the CSV on disk so the file format is visible.
	c.Graphs[0].Data = sampleCSV
	if err := config.Save(path, c); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Println("Wrote", path)
	fmt.Println("Next: zoombar view --config", path)
	return nil
}

func writeSample(path string) error {
	t, err := data.Sample("iris")
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := data.Write(f, t, data.Separator(path)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func cmdView(path string, noColor, logging bool) error {
	c, plots, err := loadPlots(path)
	if err != nil {
		return err
	}
	// The dashboard owns the terminal.
	if !logging {
		log.SetOutput(io.Discard)
	}
	if err := tui.Run(c.Title, plots, util.NoColor(noColor)); err != nil {
		return err
	}
	for _, p := range plots {
		fmt.Println(p.Domains())
	}
	return nil
}

func cmdExport(path, out string) error {
	c, plots, err := loadPlots(path)
	if err != nil {
		return err
	}
	if err := export.WriteFile(out, c.Title, plots); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d charts)\n", out, len(plots))
	return nil
}

func cmdInspect(w io.Writer, path string, sources []string) error {
	if len(sources) == 0 {
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		sources = dataSources(c)
	}
	for i, src := range sources {
		t, err := data.Load(src)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s: %s rows\n", src, data.FormatCount(len(t.Rows)))
		for _, s := range t.Summarize() {
			kind, extent := "categorical", humanize.Comma(int64(s.Distinct))+" distinct"
			if s.Numeric {
				kind = "numeric"
				extent = "[" + data.FormatValue(s.Min) + ", " + data.FormatValue(s.Max) + "]"
			}
			line := fmt.Sprintf("  %-16s %-11s %s", s.Name, kind, extent)
			if s.Empty > 0 {
				line += fmt.Sprintf(" (%s empty)", humanize.Comma(int64(s.Empty)))
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func cmdDoctor(w io.Writer, path string) error {
	ok := true
	report := func(good bool, format string, args ...any) {
		mark := "OK  "
		if !good {
			mark, ok = "FAIL", false
		}
		fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
	}

	c, err := config.Load(path)
	report(err == nil, "config %s%s", path, errSuffix(err))
	if c != nil {
		for _, src := range dataSources(c) {
			_, err := data.Load(src)
			report(err == nil, "data %s%s", src, errSuffix(err))
		}
		for _, g := range c.Graphs {
			t, err := data.Load(g.Data)
			if err != nil {
				continue
			}
			_, err = plot.Build(g, t)
			report(err == nil, "graph %q%s", g.Title, errSuffix(err))
		}
	}
	if _, err := clipboard.ReadAll(); err != nil {
		fmt.Fprintf(w, "WARN clipboard unavailable; the yank key will fail: %v\n", err)
	} else {
		fmt.Fprintln(w, "OK   clipboard")
	}
	if util.NoColor(false) {
		fmt.Fprintln(w, "INFO NO_COLOR set; rendering without colour")
	}
	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func errSuffix(err error) string {
	if err == nil {
		return ""
	}
	return ": " + err.Error()
}

/* ---------- helpers ---------- */

func loadPlots(path string) (*config.Config, []*plot.Plot, error) {
	c, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	tables := map[string]*data.Table{}
	var plots []*plot.Plot
	for _, g := range c.Graphs {
		t, ok := tables[g.Data]
		if !ok {
			if t, err = data.Load(g.Data); err != nil {
				return nil, nil, err
			}
			tables[g.Data] = t
		}
		p, err := plot.Build(g, t)
		if err != nil {
			return nil, nil, fmt.Errorf("graph %q: %w", g.Title, err)
		}
		log.WithFields(log.Fields{"graph": g.Title, "kind": g.Kind}).Info(p.Domains())
		plots = append(plots, p)
	}
	if c.Title == "" {
		c.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c, plots, nil
}

// dataSources lists each distinct data source once, in config order.
func dataSources(c *config.Config) []string {
	seen := map[string]bool{}
	var out []string
	for _, g := range c.Graphs {
		if !seen[g.Data] {
			seen[g.Data] = true
			out = append(out, g.Data)
		}
	}
	return out
}
