// Command fbdemo renders a left-to-right, a right-to-left and a
// top-to-bottom line into a 32-bit framebuffer and saves it as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/gogpu/fbtext"
	"github.com/gogpu/fbtext/framebuffer"
	"github.com/gogpu/fbtext/layout"
	"github.com/gogpu/fbtext/raster"
	"github.com/gogpu/fbtext/text"
)

const fontSize = 50

type example struct {
	text     string
	lang     language.Tag
	dir      layout.Direction
	fontName string
}

type config struct {
	width, height int
	output        string
	resize        string
	policy        string
	backend       string
	shaper        string
	fontLTR       string
	fontRTL       string
	fontTTB       string
	info          bool
	decorate      bool
	auto          bool
}

func main() {
	var (
		cfg     config
		verbose bool
	)
	flag.IntVar(&cfg.width, "width", 800, "framebuffer width")
	flag.IntVar(&cfg.height, "height", 300, "framebuffer height")
	flag.StringVar(&cfg.output, "output", "fbdemo.png", "output file")
	flag.StringVar(&cfg.resize, "resize", "", "render a second frame at `WxH`")
	flag.StringVar(&cfg.policy, "policy", "accumulate", "compositing policy: accumulate or overwrite")
	flag.StringVar(&cfg.backend, "backend", "freetype", "rasterizer backend: freetype or vector")
	flag.StringVar(&cfg.shaper, "shaper", "harfbuzz", "shaper: harfbuzz or builtin")
	flag.StringVar(&cfg.fontLTR, "font-ltr", "DejaVuSerif.ttf", "font for the left-to-right line")
	flag.StringVar(&cfg.fontRTL, "font-rtl", "DejaVuSans.ttf", "font for the right-to-left line")
	flag.StringVar(&cfg.fontTTB, "font-ttb", "DroidSansFallbackFull.ttf", "font for the top-to-bottom line")
	flag.BoolVar(&cfg.info, "info", false, "print font information")
	flag.BoolVar(&cfg.decorate, "decorate", false, "frame the measured box of every line")
	flag.BoolVar(&cfg.auto, "auto", false, "guess the direction of horizontal lines from their text")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	fbtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	policy, ok := raster.ParsePolicy(cfg.policy)
	if !ok {
		return fmt.Errorf("unknown policy %q", cfg.policy)
	}
	kind, ok := text.ParseBackend(cfg.backend)
	if !ok {
		return fmt.Errorf("unknown backend %q", cfg.backend)
	}
	var shaper text.Shaper
	switch cfg.shaper {
	case "harfbuzz":
		shaper = text.NewGoTextShaper()
	case "builtin":
		shaper = &text.BuiltinShaper{}
	default:
		return fmt.Errorf("unknown shaper %q", cfg.shaper)
	}

	examples := []example{
		{text: "Ленивый рыжий кот", lang: language.English, dir: layout.DirectionLTR, fontName: cfg.fontLTR},
		{text: "كسول الزنجبيل القط", lang: language.Arabic, dir: layout.DirectionRTL, fontName: cfg.fontRTL},
		{text: "懶惰的姜貓", lang: language.Chinese, dir: layout.DirectionTTB, fontName: cfg.fontTTB},
	}

	fonts := newFontSet()
	defer fonts.close()

	lines := make([]fbtext.Line, 0, len(examples))
	for _, ex := range examples {
		source, err := fonts.load(ex.fontName)
		if err != nil {
			return err
		}
		face := source.Face(fontSize, text.WithDirection(ex.direction(cfg.auto)), text.WithLanguage(ex.lang))
		lines = append(lines, fbtext.Line{Text: ex.text, Face: face})
	}
	if cfg.info {
		fonts.printInfo()
	}

	r := fbtext.New(
		fbtext.WithPolicy(policy),
		fbtext.WithBackend(kind),
		fbtext.WithShaper(shaper),
		fbtext.WithDecoration(cfg.decorate),
	)

	if err := render(r, framebuffer.NewRGB32(cfg.width, cfg.height), lines, cfg.output); err != nil {
		return err
	}

	if cfg.resize != "" {
		w, h, err := parseSize(cfg.resize)
		if err != nil {
			return err
		}
		if err := render(r, framebuffer.NewRGB32(w, h), lines, resizedName(cfg.output, w, h)); err != nil {
			return err
		}
	}
	return nil
}

// direction returns the line direction. With guess set, horizontal lines
// take the direction of their first strong character.
func (ex example) direction(guess bool) layout.Direction {
	if guess && !ex.dir.IsVertical() {
		return text.GuessDirection(ex.text)
	}
	return ex.dir
}

// render draws one frame and saves it.
func render(r *fbtext.Renderer, view framebuffer.View, lines []fbtext.Line, path string) error {
	view.Clear()
	placements, err := r.DrawLines(view, lines)
	if err != nil {
		return err
	}
	printPlacements(view, lines, placements)

	if err := view.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	pterm.Success.Printf("Frame saved to %s (%dx%d)\n", path, view.Width, view.Height)
	return nil
}

func printPlacements(view framebuffer.View, lines []fbtext.Line, placements []fbtext.Placement) {
	data := pterm.TableData{
		{"line", "direction", "glyphs", "skipped", "origin", "box", "advance", "clipped"},
	}
	for i, p := range placements {
		data = append(data, []string{
			lines[i].Text,
			lines[i].Face.Direction().String(),
			strconv.Itoa(p.Walk.Glyphs),
			strconv.Itoa(p.Walk.Skipped),
			p.Origin.String(),
			p.Box.Rect().String(),
			p.Advance.String(),
			strconv.Itoa(p.Clipped),
		})
	}
	pterm.Info.Printf("%dx%d frame\n", view.Width, view.Height)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Printf("print table: %v", err)
	}
}

// fontSet loads each named font once.
type fontSet struct {
	sources map[string]*text.FontSource
	order   []string
}

func newFontSet() *fontSet {
	return &fontSet{sources: make(map[string]*text.FontSource)}
}

// load resolves name as a path or a system font name. Fonts that cannot
// be found or parsed fall back to Go Regular.
func (s *fontSet) load(name string) (*text.FontSource, error) {
	path := name
	if _, err := os.Stat(name); name != "" && err != nil {
		found, err := findfont.Find(name)
		if err != nil {
			pterm.Warning.Printf("font %s not found, using Go Regular\n", name)
			path = ""
		} else {
			path = found
		}
	}
	if src, ok := s.sources[path]; ok {
		return src, nil
	}

	var (
		src *text.FontSource
		err error
	)
	if path != "" {
		src, err = text.NewFontSourceFromFile(path)
		if err != nil {
			pterm.Warning.Printf("font %s: %v, using Go Regular\n", path, err)
			return s.load("")
		}
	} else {
		src, err = text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("load Go Regular: %w", err)
		}
	}
	s.sources[path] = src
	s.order = append(s.order, path)
	return src, nil
}

func (s *fontSet) printInfo() {
	data := pterm.TableData{{"file", "family", "glyphs", "units/em"}}
	for _, path := range s.order {
		src := s.sources[path]
		file := "(builtin)"
		if path != "" {
			file = filepath.Base(path)
		}
		data = append(data, []string{
			file,
			src.Name(),
			strconv.Itoa(src.NumGlyphs()),
			strconv.Itoa(src.UnitsPerEm()),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Printf("print table: %v", err)
	}
}

func (s *fontSet) close() {
	for _, src := range s.sources {
		_ = src.Close()
	}
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("bad size %q, want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", s, err)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %q", s)
	}
	return w, h, nil
}

// resizedName turns out.png into out-WxH.png.
func resizedName(path string, w, h int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%dx%d%s", strings.TrimSuffix(path, ext), w, h, ext)
}
