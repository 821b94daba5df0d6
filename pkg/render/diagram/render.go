package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fsa/pkg/automaton"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
	"github.com/matzehuels/fsa/pkg/observability"
)

// Format names an output format of [Generate].
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatSVG     Format = "svg"
	FormatPNG     Format = "png"
	FormatJPG     Format = "jpg"
)

// Formats lists every supported format.
var Formats = []Format{FormatDOT, FormatMermaid, FormatSVG, FormatPNG, FormatJPG}

type formatInfo struct {
	mime   string
	engine graphviz.Format // empty for text formats
}

var formatTable = map[Format]formatInfo{
	FormatDOT:     {mime: "text/vnd.graphviz; charset=utf-8"},
	FormatMermaid: {mime: "text/plain; charset=utf-8"},
	FormatSVG:     {mime: "image/svg+xml", engine: graphviz.SVG},
	FormatPNG:     {mime: "image/png", engine: graphviz.PNG},
	FormatJPG:     {mime: "image/jpeg", engine: graphviz.JPG},
}

// ParseFormat accepts a format name case-insensitively; "jpeg" means jpg.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "jpeg" {
		f = FormatJPG
	}
	if !slices.Contains(Formats, f) {
		return "", fsaerrors.New(fsaerrors.ErrCodeUnsupported, "diagram format %q", s)
	}
	return f, nil
}

// Binary reports whether Graphviz has to lay the diagram out.
func (f Format) Binary() bool { return formatTable[f].engine != "" }

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	if info, ok := formatTable[f]; ok {
		return info.mime
	}
	return "application/octet-stream"
}

// Render lays out DOT source with the embedded Graphviz and encodes it as
// svg, png or jpg.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	engine := formatTable[format].engine
	if engine == "" {
		return nil, fsaerrors.New(fsaerrors.ErrCodeUnsupported, "graphviz cannot produce %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fsaerrors.Wrap(fsaerrors.ErrCodeInvalidFormat, err, "parse dot")
	}
	defer g.Close()

	var out bytes.Buffer
	if err := gv.Render(ctx, g, engine, &out); err != nil {
		return nil, fmt.Errorf("graphviz %s: %w", format, err)
	}
	if format == FormatSVG {
		return scalableSVG(out.Bytes()), nil
	}
	return out.Bytes(), nil
}

var (
	svgRoot    = regexp.MustCompile(`<svg[^>]*>`)
	svgViewBox = regexp.MustCompile(`viewBox="[0-9.]+\s+[0-9.]+\s+([0-9.]+)\s+([0-9.]+)"`)
)

// scalableSVG replaces Graphviz's root element, whose width and height are
// in points, with one that has a zero-origin viewBox so browsers can scale
// the image.
func scalableSVG(svg []byte) []byte {
	m := svgViewBox.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, errW := strconv.ParseFloat(string(m[1]), 64)
	h, errH := strconv.ParseFloat(string(m[2]), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return svg
	}

	loc := svgRoot.FindIndex(svg)
	if loc == nil {
		return svg
	}
	root := fmt.Appendf(nil, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	out := make([]byte, 0, len(svg)+len(root))
	out = append(out, svg[:loc[0]]...)
	out = append(out, root...)
	return append(out, svg[loc[1]:]...)
}

// Generate produces the diagram of a in format and reports the render to
// the engine hooks.
func Generate(ctx context.Context, a *automaton.Automaton, format Format, opts Options) (out []byte, err error) {
	defer func(start time.Time) {
		observability.Engine().OnRender(ctx, string(format), time.Since(start), err)
	}(time.Now())

	switch format {
	case FormatDOT:
		return []byte(ToDOT(a, opts)), nil
	case FormatMermaid:
		return []byte(ToMermaid(a, opts)), nil
	}
	return Render(ctx, ToDOT(a, opts), format)
}
