// Package output renders CLI results as plain text or through a haxxor codec.
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/zoobzio/haxxor"
	"github.com/zoobzio/haxxor/bson"
	"github.com/zoobzio/haxxor/json"
	"github.com/zoobzio/haxxor/msgpack"
	"github.com/zoobzio/haxxor/xml"
	"github.com/zoobzio/haxxor/yaml"
)

// Text is the plain console format.
const Text = "text"

// ErrUnknownFormat is returned for an output format with no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

var codecs = map[string]func() haxxor.Codec{
	json.Name:    json.New,
	yaml.Name:    yaml.New,
	xml.Name:     xml.New,
	msgpack.Name: msgpack.New,
	bson.Name:    bson.New,
}

// binary formats are written without a trailing newline.
var binary = map[string]bool{
	msgpack.Name: true,
	bson.Name:    true,
}

// Formats returns every supported format name, text first.
func Formats() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{Text}, names...)
}

// Result is anything a command prints.
type Result interface {
	// Text renders the console form.
	Text() string
}

// Printer writes results in one format.
type Printer struct {
	w     io.Writer
	codec haxxor.Codec // nil for text
}

// New returns a Printer for format.
func New(w io.Writer, format string) (*Printer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" || format == Text {
		return &Printer{w: w}, nil
	}
	newCodec, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	return &Printer{w: w, codec: newCodec()}, nil
}

// Structured reports whether results are encoded by a codec.
func (p *Printer) Structured() bool {
	return p.codec != nil
}

// Print writes r.
func (p *Printer) Print(r Result) error {
	if p.codec == nil {
		_, err := fmt.Fprintln(p.w, r.Text())
		return err
	}

	data, err := p.codec.Marshal(r)
	if err != nil {
		return fmt.Errorf("%s: %w", p.codec.Name(), err)
	}
	if _, err := p.w.Write(data); err != nil {
		return err
	}
	if !binary[p.codec.Name()] && !strings.HasSuffix(string(data), "\n") {
		_, err = io.WriteString(p.w, "\n")
	}
	return err
}

// Message writes a bare line. It is used for the fixed console texts
// (help, errors, notices) that have no structured form.
func (p *Printer) Message(msg string) {
	fmt.Fprintln(p.w, msg)
}
