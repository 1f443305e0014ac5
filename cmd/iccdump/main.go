// Command iccdump prints the header and tag summary of ICC profiles.
//
// Usage:
//
//	iccdump [-format text|yaml] [-lazy] [-depth N] [-v] file...
//
// Files may be profiles or JPEG, TIFF, PNG and WebP images carrying one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/go-andiamo/iccmax"
	"gopkg.in/yaml.v3"
)

type dumpTag struct {
	Signature  string   `yaml:"signature"`
	Type       string   `yaml:"type"`
	Offset     uint32   `yaml:"offset"`
	Size       uint32   `yaml:"size"`
	Summary    string   `yaml:"summary,omitempty"`
	SharedWith []string `yaml:"shared_with,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

type dumpProfile struct {
	File       string    `yaml:"file"`
	Version    string    `yaml:"version"`
	Class      string    `yaml:"class"`
	ColorSpace string    `yaml:"color_space"`
	PCS        string    `yaml:"pcs"`
	Created    string    `yaml:"created"`
	Tags       []dumpTag `yaml:"tags"`
}

func main() {
	format := flag.String("format", "text", "output format: text or yaml")
	lazy := flag.Bool("lazy", false, "decode tags lazily and report every corrupt tag")
	depth := flag.Int("depth", iccmax.DefaultMaxDepth, "maximum nesting depth of tag data")
	verbose := flag.Bool("v", false, "log decode tracing")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	if flag.NArg() == 0 || (*format != "text" && *format != "yaml") {
		flag.Usage()
		os.Exit(2)
	}
	options := &iccmax.ParseOptions{LazyTagDecode: *lazy, MaxDepth: *depth}
	failed := false
	for _, name := range flag.Args() {
		if err := dump(os.Stdout, name, *format, options); err != nil {
			log.WithField("file", name).WithError(err).Error("failed to dump profile")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(w io.Writer, name, format string, options *iccmax.ParseOptions) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	if len(data) < 40 || string(data[36:40]) != "acsp" {
		if data, err = iccmax.ExtractICC(data); err != nil {
			return err
		}
	}
	p, err := iccmax.Decode(data, options)
	if err != nil {
		return err
	}
	out := describe(name, p)
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else {
		printText(w, out)
	}
	if options.LazyTagDecode {
		return p.Validate()
	}
	return nil
}

func describe(name string, p *iccmax.Profile) dumpProfile {
	h := p.Header
	out := dumpProfile{
		File:       name,
		Version:    h.Version.String(),
		Class:      h.DeviceClass.String(),
		ColorSpace: h.ColorSpace.String(),
		PCS:        h.PCS.String(),
		Created:    h.Created.Format("2006-01-02 15:04:05"),
	}
	for _, tag := range p.Tags() {
		dt := dumpTag{
			Signature: tag.Signature.String(),
			Type:      tag.TypeSig.String(),
			Offset:    tag.Entry.Offset,
			Size:      tag.Entry.Size,
		}
		for _, sig := range tag.SharedWith {
			dt.SharedWith = append(dt.SharedWith, sig.String())
		}
		if data, err := tag.Value(); err != nil {
			var ce *iccmax.CorruptionError
			if errors.As(err, &ce) {
				dt.Error = ce.Reason
			} else {
				dt.Error = err.Error()
			}
		} else {
			dt.Summary = summary(data)
		}
		out.Tags = append(out.Tags, dt)
	}
	return out
}

func printText(w io.Writer, p dumpProfile) {
	_, _ = fmt.Fprintf(w, "=== %s ===\n", p.File)
	_, _ = fmt.Fprintf(w, "Version: %s  Class: %s  Colour space: %s  PCS: %s\n", p.Version, p.Class, p.ColorSpace, p.PCS)
	_, _ = fmt.Fprintf(w, "Created: %s\n", p.Created)
	_, _ = fmt.Fprintf(w, "Tags: %d\n", len(p.Tags))
	for _, t := range p.Tags {
		line := fmt.Sprintf("  %-4s %-4s @%-8d %8d  ", t.Signature, t.Type, t.Offset, t.Size)
		if t.Error != "" {
			line += "ERROR: " + t.Error
		} else {
			line += t.Summary
		}
		if len(t.SharedWith) > 0 {
			line += " (shared with " + strings.Join(t.SharedWith, ", ") + ")"
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

func summary(data iccmax.TagData) string {
	switch v := data.(type) {
	case *iccmax.Text:
		return quote(v.Value)
	case *iccmax.UTF8Text:
		return quote(v.Value)
	case *iccmax.UTF16Text:
		return quote(v.Value)
	case *iccmax.TextDescription:
		return quote(v.ASCII)
	case *iccmax.MultiLocalizedUnicode:
		return fmt.Sprintf("%d strings, %s", len(v.Strings), quote(v.Best("en")))
	case *iccmax.XYZ:
		if len(v.Values) == 1 {
			x := v.Values[0]
			return fmt.Sprintf("X=%.4f Y=%.4f Z=%.4f", x.X, x.Y, x.Z)
		}
		return fmt.Sprintf("%d XYZ values", len(v.Values))
	case *iccmax.Curve:
		switch v.Type {
		case iccmax.CurveTypeIdentity:
			return "identity curve"
		case iccmax.CurveTypeGamma:
			return fmt.Sprintf("gamma %.3f", v.Gamma)
		}
		return fmt.Sprintf("curve of %d points", len(v.Points))
	case *iccmax.ParametricCurve:
		return fmt.Sprintf("parametric function %d %v", v.FunctionType, v.Parameters)
	case *iccmax.Lut8:
		return fmt.Sprintf("lut8 %d->%d, %d grid points", v.InputChannels, v.OutputChannels, v.GridPoints)
	case *iccmax.Lut16:
		return fmt.Sprintf("lut16 %d->%d, %d grid points", v.InputChannels, v.OutputChannels, v.GridPoints)
	case *iccmax.LutAToB:
		return lutSummary("A to B", v)
	case *iccmax.LutBToA:
		return lutSummary("B to A", (*iccmax.LutAToB)(v))
	case *iccmax.MultiProcessElements:
		return fmt.Sprintf("%d->%d, %d processing elements", v.InputChannels, v.OutputChannels, len(v.Stages))
	case *iccmax.TagStruct:
		return fmt.Sprintf("struct %s, %d members", v.StructType, v.Members.Len())
	case *iccmax.TagArray:
		return fmt.Sprintf("array %s, %d elements", v.ArrayType, len(v.Elements))
	case *iccmax.Dictionary:
		return fmt.Sprintf("%d dictionary entries", len(v.Entries))
	case *iccmax.SignatureData:
		return v.Value.String()
	case *iccmax.Measurement:
		return fmt.Sprintf("observer %d, geometry %d, illuminant %d", v.Observer, v.Geometry, v.Illuminant)
	case *iccmax.NamedColor2:
		return fmt.Sprintf("%d named colours", len(v.Colors))
	case *iccmax.DateTime:
		return v.Value.Time().Format("2006-01-02 15:04:05")
	case *iccmax.UnknownData:
		return fmt.Sprintf("unknown type, %d bytes", len(v.Payload))
	case *iccmax.CustomData:
		return fmt.Sprintf("custom %T", v.Value)
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", data), "*iccmax.")
}

func lutSummary(kind string, l *iccmax.LutAToB) string {
	parts := []string{fmt.Sprintf("%s %d->%d", kind, l.InputChannels, l.OutputChannels)}
	if l.CLUT != nil {
		parts = append(parts, fmt.Sprintf("clut %v", l.CLUT.GridPoints))
	}
	if l.Matrix != nil {
		parts = append(parts, "matrix")
	}
	return strings.Join(parts, ", ")
}

func quote(s string) string {
	const maxLen = 60
	if r := []rune(s); len(r) > maxLen {
		s = string(r[:maxLen]) + "..."
	}
	return fmt.Sprintf("%q", s)
}
