//go:build tinygo

package fmtx

import (
	"io"

	"rgbknob/x/strconvx"
)

// Tiny formatter for diagnostics on MCU builds.
// Supports %d %s %v %t %% with an optional width (right-aligned).
// Unknown verbs are written literally.

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	var b builder
	b.format(format, a...)
	return w.Write(b.buf)
}

type builder struct{ buf []byte }

func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) pad(s string, width int) {
	for n := width - len(s); n > 0; n-- {
		b.buf = append(b.buf, ' ')
	}
	b.str(s)
}

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			b.buf = append(b.buf, c)
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			b.buf = append(b.buf, '%')
			i++
			continue
		}
		width := 0
		for i < len(format) && '0' <= format[i] && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}
		if i >= len(format) {
			return
		}
		verb := format[i]
		i++
		if ai >= len(args) {
			b.str("%!")
			b.buf = append(b.buf, verb)
			continue
		}
		arg := args[ai]
		ai++
		switch verb {
		case 'd', 's', 'v', 't':
			b.pad(render(arg), width)
		default:
			b.buf = append(b.buf, '%', verb)
		}
	}
}

func render(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconvx.FormatInt(int64(x), 10)
	case int8:
		return strconvx.FormatInt(int64(x), 10)
	case int16:
		return strconvx.FormatInt(int64(x), 10)
	case int32:
		return strconvx.FormatInt(int64(x), 10)
	case int64:
		return strconvx.FormatInt(x, 10)
	case uint:
		return strconvx.FormatUint(uint64(x), 10)
	case uint8:
		return strconvx.FormatUint(uint64(x), 10)
	case uint16:
		return strconvx.FormatUint(uint64(x), 10)
	case uint32:
		return strconvx.FormatUint(uint64(x), 10)
	case uint64:
		return strconvx.FormatUint(x, 10)
	case error:
		return x.Error()
	case interface{ String() string }:
		return x.String()
	default:
		return "<?>"
	}
}
