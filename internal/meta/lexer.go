package meta

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"accessor-generator/internal/diagnostic"
)

var multiPunct = []string{"...", "..=", "::", "->", "=>", "==", "!=", ".."}

// Lex splits src into tokens. Spans are reported relative to base, which
// is where src starts in its file. The returned slice always ends with a
// TokenEOF token.
func Lex(src string, base diagnostic.Span) ([]Token, error) {
	l := &lexer{src: src, line: 1, col: 1, base: base}
	if err := l.run(); err != nil {
		return nil, err
	}

	return l.tokens, nil
}

type lexer struct {
	src    string
	pos    int
	line   int
	col    int
	base   diagnostic.Span
	tokens []Token
}

func (l *lexer) run() error {
	for {
		if err := l.skipSpace(); err != nil {
			return err
		}

		if l.pos >= len(l.src) {
			l.tokens = append(l.tokens, Token{Kind: TokenEOF, Start: l.pos, End: l.pos, Span: l.span(l.line, l.col)})

			return nil
		}

		var err error

		c := l.byteAt(0)
		switch {
		case c == 'b' && (l.byteAt(1) == '"' || l.byteAt(1) == '\''):
			err = l.byteLiteral()
		case c == 'b' && l.byteAt(1) == 'r' && (l.byteAt(2) == '"' || l.byteAt(2) == '#'):
			err = l.rawString(TokenByteStr, 2)
		case c == 'r' && (l.byteAt(1) == '"' || (l.byteAt(1) == '#' && (l.byteAt(2) == '"' || l.byteAt(2) == '#'))):
			err = l.rawString(TokenStr, 1)
		case c == 'r' && l.byteAt(1) == '#' && isIdentStart(l.runeAt(2)):
			l.rawIdent()
		case isIdentStart(l.runeAt(0)):
			l.ident()
		case c >= '0' && c <= '9':
			l.number()
		case c == '"':
			err = l.quoted(TokenStr, 0)
		case c == '\'':
			err = l.charOrLifetime()
		default:
			l.punct()
		}

		if err != nil {
			return err
		}
	}
}

func (l *lexer) span(line, col int) diagnostic.Span {
	if !l.base.IsValid() {
		return diagnostic.Span{File: l.base.File, Line: line, Column: col}
	}

	if line == 1 {
		return l.base.Offset(col - 1)
	}

	return diagnostic.Span{File: l.base.File, Line: l.base.Line + line - 1, Column: col}
}

func (l *lexer) errorf(line, col int, format string, args ...any) error {
	return diagnostic.Custom(format, args...).WithSpan(l.span(line, col))
}

func (l *lexer) byteAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}

	return l.src[l.pos+n]
}

// runeAt decodes the rune n bytes ahead; n must land on a rune boundary.
func (l *lexer) runeAt(n int) rune {
	if l.pos+n >= len(l.src) {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos+n:])

	return r
}

func (l *lexer) next() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

func (l *lexer) emit(kind TokenKind, start, line, col int, value string) {
	l.tokens = append(l.tokens, Token{
		Kind:  kind,
		Text:  l.src[start:l.pos],
		Value: value,
		Start: start,
		End:   l.pos,
		Span:  l.span(line, col),
	})
}

func (l *lexer) skipSpace() error {
	for l.pos < len(l.src) {
		switch {
		case unicode.IsSpace(l.runeAt(0)):
			l.next()
		case l.byteAt(0) == '/' && l.byteAt(1) == '/':
			for l.pos < len(l.src) && l.byteAt(0) != '\n' {
				l.next()
			}
		case l.byteAt(0) == '/' && l.byteAt(1) == '*':
			line, col := l.line, l.col
			l.next()
			l.next()

			depth := 1
			for depth > 0 {
				if l.pos >= len(l.src) {
					return l.errorf(line, col, "unterminated block comment")
				}

				switch {
				case l.byteAt(0) == '/' && l.byteAt(1) == '*':
					l.next()
					l.next()
					depth++
				case l.byteAt(0) == '*' && l.byteAt(1) == '/':
					l.next()
					l.next()
					depth--
				default:
					l.next()
				}
			}
		default:
			return nil
		}
	}

	return nil
}

func (l *lexer) ident() {
	start, line, col := l.pos, l.line, l.col
	for l.pos < len(l.src) && isIdentContinue(l.runeAt(0)) {
		l.next()
	}

	l.emit(TokenIdent, start, line, col, l.src[start:l.pos])
}

func (l *lexer) rawIdent() {
	start, line, col := l.pos, l.line, l.col
	l.next()
	l.next()

	nameStart := l.pos
	for l.pos < len(l.src) && isIdentContinue(l.runeAt(0)) {
		l.next()
	}

	l.emit(TokenIdent, start, line, col, l.src[nameStart:l.pos])
}

func (l *lexer) number() {
	start, line, col := l.pos, l.line, l.col
	kind := TokenInt

	if l.byteAt(0) == '0' && strings.IndexByte("xob", l.byteAt(1)) >= 0 {
		l.next()
		l.next()

		for isHexDigit(l.byteAt(0)) || l.byteAt(0) == '_' {
			l.next()
		}
	} else {
		l.digits()

		if l.byteAt(0) == '.' && l.byteAt(1) != '.' && !isIdentStart(l.runeAt(1)) {
			kind = TokenFloat

			l.next()
			l.digits()
		}

		if e := l.byteAt(0); e == 'e' || e == 'E' {
			n := 1
			if s := l.byteAt(1); s == '+' || s == '-' {
				n = 2
			}

			if d := l.byteAt(n); d >= '0' && d <= '9' {
				kind = TokenFloat

				for range n {
					l.next()
				}

				l.digits()
			}
		}
	}

	suffixStart := l.pos
	for l.pos < len(l.src) && isIdentContinue(l.runeAt(0)) {
		l.next()
	}

	if suffix := l.src[suffixStart:l.pos]; suffix == "f32" || suffix == "f64" {
		kind = TokenFloat
	}

	l.emit(kind, start, line, col, l.src[start:l.pos])
}

func (l *lexer) digits() {
	for {
		c := l.byteAt(0)
		if (c < '0' || c > '9') && c != '_' {
			return
		}

		l.next()
	}
}

func (l *lexer) quoted(kind TokenKind, prefix int) error {
	start, line, col := l.pos, l.line, l.col
	for range prefix {
		l.next()
	}

	l.next()

	var value strings.Builder

	for {
		if l.pos >= len(l.src) {
			return l.errorf(line, col, "unterminated string literal")
		}

		r := l.next()
		switch r {
		case '"':
			l.emit(kind, start, line, col, value.String())

			return nil
		case '\\':
			if err := l.escape(&value, true); err != nil {
				return err
			}
		default:
			value.WriteRune(r)
		}
	}
}

func (l *lexer) rawString(kind TokenKind, prefix int) error {
	start, line, col := l.pos, l.line, l.col
	for range prefix {
		l.next()
	}

	hashes := 0
	for l.byteAt(0) == '#' {
		l.next()
		hashes++
	}

	if l.byteAt(0) != '"' {
		return l.errorf(line, col, "expected `\"` in raw string literal")
	}

	l.next()

	closing := "\"" + strings.Repeat("#", hashes)
	end := strings.Index(l.src[l.pos:], closing)

	if end < 0 {
		return l.errorf(line, col, "unterminated raw string literal")
	}

	value := l.src[l.pos : l.pos+end]

	stop := l.pos + end + len(closing)
	for l.pos < stop {
		l.next()
	}

	l.emit(kind, start, line, col, value)

	return nil
}

func (l *lexer) byteLiteral() error {
	if l.byteAt(1) == '"' {
		return l.quoted(TokenByteStr, 1)
	}

	start, line, col := l.pos, l.line, l.col
	l.next()

	value, err := l.charBody(line, col)
	if err != nil {
		return err
	}

	l.emit(TokenByte, start, line, col, value)

	return nil
}

func (l *lexer) charOrLifetime() error {
	start, line, col := l.pos, l.line, l.col

	if r := l.runeAt(1); isIdentStart(r) && l.byteAt(1+utf8.RuneLen(r)) != '\'' {
		l.next()
		for l.pos < len(l.src) && isIdentContinue(l.runeAt(0)) {
			l.next()
		}

		l.emit(TokenLifetime, start, line, col, l.src[start:l.pos])

		return nil
	}

	value, err := l.charBody(line, col)
	if err != nil {
		return err
	}

	l.emit(TokenChar, start, line, col, value)

	return nil
}

// charBody consumes `'c'` starting at the opening quote.
func (l *lexer) charBody(line, col int) (string, error) {
	l.next()

	if l.pos >= len(l.src) {
		return "", l.errorf(line, col, "unterminated character literal")
	}

	var value strings.Builder

	if r := l.next(); r == '\\' {
		if err := l.escape(&value, false); err != nil {
			return "", err
		}
	} else {
		value.WriteRune(r)
	}

	if l.byteAt(0) != '\'' {
		return "", l.errorf(line, col, "unterminated character literal")
	}

	l.next()

	return value.String(), nil
}

func (l *lexer) escape(out *strings.Builder, inString bool) error {
	line, col := l.line, l.col-1
	if l.pos >= len(l.src) {
		return l.errorf(line, col, "unterminated escape sequence")
	}

	r := l.next()
	switch r {
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case '0':
		out.WriteByte(0)
	case '\\', '\'', '"':
		out.WriteRune(r)
	case 'x':
		if l.pos+2 > len(l.src) {
			return l.errorf(line, col, "invalid escape sequence")
		}

		v, err := strconv.ParseUint(l.src[l.pos:l.pos+2], 16, 8)
		if err != nil {
			return l.errorf(line, col, "invalid escape sequence")
		}

		l.next()
		l.next()
		out.WriteByte(byte(v))
	case 'u':
		if l.byteAt(0) != '{' {
			return l.errorf(line, col, "invalid unicode escape")
		}

		end := strings.IndexByte(l.src[l.pos:], '}')
		if end < 0 {
			return l.errorf(line, col, "invalid unicode escape")
		}

		v, err := strconv.ParseUint(strings.ReplaceAll(l.src[l.pos+1:l.pos+end], "_", ""), 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return l.errorf(line, col, "invalid unicode escape")
		}

		for range end + 1 {
			l.next()
		}

		out.WriteRune(rune(v))
	case '\n':
		if !inString {
			return l.errorf(line, col, "invalid escape sequence")
		}

		for l.pos < len(l.src) && unicode.IsSpace(l.runeAt(0)) {
			l.next()
		}
	default:
		return l.errorf(line, col, "unknown character escape `%c`", r)
	}

	return nil
}

func (l *lexer) punct() {
	start, line, col := l.pos, l.line, l.col

	for _, p := range multiPunct {
		if strings.HasPrefix(l.src[l.pos:], p) {
			for range len(p) {
				l.next()
			}

			l.emit(TokenPunct, start, line, col, p)

			return
		}
	}

	r := l.next()
	l.emit(TokenPunct, start, line, col, string(r))
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
