// Package strip removes comments from source-like text while preserving
// string literal contents and collapsing lines a comment fully occupied.
//
// The stripper is deliberately not a parser for any one language. It runs
// a single pass over the input and recognises several unrelated comment
// syntaxes at once (C-style, HTML, Lua, Pascal, shell/ini-style), using
// lightweight context heuristics to tell look-alike tokens apart.
package strip

// Strip removes recognised comments from src and returns the result.
// String literal contents are preserved byte-for-byte, trailing whitespace
// before a removed comment is trimmed, and a line that held nothing but a
// comment is removed entirely, terminator included. Strip is total: any
// byte sequence is accepted, and an unterminated comment or string simply
// consumes to the end of the input.
func Strip(src []byte) []byte {
	s := &stripper{src: src, out: make([]byte, 0, len(src)), lineStart: true}
	s.run()
	return s.out
}

// String is a convenience wrapper around Strip for string inputs.
func String(src string) string {
	return string(Strip([]byte(src)))
}

type lexState int

const (
	stateNormal lexState = iota
	stateSingleQuote
	stateDoubleQuote
	stateBacktick
	stateVerbatim
	stateLineComment
	stateCBlock
	stateHTMLBlock
	stateLuaBlock
	statePascalBlock
)

type stripper struct {
	src   []byte
	out   []byte
	pos   int
	state lexState

	// lineStart is true while nothing but whitespace has been emitted
	// since the last line terminator.
	lineStart bool
	// commentOwnsLine is latched on comment entry from lineStart. A
	// comment that owns its line is removed together with its terminator.
	commentOwnsLine bool
	// dropNextNewline is armed when a block comment that owned its line
	// closes, so the terminator after the closer is dropped too.
	dropNextNewline bool
}

func (s *stripper) run() {
	for s.pos < len(s.src) {
		switch s.state {
		case stateSingleQuote:
			s.handleString('\'')
		case stateDoubleQuote:
			s.handleString('"')
		case stateBacktick:
			s.handleString('`')
		case stateVerbatim:
			s.handleVerbatim()
		case stateLineComment:
			s.handleLineComment()
		case stateCBlock:
			s.handleBlockComment("*/")
		case stateHTMLBlock:
			s.handleBlockComment("-->")
		case stateLuaBlock:
			s.handleBlockComment("]]")
		case statePascalBlock:
			s.handleBlockComment("*)")
		default:
			s.handleNormal()
		}
	}
}

func (s *stripper) handleNormal() {
	c := s.src[s.pos]

	// String openers.
	if c == '@' && s.peekIs('"') {
		s.emit('@')
		s.emit('"')
		s.pos += 2
		s.state = stateVerbatim
		return
	}
	switch c {
	case '"':
		s.enterString(stateDoubleQuote)
		return
	case '\'':
		s.enterString(stateSingleQuote)
		return
	case '`':
		s.enterString(stateBacktick)
		return
	}

	// Comment openers.
	if c == '/' && s.peekIs('/') {
		s.enterComment(stateLineComment, 2)
		return
	}
	if c == '/' && s.peekIs('*') {
		s.enterComment(stateCBlock, 2)
		return
	}
	if c == '<' && s.lookingAt("<!--") {
		s.enterComment(stateHTMLBlock, 4)
		return
	}
	if c == '-' && s.peekIs('-') && s.dashContext() {
		if s.lookingAt("--[[") {
			s.enterComment(stateLuaBlock, 4)
		} else {
			s.enterComment(stateLineComment, 2)
		}
		return
	}
	if (c == '#' || c == ';') && s.lineStart {
		s.enterComment(stateLineComment, 1)
		return
	}
	if c == '(' && s.peekIs('*') {
		s.enterComment(statePascalBlock, 2)
		return
	}

	// Line terminators.
	if n := s.terminatorLen(); n > 0 {
		if s.dropNextNewline {
			s.dropNextNewline = false
		} else {
			s.out = append(s.out, s.src[s.pos:s.pos+n]...)
		}
		s.pos += n
		s.lineStart = true
		return
	}

	s.emit(c)
	s.pos++
}

// handleString copies string content verbatim until the matching unescaped
// delimiter. A backslash escapes whatever follows it, delimiter included.
func (s *stripper) handleString(delim byte) {
	c := s.src[s.pos]

	if c == '\\' && s.pos+1 < len(s.src) {
		s.emit(c)
		s.emit(s.src[s.pos+1])
		s.pos += 2
		return
	}

	s.emit(c)
	s.pos++
	if c == delim {
		s.state = stateNormal
	}
}

// handleVerbatim is handleString for the @"..." form, where a doubled
// quote is a literal quote rather than a close-then-reopen.
func (s *stripper) handleVerbatim() {
	c := s.src[s.pos]

	if c == '\\' && s.pos+1 < len(s.src) {
		s.emit(c)
		s.emit(s.src[s.pos+1])
		s.pos += 2
		return
	}

	if c == '"' {
		if s.peekIs('"') {
			s.emit('"')
			s.emit('"')
			s.pos += 2
			return
		}
		s.emit('"')
		s.pos++
		s.state = stateNormal
		return
	}

	s.emit(c)
	s.pos++
}

func (s *stripper) handleLineComment() {
	if n := s.terminatorLen(); n > 0 {
		if !s.commentOwnsLine {
			s.out = append(s.out, s.src[s.pos:s.pos+n]...)
		}
		s.pos += n
		s.state = stateNormal
		s.lineStart = true
		return
	}
	s.pos++
}

func (s *stripper) handleBlockComment(closer string) {
	if s.lookingAt(closer) {
		s.pos += len(closer)
		s.state = stateNormal
		if s.commentOwnsLine {
			s.dropNextNewline = true
		}
		return
	}
	if n := s.terminatorLen(); n > 0 {
		if !s.commentOwnsLine {
			s.out = append(s.out, s.src[s.pos:s.pos+n]...)
		}
		s.pos += n
		s.lineStart = true
		return
	}
	s.pos++
}

// enterComment trims trailing horizontal whitespace already emitted for
// the current line, latches whether the comment owns the line, and
// switches state, consuming the opening token.
func (s *stripper) enterComment(st lexState, tokenLen int) {
	s.trimTrailingWS()
	s.commentOwnsLine = s.lineStart
	s.state = st
	s.pos += tokenLen
}

func (s *stripper) enterString(st lexState) {
	s.emit(s.src[s.pos])
	s.pos++
	s.state = st
}

// emit appends one byte to the output and keeps lineStart current.
func (s *stripper) emit(c byte) {
	s.out = append(s.out, c)
	switch c {
	case '\n':
		s.lineStart = true
	case ' ', '\t', '\r':
	default:
		s.lineStart = false
	}
}

func (s *stripper) trimTrailingWS() {
	for len(s.out) > 0 {
		last := s.out[len(s.out)-1]
		if last != ' ' && last != '\t' {
			break
		}
		s.out = s.out[:len(s.out)-1]
	}
}

// dashContext reports whether "--" at the cursor should be read as a
// comment opener. The heuristic: at index 0, at line start, or preceded
// by whitespace. It will misread "--" used as an operator with a leading
// space; that tradeoff is accepted in place of per-language parsing.
func (s *stripper) dashContext() bool {
	if s.pos == 0 || s.lineStart {
		return true
	}
	switch s.src[s.pos-1] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// terminatorLen returns the byte length of a line terminator at the
// cursor ("\n" or "\r\n"), or 0 if the cursor is not on one.
func (s *stripper) terminatorLen() int {
	switch s.src[s.pos] {
	case '\n':
		return 1
	case '\r':
		if s.peekIs('\n') {
			return 2
		}
	}
	return 0
}

func (s *stripper) peekIs(c byte) bool {
	return s.pos+1 < len(s.src) && s.src[s.pos+1] == c
}

func (s *stripper) lookingAt(token string) bool {
	if s.pos+len(token) > len(s.src) {
		return false
	}
	return string(s.src[s.pos:s.pos+len(token)]) == token
}
