package core

// Character code constants
const (
	CharEOF        = 0
	CharTAB        = 9
	CharLF         = 10
	CharVTAB       = 11
	CharFF         = 12
	CharCR         = 13
	CharSPACE      = 32
	CharDQ         = 34
	CharSQ         = 39
	CharLPAREN     = 40
	CharRPAREN     = 41
	CharCOMMA      = 44
	CharMINUS      = 45
	CharPERIOD     = 46
	CharSLASH      = 47
	CharCOLON      = 58
	CharLT         = 60
	CharEQ         = 61
	CharGT         = 62
	CharLBRACKET   = 91
	CharBACKSLASH  = 92
	CharRBRACKET   = 93
	CharUnderscore = 95
	CharLBRACE     = 123
	CharRBRACE     = 125
	CharNBSP       = 160

	Char0 = 48
	Char9 = 57

	CharA = 65
	CharZ = 90

	CharLowerA = 97
	CharLowerZ = 122
)

// IsWhitespace checks if a character is whitespace
func IsWhitespace(code int) bool {
	return (code >= CharTAB && code <= CharSPACE) || code == CharNBSP
}

// IsDigit checks if a character is a digit
func IsDigit(code int) bool {
	return Char0 <= code && code <= Char9
}

// IsAsciiLetter checks if a character is an ASCII letter
func IsAsciiLetter(code int) bool {
	return (code >= CharLowerA && code <= CharLowerZ) || (code >= CharA && code <= CharZ)
}

// IsIdentifierStart checks if a character can start an identifier
func IsIdentifierStart(code int) bool {
	return IsAsciiLetter(code) || code == CharUnderscore
}

// IsIdentifierPart checks if a character can continue an identifier
func IsIdentifierPart(code int) bool {
	return IsIdentifierStart(code) || IsDigit(code)
}

// IsQuote checks if a character is a quote
func IsQuote(code int) bool {
	return code == CharDQ || code == CharSQ
}

// IsNewLine checks if a character is a newline
func IsNewLine(code int) bool {
	return code == CharLF || code == CharCR
}
