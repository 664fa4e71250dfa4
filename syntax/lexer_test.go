package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasics(t *testing.T) {
	tokens, err := Tokenize(`(+ 1 -2 "hi\n")`)
	require.NoError(t, err)

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []TokenType{LPAREN, SYMBOL, NUMBER, NUMBER, STRING, RPAREN, EOF}, types)
}

func TestTokenizeSkipsComments(t *testing.T) {
	tokens, err := Tokenize("1 ; a comment\n2")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, []TokenType{tokens[0].Type, tokens[1].Type, tokens[2].Type})
}

func TestTokenizeBraces(t *testing.T) {
	tokens, err := Tokenize("{a b}")
	require.NoError(t, err)

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{LBRACE, SYMBOL, SYMBOL, RBRACE, EOF}, types)
}

func TestTokenizeUnterminatedStringIsIllegal(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	assert.Error(t, err)
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"a\tb\\c\"d"`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "a\tb\\c\"d", tokens[0].Value)
}
