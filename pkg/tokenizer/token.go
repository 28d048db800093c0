package tokenizer

// Token is a minimal lexical unit cut from the input text.
// Start and End are rune offsets into the original input (half-open),
// so End-Start always equals the rune count of Text.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// TokenList is the ordered output of one Tokenize call; order is the
// reading order of the source text.
type TokenList []Token

// Texts returns the token strings in order, without offsets.
func (l TokenList) Texts() []string {
	out := make([]string, len(l))
	for i, tok := range l {
		out[i] = tok.Text
	}
	return out
}
