package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symbo/scanner"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"x ^ 2",
	"ln ( y ) * 3.5",
	"a $ b",
}

var tokenCounts = []int{1, 3, 3, 6, 2}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symbo.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		errcnt := 0
		sc.SetErrorHandler(func(e error) {
			errcnt++
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if i == len(inputStrings)-1 && errcnt == 0 {
			t.Errorf("Expected scanner error for input %q", input)
		}
	}
	t.Logf("------+-----------------+--------")
}

var literals []string       // The tokens representing literal strings
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{"(", ")", "+", "-", "*", "/", "^"}
	tokenIds = make(map[string]int)
	tokenIds["ID"] = scanner.Ident
	tokenIds["NUM"] = scanner.Float
	for _, lit := range literals {
		tokenIds[lit] = int(lit[0])
	}
}
