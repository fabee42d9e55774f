package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(s string) []string {
	var out []string
	for sentence := range Sentences(s) {
		out = append(out, sentence)
	}
	return out
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "three sentences",
			in:   "Olá! Como posso ajudar? Tudo bem.",
			want: []string{"Olá!", "Como posso ajudar?", "Tudo bem."},
		},
		{
			name: "no terminal punctuation",
			in:   "uma frase sem ponto final",
			want: []string{"uma frase sem ponto final"},
		},
		{
			name: "ellipsis boundary",
			in:   "Espera… já volto.",
			want: []string{"Espera…", "já volto."},
		},
		{
			name: "punctuation stays attached",
			in:   "Sim. Não!",
			want: []string{"Sim.", "Não!"},
		},
		{
			name: "collapses whitespace after boundary",
			in:   "Primeira.\n\n  Segunda.",
			want: []string{"Primeira.", "Segunda."},
		},
		{
			name: "drops single char fragments",
			in:   "Certo!? E aí.",
			want: []string{"Certo!", "E aí."},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "only punctuation",
			in:   ". . .",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.in))
		})
	}
}

func TestSentencesRestartable(t *testing.T) {
	seq := Sentences("Um dois. Três quatro.")

	first := make([]string, 0, 2)
	for s := range seq {
		first = append(first, s)
	}
	second := make([]string, 0, 2)
	for s := range seq {
		second = append(second, s)
	}
	assert.Equal(t, first, second)
}

func TestSentencesEarlyBreak(t *testing.T) {
	var got []string
	for s := range Sentences("Um dois. Três quatro. Cinco seis.") {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"Um dois.", "Três quatro."}, got)
}
