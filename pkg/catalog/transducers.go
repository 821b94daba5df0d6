package catalog

import (
	"slices"

	"github.com/matzehuels/fsa/pkg/automaton"
)

var (
	textAlphabet = []string{"x", "X", "_", "."}
	textOutputs  = []string{"x", "X", "_", "."}
)

// SqueezeBlanks collapses every run of blanks into a single blank.
var SqueezeBlanks = &Machine{
	Name:           "squeeze-blanks",
	Aliases:        []string{"ex2.1"},
	Description:    "collapse runs of blanks between words into one",
	Kind:           automaton.KindTransducer,
	Alphabet:       textAlphabet,
	OutputAlphabet: textOutputs,
	States:         states(4, 0, 3),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q0", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q0", To: "q1", Symbol: "_", Emit: "_"},
		{From: "q1", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q1", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q1", To: "q2", Symbol: "_", Emit: "_"},
		{From: "q1", To: "q3", Symbol: ".", Emit: "."},
		{From: "q2", To: "q2", Symbol: "_"},
		{From: "q2", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q2", To: "q1", Symbol: "X", Emit: "X"},
	},
	Samples: []string{"x___xxx.", "x___xxx__x____xx."},
}

// TrimLeadingBlanks drops the blanks before the first letter.
var TrimLeadingBlanks = &Machine{
	Name:           "trim-leading-blanks",
	Aliases:        []string{"ex2.2"},
	Description:    "drop blanks at the start of the text",
	Kind:           automaton.KindTransducer,
	Alphabet:       textAlphabet,
	OutputAlphabet: textOutputs,
	States:         states(4, 0, 3),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q0", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q0", To: "q2", Symbol: "_"},
		{From: "q1", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q1", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q1", To: "q1", Symbol: "_", Emit: "_"},
		{From: "q1", To: "q3", Symbol: ".", Emit: "."},
		{From: "q2", To: "q2", Symbol: "_"},
		{From: "q2", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q2", To: "q1", Symbol: "X", Emit: "X"},
	},
	Samples: []string{"___xxx.", "___xxx__x____xx."},
}

// TrimTrailingBlanks holds blanks back until a letter shows they were inside
// the text.
var TrimTrailingBlanks = &Machine{
	Name:           "trim-trailing-blanks",
	Aliases:        []string{"ex2.3"},
	Description:    "drop blanks before the final period",
	Kind:           automaton.KindTransducer,
	Alphabet:       textAlphabet,
	OutputAlphabet: textOutputs,
	States:         states(5, 0, 3, 4),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q0", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q0", To: "q1", Symbol: "_", Emit: "_"},
		{From: "q1", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q1", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q1", To: "q2", Symbol: "_"},
		{From: "q1", To: "q3", Symbol: ".", Emit: "."},
		{From: "q2", To: "q2", Symbol: "_"},
		{From: "q2", To: "q4", Symbol: ".", Emit: "."},
		{From: "q2", To: "q1", Symbol: "x", Emit: "_x"},
		{From: "q2", To: "q1", Symbol: "X", Emit: "_X"},
	},
	Samples: []string{"x_xxxx__.", "xx_x."},
}

// TitleCase capitalizes the first letter of the text and lowercases the rest.
var TitleCase = &Machine{
	Name:           "title-case",
	Aliases:        []string{"ex2.4"},
	Description:    "capitalize the first letter and lowercase the rest",
	Kind:           automaton.KindTransducer,
	Alphabet:       textAlphabet,
	OutputAlphabet: textOutputs,
	States:         states(4, 0, 3),
	Edges: []Edge{
		{From: "q0", To: "q1", Symbol: "x", Emit: "X"},
		{From: "q0", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q0", To: "q2", Symbol: "_", Emit: "_"},
		{From: "q1", To: "q1", Symbol: "x", Emit: "x"},
		{From: "q1", To: "q1", Symbol: "X", Emit: "x"},
		{From: "q1", To: "q1", Symbol: "_", Emit: "_"},
		{From: "q1", To: "q3", Symbol: ".", Emit: "."},
		{From: "q2", To: "q1", Symbol: "x", Emit: "X"},
		{From: "q2", To: "q1", Symbol: "X", Emit: "X"},
		{From: "q2", To: "q2", Symbol: "_", Emit: "_"},
	},
	Samples: []string{"xXX_XxXx.", "___xXX_XxXx."},
}

// PhraseSpacing joins sentences with exactly one blank: the blank after a
// period is inserted when missing and extra blanks are dropped.
var PhraseSpacing = &Machine{
	Name:           "phrase-spacing",
	Aliases:        []string{"ex2.5"},
	Description:    "sentences separated by exactly one blank",
	Kind:           automaton.KindTransducer,
	Alphabet:       textAlphabet,
	OutputAlphabet: textOutputs,
	States:         states(4, 0, 3),
	Edges:          phraseEdges,
	Samples:        []string{"Xx_xx.Xxx_x.", "Xx_xx.Xxx_x.___Xx."},
}

// PhraseSpacingLenient is [PhraseSpacing] that also reads a stray period
// after the separating blanks as the capital starting the next sentence.
var PhraseSpacingLenient = &Machine{
	Name:           "phrase-spacing-lenient",
	Aliases:        []string{"ex2.6"},
	Description:    "sentences separated by one blank; a period after the blank opens a sentence",
	Kind:           automaton.KindTransducer,
	Alphabet:       textAlphabet,
	OutputAlphabet: textOutputs,
	States:         states(4, 0, 3),
	Edges:          append(slices.Clone(phraseEdges), Edge{From: "q2", To: "q1", Symbol: ".", Emit: "X"}),
	Samples:        []string{"X._._Xx_x."},
}

var phraseEdges = []Edge{
	{From: "q0", To: "q1", Symbol: "x", Emit: "x"},
	{From: "q0", To: "q1", Symbol: "X", Emit: "X"},
	{From: "q0", To: "q1", Symbol: "_", Emit: "_"},
	{From: "q1", To: "q1", Symbol: "x", Emit: "x"},
	{From: "q1", To: "q1", Symbol: "X", Emit: "x"},
	{From: "q1", To: "q1", Symbol: "_", Emit: "_"},
	{From: "q1", To: "q3", Symbol: ".", Emit: "."},
	{From: "q2", To: "q2", Symbol: "_"},
	{From: "q2", To: "q1", Symbol: "x", Emit: "x"},
	{From: "q2", To: "q1", Symbol: "X", Emit: "X"},
	{From: "q3", To: "q1", Symbol: "x", Emit: "_x"},
	{From: "q3", To: "q1", Symbol: "X", Emit: "_X"},
	{From: "q3", To: "q2", Symbol: "_", Emit: "_"},
}
