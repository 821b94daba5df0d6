package automaton

import (
	"errors"

	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned by [Automaton.AddTransition] when the
	// input alphabet has no symbols.
	ErrEmptyAlphabet = errors.New("alphabet is empty")

	// ErrEmptyOutputAlphabet is returned by [Automaton.AddTransition] on a
	// transducer whose output alphabet has no symbols.
	ErrEmptyOutputAlphabet = errors.New("output alphabet is empty")

	// ErrInvalidSymbol is returned when a transition or an input sequence
	// uses a symbol outside the input alphabet.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")

	// ErrInvalidOutputSymbol is returned when a transducer transition emits a
	// symbol outside the output alphabet.
	ErrInvalidOutputSymbol = errors.New("output symbol not in output alphabet")

	// ErrUnexpectedOutput is returned when an acceptor transition carries
	// output symbols.
	ErrUnexpectedOutput = errors.New("acceptor transitions cannot emit output")

	// ErrUnknownState is returned when a transition names a state that does
	// not exist.
	ErrUnknownState = errors.New("unknown state")

	// ErrDuplicateState is returned by [Automaton.AddState] when the name is
	// already taken.
	ErrDuplicateState = errors.New("duplicate state name")

	// ErrDuplicateInitial is returned by [Automaton.AddState] when an initial
	// state already exists.
	ErrDuplicateInitial = errors.New("automaton already has an initial state")

	// ErrNondeterministic is returned by [Automaton.AddTransition] when the
	// source state already has a transition on the same symbol.
	ErrNondeterministic = errors.New("state already has a transition on symbol")

	// ErrAlphabetFrozen is returned when extending an alphabet after the
	// first transition was added.
	ErrAlphabetFrozen = errors.New("alphabet is frozen once transitions exist")

	// ErrNotReady is returned by [Automaton.Run] and [Automaton.Ready] when
	// the automaton is not minimally configured. It is always joined with one
	// of the more specific errors below.
	ErrNotReady = errors.New("automaton not ready")

	ErrNoStates       = errors.New("no states")
	ErrNoTransitions  = errors.New("no transitions")
	ErrNoInitialState = errors.New("no initial state")
	ErrNoAcceptState  = errors.New("no accept state")
)

func invalid(cause error, format string, args ...any) error {
	return fsaerrors.Wrap(fsaerrors.ErrCodeValidation, cause, format, args...)
}

func misconfigured(cause error, format string, args ...any) error {
	return fsaerrors.Wrap(fsaerrors.ErrCodeConfiguration, cause, format, args...)
}
