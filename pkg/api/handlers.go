package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/automaton/reduce"
	"github.com/matzehuels/fsa/pkg/cache"
	"github.com/matzehuels/fsa/pkg/catalog"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
	"github.com/matzehuels/fsa/pkg/observability"
	"github.com/matzehuels/fsa/pkg/render/diagram"
)

type machineSummary struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
}

type stateJSON struct {
	Name    string `json:"name"`
	Initial bool   `json:"initial,omitempty"`
	Accept  bool   `json:"accept,omitempty"`
}

type transitionJSON struct {
	From   string   `json:"from"`
	Symbol string   `json:"symbol"`
	Output []string `json:"output,omitempty"`
	To     string   `json:"to"`
}

type machineDetail struct {
	machineSummary
	Alphabet       []string         `json:"alphabet"`
	OutputAlphabet []string         `json:"output_alphabet,omitempty"`
	States         []stateJSON      `json:"states"`
	Transitions    []transitionJSON `json:"transitions"`
	Samples        []string         `json:"samples,omitempty"`
}

type runRequest struct {
	Input    string   `json:"input"`
	Symbols  []string `json:"symbols,omitempty"`
	Minimize bool     `json:"minimize"`
	Trace    bool     `json:"trace"`
}

type stepJSON struct {
	Index  int      `json:"index"`
	From   string   `json:"from"`
	Symbol string   `json:"symbol"`
	Output []string `json:"output,omitempty"`
	To     string   `json:"to"`
}

type runResponse struct {
	ID        string         `json:"id"`
	Machine   string         `json:"machine"`
	Accepted  bool           `json:"accepted"`
	Output    *string        `json:"output,omitempty"`
	Final     string         `json:"final"`
	Reason    string         `json:"reason,omitempty"`
	Symbol    string         `json:"symbol,omitempty"`
	Consumed  int            `json:"consumed"`
	Reduction *reduce.Result `json:"reduction,omitempty"`
	Trace     []stepJSON     `json:"trace,omitempty"`
}

func summarize(m *catalog.Machine) machineSummary {
	return machineSummary{
		Name:        m.Name,
		Aliases:     m.Aliases,
		Kind:        m.Kind.String(),
		Description: m.Description,
	}
}

// machine resolves the {name} URL parameter and builds a fresh automaton.
func machine(r *http.Request) (*catalog.Machine, *automaton.Automaton, error) {
	name := chi.URLParam(r, "name")
	if err := fsaerrors.ValidateMachineName(name); err != nil {
		return nil, nil, err
	}
	m, ok := catalog.Lookup(name)
	if !ok {
		return nil, nil, fsaerrors.Wrap(fsaerrors.ErrCodeNotFound, catalog.ErrUnknownMachine, "machine %q", name)
	}
	a, err := m.Build()
	if err != nil {
		return nil, nil, fsaerrors.Wrap(fsaerrors.ErrCodeInternal, err, "build %s", m.Name)
	}
	return m, a, nil
}

func (s *Server) listMachines(w http.ResponseWriter, r *http.Request) {
	out := make([]machineSummary, len(catalog.Machines))
	for i, m := range catalog.Machines {
		out[i] = summarize(m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getMachine(w http.ResponseWriter, r *http.Request) {
	m, a, err := machine(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	d := machineDetail{
		machineSummary: summarize(m),
		Alphabet:       a.Alphabet(),
		OutputAlphabet: a.OutputAlphabet(),
		Samples:        m.Samples,
	}
	for _, st := range a.States() {
		d.States = append(d.States, stateJSON{Name: st.Name, Initial: st.Initial, Accept: st.Accept})
	}
	for _, t := range a.Transitions() {
		d.Transitions = append(d.Transitions, transitionJSON{From: t.From, Symbol: t.Symbol, Output: t.Output, To: t.To})
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) runMachine(w http.ResponseWriter, r *http.Request) {
	m, a, err := machine(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req runRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, fsaerrors.Wrap(fsaerrors.ErrCodeInvalidInput, err, "decode run request"))
		return
	}

	resp := runResponse{ID: uuid.NewString(), Machine: m.Name}
	if req.Minimize {
		before := a.StateCount()
		start := time.Now()
		res, err := reduce.Minimize(a)
		observability.Engine().OnReduce(r.Context(), m.Name, before, a.StateCount(), time.Since(start), err)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Reduction = &res
	}

	input := req.Symbols
	if input == nil {
		input = automaton.Symbols(req.Input)
	}

	start := time.Now()
	res, err := a.Run(input)
	observability.Engine().OnRun(r.Context(), m.Name, res.Accepted, len(input), time.Since(start), err)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp.Accepted = res.Accepted
	resp.Final = res.Final
	resp.Reason = string(res.Reason)
	resp.Symbol = res.Symbol
	resp.Consumed = res.Consumed
	if res.Output != nil {
		out := res.OutputString()
		resp.Output = &out
	}
	if req.Trace {
		resp.Trace = []stepJSON{}
		for step := range a.Trace(input) {
			resp.Trace = append(resp.Trace, stepJSON{
				Index:  step.Index,
				From:   step.From,
				Symbol: step.Symbol,
				Output: step.Output,
				To:     step.To,
			})
		}
	}

	if s.logger != nil {
		s.logger.Debug("run", "id", resp.ID, "machine", m.Name, "accepted", res.Accepted, "symbols", len(input))
	}
	writeJSON(w, http.StatusOK, resp)
}

// diagram renders the machine. The optional "input" query parameter
// highlights the states visited while running it.
func (s *Server) diagram(w http.ResponseWriter, r *http.Request) {
	m, a, err := machine(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	format := diagram.FormatSVG
	if v := q.Get("format"); v != "" {
		if format, err = diagram.ParseFormat(v); err != nil {
			s.writeError(w, err)
			return
		}
	}

	opts := diagram.Options{Title: m.Name}
	var extra []string
	if q.Has("input") {
		input := q.Get("input")
		if _, err := a.RunString(input); err != nil {
			s.writeError(w, err)
			return
		}
		var steps []automaton.Step
		for step := range a.Trace(automaton.Symbols(input)) {
			steps = append(steps, step)
		}
		initial, _ := a.Initial()
		opts.Overlay = diagram.OverlayFromTrace(initial.Name, steps)
		extra = append(extra, "input="+input)
	}

	ctx := r.Context()
	key := cache.DiagramKey(m.Name, string(format), extra...)
	data, hit, err := s.cache.Get(ctx, key)
	if err != nil && s.logger != nil {
		s.logger.Warn("cache get failed", "key", key, "err", err)
	}
	if !hit {
		data, err = diagram.Generate(ctx, a, format, opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil && s.logger != nil {
			s.logger.Warn("cache set failed", "key", key, "err", err)
		}
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
