package driver

import (
	"fmt"
	"log/slog"

	"github.com/raymyers/tacc/pkg/asmgen"
	"github.com/raymyers/tacc/pkg/config"
	"github.com/raymyers/tacc/pkg/lexer"
	"github.com/raymyers/tacc/pkg/qbe"
	"github.com/raymyers/tacc/pkg/symtab"
	"github.com/raymyers/tacc/pkg/tacgen"
)

// Result is everything a run produces, stage by stage. Fields of disabled
// stages are left empty.
type Result struct {
	Tokens      []lexer.Token
	LexErrors   []*lexer.Error
	Symbols     symtab.Table
	Listings    []*Listing
	Diagnostics []Diagnostic
	QBE         *qbe.Function
	Native      string
}

// Listing returns the listing of the named backend, or nil.
func (r *Result) Listing(backend string) *Listing {
	for _, l := range r.Listings {
		if l.Backend == backend {
			return l
		}
	}
	return nil
}

// Process runs every stage enabled in cfg over src.
func Process(src string, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	res := &Result{}

	if cfg.Enabled(config.StageTokens) {
		res.Tokens, res.LexErrors = lexer.Tokenize(src)
		for _, e := range res.LexErrors {
			if logger != nil {
				logger.Warn("unexpected character", "char", string(e.Char), "line", e.Line, "column", e.Column)
			}
		}
	}
	if cfg.Enabled(config.StageSymbols) || cfg.Enabled(config.StageQBE) {
		res.Symbols = symtab.Build(src, cfg.TypeKeywords)
	}

	var backends []Backend
	if cfg.Enabled(config.StageTAC) {
		backends = append(backends, tacgen.NewBackend(cfg.TempPrefix))
	}
	if cfg.Enabled(config.StageAsm) {
		backends = append(backends, asmgen.NewBackend(cfg.RegisterPrefix))
	}
	var q *qbe.Backend
	if cfg.Enabled(config.StageQBE) {
		q = qbe.NewBackend("")
		backends = append(backends, q)
	}
	if len(backends) == 0 {
		return res, nil
	}

	s := NewSession(Options{Backends: backends, TypeKeywords: cfg.TypeKeywords, Logger: logger})
	res.Diagnostics = s.Run(src)
	res.Listings = s.Listings()

	if q == nil {
		return res, nil
	}
	res.QBE = q.Function(res.Symbols, s.Listing(q.Name()).Lines())
	if cfg.QBE.Native {
		asm, err := qbe.Compile(res.QBE.String(), cfg.QBE.Target)
		if err != nil {
			return res, fmt.Errorf("native code: %w", err)
		}
		res.Native = asm
	}
	return res, nil
}
