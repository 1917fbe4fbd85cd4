package board

import (
	"fmt"
	"strings"
)

// SAN returns the short algebraic notation of the legal move m, with a "+"
// or "#" suffix when it gives check or mate.
func (p *Position) SAN(m Move) string {
	s := p.sanBody(m, p.GenerateMoves())
	p.MakeMove(m)
	if p.InCheck() {
		if len(p.GenerateMoves()) == 0 {
			s += "#"
		} else {
			s += "+"
		}
	}
	p.UnmakeMove(m)
	return s
}

func (p *Position) sanBody(m Move, legal []Move) string {
	switch m.Type() {
	case KingCastle:
		return "O-O"
	case QueenCastle:
		return "O-O-O"
	}
	from, to := m.From(), m.To()
	pt := p.squares[from].Type()
	var sb strings.Builder

	if pt == PieceTypePawn {
		if m.IsCapture() {
			sb.WriteByte(byte('a' + from.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteString(m.PromotionType().Letter())
		}
		return sb.String()
	}

	sb.WriteString(pt.Letter())
	ambiguous, sameFile, sameRank := false, false, false
	for _, o := range legal {
		if o.To() != to || o.From() == from || p.squares[o.From()].Type() != pt {
			continue
		}
		ambiguous = true
		if o.From().File() == from.File() {
			sameFile = true
		}
		if o.From().Rank() == from.Rank() {
			sameRank = true
		}
	}
	if ambiguous {
		switch {
		case !sameFile:
			sb.WriteByte(byte('a' + from.File()))
		case !sameRank:
			sb.WriteByte(byte('1' + from.Rank()))
		default:
			sb.WriteString(from.String())
		}
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	return sb.String()
}

// ParseSAN finds the legal move written as s in short algebraic notation.
// Check, mate and annotation suffixes are ignored.
func (p *Position) ParseSAN(s string) (Move, error) {
	clean := strings.TrimRight(strings.TrimSpace(s), "+#!?")
	clean = strings.ReplaceAll(clean, "0", "O")
	legal := p.GenerateMoves()
	for _, m := range legal {
		if p.sanBody(m, legal) == clean {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}

// LongAlgebraic renders m as origin, destination and promotion letter.
func LongAlgebraic(m Move) string { return m.String() }

// ParseLongAlgebraic finds the legal move written as s, e.g. e2e4 or e7e8q.
func (p *Position) ParseLongAlgebraic(s string) (Move, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	if n := len(want); n == 4 || n == 5 {
		for _, m := range p.GenerateMoves() {
			if m.String() == want {
				return m, nil
			}
		}
	}
	return NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}

// ApplyMoves plays a list of long algebraic moves. It stops at the first
// move that is not legal and returns its error.
func (p *Position) ApplyMoves(moves ...string) error {
	for _, s := range moves {
		m, err := p.ParseLongAlgebraic(s)
		if err != nil {
			return err
		}
		p.MakeMove(m)
	}
	return nil
}
