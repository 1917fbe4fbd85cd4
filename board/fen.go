package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Reset replaces the position with the one described by fen. The half-move
// and full-move fields may be omitted. Positions where the side not to move
// is in check, or whose en-passant square has no pawn that could have just
// double-pushed past it, are rejected. On error p is left untouched.
func (p *Position) Reset(fen string) error {
	h := p.hasher
	if h == nil {
		h = DefaultHasher()
	}
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return fmt.Errorf("%w: expected 4 to 6 fields, got %d in %q", ErrInvalidFEN, len(fields), fen)
	}

	np := Position{hasher: h}
	for i := range np.kingSq {
		np.kingSq[i] = NoSquare
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: placement has %d ranks", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc := pieceFromChar(ch)
			if pc == NoPiece {
				return fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			sq := NewSquare(file, rank)
			np.addPiece(pc, sq)
			if pc.Type() == PieceTypeKing {
				np.kingSq[pc.Color()] = sq
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	if np.kingSq[White] == NoSquare || np.kingSq[Black] == NoSquare {
		return fmt.Errorf("%w: both kings are required", ErrInvalidFEN)
	}

	switch fields[1] {
	case "w":
		np.sideToMove = White
	case "b":
		np.sideToMove = Black
	default:
		return fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	st := IrreversibleState{EnPassant: NoSquare}
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				st.Castling |= CastlingWhiteK
			case 'Q':
				st.Castling |= CastlingWhiteQ
			case 'k':
				st.Castling |= CastlingBlackK
			case 'q':
				st.Castling |= CastlingBlackQ
			default:
				return fmt.Errorf("%w: castling rights %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		// The square must sit behind an enemy pawn that just made a double push.
		sq, err := ParseSquare(fields[3])
		epRank := 5
		if np.sideToMove == Black {
			epRank = 2
		}
		if err != nil || sq.Rank() != epRank || np.squares[sq] != NoPiece ||
			np.squares[enPassantVictim(sq)] != NewPiece(np.sideToMove.Other(), PieceTypePawn) {
			return fmt.Errorf("%w: en-passant square %q", ErrInvalidFEN, fields[3])
		}
		st.EnPassant = sq
	}

	fullmove := 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return fmt.Errorf("%w: half-move clock %q", ErrInvalidFEN, fields[4])
		}
		st.HalfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: full-move number %q", ErrInvalidFEN, fields[5])
		}
		fullmove = n
	}
	np.gamePlyBase = 2 * (fullmove - 1)
	if np.sideToMove == Black {
		np.gamePlyBase++
	}

	np.updateOccupancy()
	if np.attackedBy(np.kingSq[np.sideToMove.Other()], np.sideToMove, np.all) {
		return fmt.Errorf("%w: %s king is in check with %s to move", ErrInvalidFEN, np.sideToMove.Other(), np.sideToMove)
	}
	np.history = append(make([]IrreversibleState, 0, 256), st)
	np.hash ^= h.Castling(st.Castling) ^ h.EnPassant(st.EnPassant)
	if np.sideToMove == Black {
		np.hash ^= h.Side()
	}
	np.hashHistory = append(make([]uint64, 0, 256), np.hash)

	*p = np
	return nil
}

// FEN renders the position in Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[NewSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	st := p.state()
	sb.WriteString(st.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(st.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", st.HalfmoveClock, p.FullmoveNumber())
	return sb.String()
}
