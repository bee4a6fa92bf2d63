// Package savegame encodes the spatial part of a saved game.
//
// Stream layout, big-endian:
//
//	[Magic:4][Version:2][Turn:4][Victory:5x4][PirateDifficulty:4]
//	[Width:2][Height:2][Players:1]
//	Width*Height x [Tile:2][SquareType:1][SquareValue:2]   row-major
//	[SunCount:2] SunCount x [NameLen:1][Name][X:2][Y:2][SunType:1]
//	[ExtensionLen:4][Extension]
//
// The culture grid is not part of the stream. Callers must run Restore
// after Decode to rebuild it from the live culture sources.
package savegame

import (
	"bufio"
	"bytes"
	"io"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/culture"
	"galaxy-kernel/internal/grid"
	"galaxy-kernel/internal/shared/errors"
)

const (
	Magic   = "GXKM"
	Version = 2

	// VictoryThresholds is the number of victory-scoring thresholds stored.
	VictoryThresholds = 5

	// MaxExtension caps the opaque extension block a decoder will allocate.
	MaxExtension = 64 << 20

	headerSize = len(Magic) + 2 + 4 + VictoryThresholds*4 + 4 + 2 + 2 + 1
	cellSize   = 2 + 1 + 2
)

// State is everything the stream carries. Extension holds player and planet
// data owned by other packages; it is stored verbatim.
type State struct {
	Turn              int
	VictoryThresholds [VictoryThresholds]int
	PirateDifficulty  int
	Grid              *grid.Grid
	Extension         []byte
}

var errBlobTooLarge = errors.Validationf("block exceeds %d bytes", MaxExtension)

// Encode writes s to w.
func Encode(w io.Writer, s *State) error {
	if s.Grid == nil {
		return errors.Validation("cannot encode a state without a grid")
	}
	suns := s.Grid.Suns()
	if len(suns) > 0xffff {
		return errors.Validationf("%d suns exceed the stream limit", len(suns))
	}
	if len(s.Extension) > MaxExtension {
		return errors.Validationf("extension block of %d bytes exceeds %d", len(s.Extension), MaxExtension)
	}

	width, height := s.Grid.Width(), s.Grid.Height()
	out := NewWriter(headerSize + width*height*cellSize + len(s.Extension) + 64)

	out.Raw([]byte(Magic))
	out.U16(Version)
	out.I32(s.Turn)
	for _, v := range s.VictoryThresholds {
		out.I32(v)
	}
	out.I32(s.PirateDifficulty)
	out.U16(uint16(width))
	out.U16(uint16(height))
	out.U8(uint8(s.Grid.Players()))

	for y := range height {
		for x := range width {
			sq := s.Grid.SquareInfo(x, y)
			out.U16(uint16(s.Grid.TileIndex(x, y)))
			out.U8(uint8(sq.Type))
			out.I16(sq.Value)
		}
	}

	out.U16(uint16(len(suns)))
	for i, sun := range suns {
		if len(sun.Name) > 0xff {
			return errors.Validationf("sun %d name is %d bytes, limit 255", i, len(sun.Name))
		}
		out.Text(sun.Name)
		out.U16(uint16(sun.Center.X))
		out.U16(uint16(sun.Center.Y))
		out.U8(uint8(sun.Type))
	}

	out.Blob(s.Extension)

	if _, err := w.Write(out.Bytes()); err != nil {
		return errors.WrapInternal("failed to write save stream", err)
	}
	return nil
}

// Marshal is Encode into a fresh byte slice.
func Marshal(s *State) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, s); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decode reads a stream written by Encode. A wrong magic tag is reported as
// unrecognized_format and a wrong version as version_mismatch; both are
// final. Truncation is an internal error. catalog is attached to the
// rebuilt grid and may be nil.
func Decode(r io.Reader, catalog grid.TileCatalog) (*State, error) {
	in := NewReader(bufio.NewReader(r))

	magic := in.Raw(len(Magic))
	if in.Err() != nil {
		return nil, errors.UnrecognizedFormat("stream too short for a save header")
	}
	if string(magic) != Magic {
		return nil, errors.UnrecognizedFormat("stream is not a galaxy save")
	}
	if v := in.U16(); in.Err() == nil && v != Version {
		return nil, errors.VersionMismatchf("save version %d, supported %d", v, Version)
	}

	s := &State{Turn: in.I32()}
	for i := range s.VictoryThresholds {
		s.VictoryThresholds[i] = in.I32()
	}
	s.PirateDifficulty = in.I32()
	width, height := int(in.U16()), int(in.U16())
	players := int(in.U8())
	if in.Err() != nil {
		return nil, truncated("header", in.Err())
	}
	if width < 1 || width > grid.MaxSize || height < 1 || height > grid.MaxSize {
		return nil, errors.Validationf("saved map size %dx%d outside 1..%d", width, height, grid.MaxSize)
	}

	g := grid.New(width, height, players, catalog)
	for y := range height {
		for x := range width {
			tile := in.U16()
			kind := in.U8()
			value := in.I16()
			if in.Err() != nil {
				return nil, truncated("cells", in.Err())
			}
			g.SetTile(x, y, int(tile))
			g.SetSquareInfo(x, y, grid.NewSquareInfo(grid.SquareType(kind), value))
		}
	}

	count := int(in.U16())
	suns := make([]grid.Sun, 0, count)
	for range count {
		name := in.Text()
		x, y := int(in.U16()), int(in.U16())
		kind := grid.SunType(in.U8())
		if in.Err() != nil {
			return nil, truncated("suns", in.Err())
		}
		suns = append(suns, grid.Sun{Name: name, Center: coord.New(x, y), Type: kind})
	}
	g.SetSuns(suns)
	s.Grid = g

	s.Extension = in.Blob(MaxExtension)
	if err := in.Err(); err != nil {
		if err == errBlobTooLarge {
			return nil, err
		}
		return nil, truncated("extension", err)
	}
	return s, nil
}

// Unmarshal is Decode over a byte slice.
func Unmarshal(data []byte, catalog grid.TileCatalog) (*State, error) {
	return Decode(bytes.NewReader(data), catalog)
}

// Restore rebuilds the culture grid of a decoded state by replaying every
// live culture source. It must run before the state is simulated.
func Restore(s *State, sources []culture.Source) {
	culture.NewEngine(s.Grid).Rebuild(sources)
}

func truncated(section string, err error) error {
	return errors.WrapInternal("truncated save stream in "+section, err)
}
