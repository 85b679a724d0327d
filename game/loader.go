package game

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PieceRecord is one row of a puzzle file.
type PieceRecord struct {
	Kind  string `yaml:"piece"`
	Color string `yaml:"color"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	// FirstMove is "True" when a pawn has not moved yet.
	FirstMove string `yaml:"first_move"`
}

type puzzleFile struct {
	Pieces []PieceRecord `yaml:"pieces"`
}

// LoadRecords builds a board holding exactly the pieces described by records.
// Every bad record is reported; any error fails the whole load.
func LoadRecords(records []PieceRecord) (*Board, error) {
	b := NewBoard()
	var result error
	for i, r := range records {
		if err := place(b, r); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "record %d", i+1))
		}
	}
	if result != nil {
		return nil, result
	}
	return b, nil
}

func place(b *Board, r PieceRecord) error {
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return err
	}
	color, err := ParseColor(r.Color)
	if err != nil {
		return err
	}
	p := NewPiece(kind, color)
	if kind == Pawn && r.FirstMove != "True" {
		// A moved pawn has at least one move behind it; undo relies on the count.
		p.HasMoved = true
		p.Moves = 1
	}
	return b.SetPiece(Coord{Row: r.Row, Col: r.Col}, p)
}

// ReadCSV reads rows of piece,color,row,col,first_move. The first row is a
// header and is skipped.
func ReadCSV(r io.Reader) ([]PieceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read puzzle csv")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]PieceRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		rowNum, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid row", line)
		}
		colNum, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid col", line)
		}
		records = append(records, PieceRecord{
			Kind:      strings.TrimSpace(row[0]),
			Color:     strings.TrimSpace(row[1]),
			Row:       rowNum,
			Col:       colNum,
			FirstMove: strings.TrimSpace(row[4]),
		})
	}
	return records, nil
}

// ReadYAML reads a document with a top-level "pieces" list.
func ReadYAML(r io.Reader) ([]PieceRecord, error) {
	var f puzzleFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to decode puzzle yaml")
	}
	return f.Pieces, nil
}

// LoadFile reads a .csv, .yaml or .yml puzzle and builds its board.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open puzzle")
	}
	defer f.Close()

	var records []PieceRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = ReadCSV(f)
	case ".yaml", ".yml":
		records, err = ReadYAML(f)
	default:
		return nil, errors.Errorf("unsupported puzzle format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "puzzle %s", path)
	}

	b, err := LoadRecords(records)
	if err != nil {
		return nil, errors.Wrapf(err, "puzzle %s", path)
	}
	return b, nil
}
