package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// Column names, in normalised form (see normalizeHeader).
const (
	colSymbol    = "symbol"
	colName      = "name"
	colSector    = "sector"
	colMarketCap = "marketcap"
)

// Accepted spellings for the two endpoints of an edge row.
var (
	sourceAliases = []string{"source", "from", "node1"}
	targetAliases = []string{"target", "to", "node2"}
)

// CSVSource reads companies and an optional edge list from CSV files.
// An empty EdgesPath means the dataset has no explicit edge list.
type CSVSource struct {
	NodesPath string
	EdgesPath string
}

// Load implements Source.
func (s CSVSource) Load(ctx context.Context) (*Dataset, error) {
	companies, err := readFile(s.NodesPath, ReadCompanies)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Companies: companies}

	if s.EdgesPath == "" {
		return ds, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	edges, err := readFile(s.EdgesPath, ReadEdges)
	if err != nil {
		return nil, err
	}
	ds.Edges = edges
	ds.HasEdgeList = true
	return ds, nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	out, err := read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// ReadCompanies parses a company table. The header must carry Symbol,
// Name, Sector and Market Cap columns in any order; extra columns are ignored.
// Zero data rows yields ErrEmptyInput.
func ReadCompanies(r io.Reader) ([]CompanyRecord, error) {
	reader := newReader(r)

	colIndex, err := readHeader(reader)
	if err != nil {
		return nil, err
	}
	cols, err := requireColumns(colIndex, colSymbol, colName, colSector, colMarketCap)
	if err != nil {
		return nil, err
	}

	var companies []CompanyRecord
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, graph.NewError("ingest").Record(line).Cause(wrapFormat(err)).Build()
		}
		if isBlank(record) {
			continue
		}

		rec := CompanyRecord{
			Symbol: field(record, cols[0]),
			Name:   field(record, cols[1]),
			Sector: field(record, cols[2]),
		}
		rec.MarketCap, err = ParseMarketCap(field(record, cols[3]))
		if err != nil {
			return nil, graph.NewError("ingest").
				Node(rec.Symbol).
				Record(line).
				Field("Market Cap").
				Cause(err).
				Build()
		}
		if err := validateCompany(rec, line); err != nil {
			return nil, err
		}
		companies = append(companies, rec)
	}

	if len(companies) == 0 {
		return nil, graph.ErrEmptyInput
	}
	return companies, nil
}

// ReadEdges parses a relationship list with Source/Target columns
// (also accepted: From/To, node_1/node_2). An empty list is valid.
func ReadEdges(r io.Reader) ([]EdgeRecord, error) {
	reader := newReader(r)

	colIndex, err := readHeader(reader)
	if err != nil {
		return nil, err
	}
	src, ok := lookupAny(colIndex, sourceAliases)
	if !ok {
		return nil, missingColumn("Source")
	}
	dst, ok := lookupAny(colIndex, targetAliases)
	if !ok {
		return nil, missingColumn("Target")
	}

	edges := make([]EdgeRecord, 0)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, graph.NewError("ingest").Record(line).Cause(wrapFormat(err)).Build()
		}
		if isBlank(record) {
			continue
		}

		rec := EdgeRecord{Source: field(record, src), Target: field(record, dst)}
		if err := validateEdge(rec, line); err != nil {
			return nil, err
		}
		edges = append(edges, rec)
	}
	return edges, nil
}

// ParseMarketCap accepts plain or comma-grouped numbers. Blank means 0.
func ParseMarketCap(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid market cap %q", graph.ErrDataFormat, raw)
	}
	return v, nil
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

func readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", graph.ErrDataFormat)
	}
	if err != nil {
		return nil, wrapFormat(err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		key := normalizeHeader(col)
		if _, dup := colIndex[key]; !dup {
			colIndex[key] = i
		}
	}
	return colIndex, nil
}

// normalizeHeader lowercases a column name and drops spaces, underscores
// and a leading byte-order mark, so "Market Cap", "market_cap" and
// "MarketCap" compare equal.
func normalizeHeader(col string) string {
	col = strings.TrimPrefix(col, "\ufeff")
	col = strings.ToLower(strings.TrimSpace(col))
	return strings.NewReplacer(" ", "", "_", "").Replace(col)
}

func requireColumns(colIndex map[string]int, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		pos, ok := colIndex[name]
		if !ok {
			return nil, missingColumn(name)
		}
		idx[i] = pos
	}
	return idx, nil
}

func lookupAny(colIndex map[string]int, aliases []string) (int, bool) {
	for _, a := range aliases {
		if pos, ok := colIndex[a]; ok {
			return pos, true
		}
	}
	return 0, false
}

func missingColumn(name string) error {
	return graph.NewError("ingest").
		Field(name).
		Cause(fmt.Errorf("%w: missing required column", graph.ErrDataFormat)).
		Build()
}

func field(record []string, idx int) string {
	if idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func wrapFormat(err error) error {
	if errors.Is(err, graph.ErrDataFormat) {
		return err
	}
	return fmt.Errorf("%w: %v", graph.ErrDataFormat, err)
}
