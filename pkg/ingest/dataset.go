// Package ingest loads company datasets from CSV files or PostgreSQL.
package ingest

import (
	"context"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
	"github.com/dd0wney/cluso-netsci/pkg/validation"
)

// CompanyRecord is one row of the company table.
type CompanyRecord struct {
	Symbol    string  `json:"symbol" validate:"required,max=16,ticker"`
	Name      string  `json:"name" validate:"max=256,utf8text"`
	Sector    string  `json:"sector" validate:"required,max=128,utf8text"`
	MarketCap float64 `json:"market_cap" validate:"gte=0"`
}

// EdgeRecord is one row of an explicit relationship list.
type EdgeRecord struct {
	Source string `json:"source" validate:"required,max=16,ticker"`
	Target string `json:"target" validate:"required,max=16,ticker"`
}

// Dataset is everything the graph builder needs. HasEdgeList distinguishes
// an explicit but empty edge list from no edge list at all.
type Dataset struct {
	Companies   []CompanyRecord
	Edges       []EdgeRecord
	HasEdgeList bool
}

// Source produces a Dataset.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Company converts the record into the graph node payload.
func (r CompanyRecord) Company() graph.Company {
	return graph.Company{
		Symbol:    r.Symbol,
		Name:      r.Name,
		Sector:    r.Sector,
		MarketCap: r.MarketCap,
	}
}

// validateCompany checks struct tags and reports failures as data-format
// errors tagged with the record position.
func validateCompany(rec CompanyRecord, line int) error {
	if err := validation.Struct(rec); err != nil {
		return graph.NewError("ingest").
			Node(rec.Symbol).
			Record(line).
			Cause(wrapFormat(err)).
			Build()
	}
	return nil
}

func validateEdge(rec EdgeRecord, line int) error {
	if err := validation.Struct(rec); err != nil {
		return graph.NewError("ingest").
			Edge(rec.Source, rec.Target).
			Record(line).
			Cause(wrapFormat(err)).
			Build()
	}
	return nil
}
