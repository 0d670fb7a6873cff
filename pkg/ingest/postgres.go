package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// Default queries for the sp500 schema.
const (
	DefaultCompaniesQuery = `SELECT symbol, name, sector, market_cap FROM companies ORDER BY symbol`
	DefaultEdgesQuery     = `SELECT source, target FROM company_links`
)

// Querier is the subset of *pgxpool.Pool the source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource loads companies (and optionally an edge list) from PostgreSQL.
// CompaniesQuery must return symbol, name, sector, market_cap in that order;
// EdgesQuery must return source, target. An empty EdgesQuery means no edge list.
type PostgresSource struct {
	DSN            string
	CompaniesQuery string
	EdgesQuery     string

	// Querier overrides the pool built from DSN.
	Querier Querier
}

// OpenPool connects to the database and verifies it is reachable.
func OpenPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// A single batch read needs very few connections.
	config.MaxConns = 4
	config.MinConns = 0
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return pool, nil
}

// Load implements Source.
func (s PostgresSource) Load(ctx context.Context) (*Dataset, error) {
	q := s.Querier
	if q == nil {
		pool, err := OpenPool(ctx, s.DSN)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		q = pool
	}

	companiesQuery := s.CompaniesQuery
	if companiesQuery == "" {
		companiesQuery = DefaultCompaniesQuery
	}

	companies, err := queryCompanies(ctx, q, companiesQuery)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Companies: companies}

	if s.EdgesQuery == "" {
		return ds, nil
	}
	edges, err := queryEdges(ctx, q, s.EdgesQuery)
	if err != nil {
		return nil, err
	}
	ds.Edges = edges
	ds.HasEdgeList = true
	return ds, nil
}

func queryCompanies(ctx context.Context, q Querier, sql string) ([]CompanyRecord, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []CompanyRecord
	row := 0
	for rows.Next() {
		row++
		var (
			rec       CompanyRecord
			name      *string
			marketCap *float64
		)
		if err := rows.Scan(&rec.Symbol, &name, &rec.Sector, &marketCap); err != nil {
			return nil, graph.NewError("ingest").Record(row).Cause(wrapFormat(err)).Build()
		}
		if name != nil {
			rec.Name = *name
		}
		if marketCap != nil {
			rec.MarketCap = *marketCap
		}
		if err := validateCompany(rec, row); err != nil {
			return nil, err
		}
		companies = append(companies, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}
	if len(companies) == 0 {
		return nil, graph.ErrEmptyInput
	}
	return companies, nil
}

func queryEdges(ctx context.Context, q Querier, sql string) ([]EdgeRecord, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	edges := make([]EdgeRecord, 0)
	row := 0
	for rows.Next() {
		row++
		var rec EdgeRecord
		if err := rows.Scan(&rec.Source, &rec.Target); err != nil {
			return nil, graph.NewError("ingest").Record(row).Cause(wrapFormat(err)).Build()
		}
		if err := validateEdge(rec, row); err != nil {
			return nil, err
		}
		edges = append(edges, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edges: %w", err)
	}
	return edges, nil
}
