package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dd0wney/cluso-netsci/pkg/algorithms"
)

// WriteDistributionCSV writes P(k) as k,count,p_k rows.
func WriteDistributionCSV(w io.Writer, buckets []algorithms.DegreeBucket) (retErr error) {
	csvWriter := csv.NewWriter(w)
	defer func() {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil && retErr == nil {
			retErr = fmt.Errorf("CSV writer flush error: %w", err)
		}
	}()

	if err := csvWriter.Write([]string{"k", "count", "p_k"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, b := range buckets {
		record := []string{
			strconv.Itoa(b.Degree),
			strconv.Itoa(b.Count),
			strconv.FormatFloat(b.Probability, 'g', -1, 64),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

// WriteHistogramCSV writes density-normalised bins as low,high,count,density rows.
func WriteHistogramCSV(w io.Writer, bins []algorithms.HistogramBin) (retErr error) {
	csvWriter := csv.NewWriter(w)
	defer func() {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil && retErr == nil {
			retErr = fmt.Errorf("CSV writer flush error: %w", err)
		}
	}()

	if err := csvWriter.Write([]string{"low", "high", "count", "density"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, b := range bins {
		record := []string{
			strconv.FormatFloat(b.Low, 'g', -1, 64),
			strconv.FormatFloat(b.High, 'g', -1, 64),
			strconv.Itoa(b.Count),
			strconv.FormatFloat(b.Density, 'g', -1, 64),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}
