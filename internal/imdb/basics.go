// Package imdb reads the IMDb title.basics dataset.
package imdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/five82/showtrack/internal/media"
)

// seriesTypes are the titleType values imported as shows.
var seriesTypes = map[string]struct{}{
	"tvSeries":     {},
	"tvMiniSeries": {},
}

// ParseTitleBasics reads a title.basics.tsv stream and returns its series as
// shows with status Todo. Rows of other title types are skipped.
func ParseTitleBasics(r io.Reader) ([]media.Show, error) {
	// The dataset is tab separated without quoting, and titles contain bare
	// quote characters, so records are split by hand rather than with encoding/csv.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, nil
	}
	header := strings.Split(scanner.Text(), "\t")
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"tconst", "titleType", "primaryTitle"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	yearCol, hasYear := cols["startYear"]

	var shows []media.Show
	for scanner.Scan() {
		record := strings.Split(scanner.Text(), "\t")
		if _, ok := seriesTypes[field(record, cols["titleType"])]; !ok {
			continue
		}
		show := media.Show{
			IMDBID: field(record, cols["tconst"]),
			Title:  field(record, cols["primaryTitle"]),
		}
		if show.IMDBID == "" || show.Title == "" {
			continue
		}
		if hasYear {
			// \N marks a missing value in the dataset.
			if year, err := strconv.Atoi(field(record, yearCol)); err == nil {
				show.Year = year
			}
		}
		shows = append(shows, show)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return shows, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
