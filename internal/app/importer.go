package app

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/five82/showtrack/internal/imdb"
	"github.com/five82/showtrack/internal/media"
)

// showImporter is the part of the store the dataset import writes to.
type showImporter interface {
	ImportShows(ctx context.Context, shows []media.Show) (int, error)
}

// importTitles loads the series of an IMDb title.basics dataset into the
// store. Files ending in .gz are decompressed on the fly. Shows already in
// the store keep their status.
func importTitles(ctx context.Context, dst showImporter, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return 0, fmt.Errorf("open dataset %s: %w", path, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	shows, err := imdb.ParseTitleBasics(r)
	if err != nil {
		return 0, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	inserted, err := dst.ImportShows(ctx, shows)
	if err != nil {
		return 0, fmt.Errorf("import dataset %s: %w", path, err)
	}
	log.Printf("level=info msg=\"dataset imported\" path=%s series=%d inserted=%d", path, len(shows), inserted)
	return inserted, nil
}
