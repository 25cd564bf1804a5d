package app

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/showtrack/internal/store"
)

const titleBasics = "tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres\n" +
	"tt0903747\ttvSeries\tBreaking Bad\tBreaking Bad\t0\t2008\t2013\t49\tCrime,Drama,Thriller\n" +
	"tt0111161\tmovie\tThe Shawshank Redemption\tThe Shawshank Redemption\t0\t1994\t\\N\t142\tDrama\n" +
	"tt0795176\ttvMiniSeries\tPlanet Earth\tPlanet Earth\t0\t2006\t2006\t538\tDocumentary\n"

func openMemoryStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:", store.Options{})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestImportTitles(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		write func(t *testing.T, path string)
	}{
		{
			name: "plain",
			file: "title.basics.tsv",
			write: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte(titleBasics), 0o644); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
			},
		},
		{
			name: "gzip",
			file: "title.basics.tsv.gz",
			write: func(t *testing.T, path string) {
				f, err := os.Create(path)
				if err != nil {
					t.Fatalf("Create: %v", err)
				}
				gz := gzip.NewWriter(f)
				if _, err := gz.Write([]byte(titleBasics)); err != nil {
					t.Fatalf("gzip write: %v", err)
				}
				if err := gz.Close(); err != nil {
					t.Fatalf("gzip close: %v", err)
				}
				if err := f.Close(); err != nil {
					t.Fatalf("close: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			tt.write(t, path)
			st := openMemoryStore(t)
			ctx := context.Background()

			inserted, err := importTitles(ctx, st, path)
			if err != nil {
				t.Fatalf("importTitles: %v", err)
			}
			if inserted != 2 {
				t.Fatalf("inserted = %d, want 2", inserted)
			}

			again, err := importTitles(ctx, st, path)
			if err != nil {
				t.Fatalf("second importTitles: %v", err)
			}
			if again != 0 {
				t.Fatalf("second import inserted = %d, want 0", again)
			}

			shows, err := st.ListAll(ctx)
			if err != nil {
				t.Fatalf("ListAll: %v", err)
			}
			if len(shows) != 2 || shows[0].Title != "Breaking Bad" || shows[1].Title != "Planet Earth" {
				t.Fatalf("shows = %+v", shows)
			}
		})
	}
}

func TestImportTitles_MissingFile(t *testing.T) {
	st := openMemoryStore(t)
	if _, err := importTitles(context.Background(), st, filepath.Join(t.TempDir(), "absent.tsv")); err == nil {
		t.Fatalf("expected error for missing dataset")
	}
}
