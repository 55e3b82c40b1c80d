package stamp

import (
	"math/rand"
	"regexp"
	"sort"
	"testing"
	"time"
)

var (
	folderRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_\d{6}$`)
	isoRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\+08:00$`)
)

func TestFolderName(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"scenario time", time.Date(2025, 5, 12, 9, 3, 7, 0, time.UTC), "2025-05-12_090307"},
		{"end of year", time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), "2024-12-31_235959"},
		{"midnight", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2026-01-01_000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FolderName(tt.now); got != tt.want {
				t.Errorf("FolderName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestISODate(t *testing.T) {
	now := time.Date(2025, 5, 12, 9, 3, 7, 0, time.UTC)
	if got, want := ISODate(now), "2025-05-12T09:03:07+08:00"; got != want {
		t.Errorf("ISODate() = %q, want %q", got, want)
	}
}

func TestISODateIgnoresLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	now := time.Date(2025, 5, 12, 9, 3, 7, 0, ny)
	if got, want := ISODate(now), "2025-05-12T09:03:07+08:00"; got != want {
		t.Errorf("ISODate() = %q, want %q", got, want)
	}
}

func TestFormatsOverRandomTimes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC).Unix()

	var times []time.Time
	for i := 0; i < 500; i++ {
		times = append(times, time.Unix(start+rng.Int63n(end-start), 0).UTC())
	}

	for _, now := range times {
		if name := FolderName(now); !folderRe.MatchString(name) {
			t.Fatalf("FolderName(%v) = %q does not match %s", now, name, folderRe)
		}
		if iso := ISODate(now); !isoRe.MatchString(iso) {
			t.Fatalf("ISODate(%v) = %q does not match %s", now, iso, isoRe)
		}
	}

	// Lexicographic order of folder names follows creation order.
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	for i := 1; i < len(times); i++ {
		prev, cur := FolderName(times[i-1]), FolderName(times[i])
		if prev > cur {
			t.Fatalf("folder names out of order: %q before %q", prev, cur)
		}
	}
}

func TestParseFolderName(t *testing.T) {
	now := time.Date(2025, 5, 12, 9, 3, 7, 0, time.Local)

	got, ok := ParseFolderName(FolderName(now))
	if !ok {
		t.Fatal("ParseFolderName() rejected a generated name")
	}
	if !got.Equal(now) {
		t.Errorf("ParseFolderName() = %v, want %v", got, now)
	}

	for _, bad := range []string{"", "hello-world", "2025-05-12", "2025-05-12_0903", "2025-13-12_090307", "2025-05-12T090307"} {
		if _, ok := ParseFolderName(bad); ok {
			t.Errorf("ParseFolderName(%q) accepted an invalid name", bad)
		}
	}
}
