package iconset

import (
	"path/filepath"
	"testing"

	"github.com/Mavwarf/iconkit/internal/paths"
)

func TestIconName(t *testing.T) {
	tests := []struct {
		size   int
		retina bool
		want   string
	}{
		{16, false, "icon_16x16.png"},
		{16, true, "icon_16x16@2x.png"},
		{512, true, "icon_512x512@2x.png"},
		{1024, false, "icon_1024x1024.png"},
	}
	for _, tt := range tests {
		if got := IconName(tt.size, tt.retina); got != tt.want {
			t.Errorf("IconName(%d, %t) = %q, want %q", tt.size, tt.retina, got, tt.want)
		}
	}
}

func TestHasRetina(t *testing.T) {
	for _, s := range Sizes {
		want := s*2 <= 1024
		if got := HasRetina(s); got != want {
			t.Errorf("HasRetina(%d) = %t, want %t", s, got, want)
		}
	}
	if HasRetina(1024) {
		t.Error("1024 must not get an @2x rendition")
	}
	if !HasRetina(512) {
		t.Error("512 must get an @2x rendition")
	}
}

func TestSizesAscending(t *testing.T) {
	want := []int{16, 32, 64, 128, 256, 512, 1024}
	if len(Sizes) != len(want) {
		t.Fatalf("len(Sizes) = %d, want %d", len(Sizes), len(want))
	}
	for i := range want {
		if Sizes[i] != want[i] {
			t.Errorf("Sizes[%d] = %d, want %d", i, Sizes[i], want[i])
		}
	}
}

func TestPlan(t *testing.T) {
	l := paths.NewLayout(t.TempDir(), "")
	plan := Plan(l)

	// 7 standard + 6 @2x + app icon + 2 favicons
	if len(plan) != 16 {
		t.Fatalf("len(Plan) = %d, want 16", len(plan))
	}

	if plan[0].Name != "icon_16x16.png" || plan[0].Size != 16 {
		t.Errorf("plan[0] = %+v", plan[0])
	}
	if plan[1].Name != "icon_16x16@2x.png" || plan[1].Size != 32 {
		t.Errorf("plan[1] = %+v", plan[1])
	}

	byName := make(map[string]Target)
	for _, tg := range plan {
		byName[tg.Name] = tg
	}
	if _, ok := byName["icon_1024x1024@2x.png"]; ok {
		t.Error("plan must not contain icon_1024x1024@2x.png")
	}
	if tg := byName["icon_512x512@2x.png"]; tg.Size != 1024 || tg.Dir != l.IconsetDir {
		t.Errorf("icon_512x512@2x.png = %+v", tg)
	}
	if tg := byName[AppIconName]; tg.Size != 256 || tg.Dir != l.OutputDir {
		t.Errorf("app icon = %+v", tg)
	}
	if tg := byName[FaviconName]; tg.Size != 32 || tg.Dir != l.FaviconDir {
		t.Errorf("favicon = %+v", tg)
	}
	if tg := byName[TouchIconName]; tg.Size != 180 || tg.Dir != l.FaviconDir {
		t.Errorf("apple touch icon = %+v", tg)
	}

	last := plan[len(plan)-1]
	if last.Path() != filepath.Join(l.FaviconDir, TouchIconName) {
		t.Errorf("last target path = %q", last.Path())
	}
}

func TestKindExitCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{SourceMissing, 2},
		{DecodeFailed, 3},
		{ResizeFailed, 4},
		{WriteFailed, 5},
		{Kind(0), 1},
	}
	for _, tt := range tests {
		if got := tt.kind.ExitCode(); got != tt.want {
			t.Errorf("%v.ExitCode() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
