package pagination

import "testing"

type row struct {
	id string
}

func TestBuildCursorPageInfo(t *testing.T) {
	extract := func(r *row) string { return r.id }

	full := []*row{{"1"}, {"2"}, {"3"}}
	info := BuildCursorPageInfo(full, 2, extract)
	if info == nil {
		t.Fatal("nil page info")
	}
	if !info.HasMore {
		t.Fatal("expected more pages")
	}
	if info.NextPageToken != "2" {
		t.Fatalf("next token = %q, want cursor of last item on page", info.NextPageToken)
	}

	last := []*row{{"1"}}
	info = BuildCursorPageInfo(last, 2, extract)
	if info == nil {
		t.Fatal("nil page info")
	}
	if info.HasMore {
		t.Fatal("short page should be final")
	}

	info = BuildCursorPageInfo(nil, 2, extract)
	if info == nil || info.HasMore {
		t.Fatalf("empty page info = %+v", info)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	token, err := EncodeCursor(Cursor{ID: "42", CreatedAt: "2026-01-02T03:04:05Z"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cursor, err := DecodeCursor(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cursor.ID != "42" || cursor.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Fatalf("cursor = %+v", cursor)
	}

	if _, err := DecodeCursor("not-base64!!!"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
