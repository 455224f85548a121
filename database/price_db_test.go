package database

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"pricebook/pricelist"
)

func newTestPriceDB(t *testing.T) *PriceDB {
	t.Helper()

	db, err := NewPriceDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create price DB: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func testItems() []pricelist.Item {
	return []pricelist.Item{
		{Country: "BR", Name: "산토스 NY2", Price: 12000, PriceGroup: "(1)"},
		{Country: "BR", Name: "세하도 파인컵", Price: 13500, PriceGroup: "(1)"},
		{Country: "CO", Name: "수프리모", Price: 15500, PriceGroup: "(2)"},
	}
}

func TestPriceDB_SaveAndGetLatestSnapshot(t *testing.T) {
	db := newTestPriceDB(t)

	snap := &Snapshot{
		FileName: "단가표_202508.xlsx",
		FileDate: "2025년 8월 단가표",
		Items:    testItems(),
	}
	if err := db.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot returned error: %v", err)
	}

	if snap.ID == 0 {
		t.Error("SaveSnapshot did not fill ID")
	}
	if snap.UUID == "" {
		t.Error("SaveSnapshot did not fill UUID")
	}
	if snap.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", snap.ItemCount)
	}
	if snap.CreatedAt.IsZero() {
		t.Error("SaveSnapshot did not fill CreatedAt")
	}

	got, err := db.GetLatestSnapshot()
	if err != nil {
		t.Fatalf("GetLatestSnapshot returned error: %v", err)
	}
	if got.UUID != snap.UUID {
		t.Errorf("latest UUID = %q, want %q", got.UUID, snap.UUID)
	}
	if got.FileName != snap.FileName || got.FileDate != snap.FileDate {
		t.Errorf("latest metadata = %q/%q, want %q/%q", got.FileName, got.FileDate, snap.FileName, snap.FileDate)
	}
	if !got.CreatedAt.Equal(snap.CreatedAt) {
		t.Errorf("latest CreatedAt = %v, want %v", got.CreatedAt, snap.CreatedAt)
	}
	if !reflect.DeepEqual(got.Items, testItems()) {
		t.Errorf("latest items = %+v, want scan order preserved", got.Items)
	}
}

func TestPriceDB_GetLatestSnapshotEmpty(t *testing.T) {
	db := newTestPriceDB(t)

	if _, err := db.GetLatestSnapshot(); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("GetLatestSnapshot on empty DB = %v, want ErrSnapshotNotFound", err)
	}
}

func TestPriceDB_GetLatestSnapshotPicksNewest(t *testing.T) {
	db := newTestPriceDB(t)

	first := &Snapshot{FileName: "구버전.xlsx", FileDate: "구버전.xlsx", Items: testItems()}
	if err := db.SaveSnapshot(first); err != nil {
		t.Fatalf("SaveSnapshot(first): %v", err)
	}
	second := &Snapshot{FileName: "단가표_202508.xlsx", FileDate: "2025년 8월 단가표", Items: testItems()[:1]}
	if err := db.SaveSnapshot(second); err != nil {
		t.Fatalf("SaveSnapshot(second): %v", err)
	}

	got, err := db.GetLatestSnapshot()
	if err != nil {
		t.Fatalf("GetLatestSnapshot returned error: %v", err)
	}
	if got.UUID != second.UUID {
		t.Errorf("latest UUID = %q, want newest %q", got.UUID, second.UUID)
	}
	if got.ItemCount != 1 {
		t.Errorf("latest ItemCount = %d, want 1", got.ItemCount)
	}
}

func TestPriceDB_GetSnapshotByUUID(t *testing.T) {
	db := newTestPriceDB(t)

	snap := &Snapshot{FileName: "단가표_202507.xlsx", FileDate: "2025년 7월 단가표", Items: testItems()}
	if err := db.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := db.GetSnapshotByUUID(snap.UUID)
	if err != nil {
		t.Fatalf("GetSnapshotByUUID returned error: %v", err)
	}
	if got.ID != snap.ID {
		t.Errorf("snapshot ID = %d, want %d", got.ID, snap.ID)
	}
	if len(got.Items) != 3 {
		t.Errorf("snapshot has %d items, want 3", len(got.Items))
	}

	if _, err := db.GetSnapshotByUUID("00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("GetSnapshotByUUID(unknown) = %v, want ErrSnapshotNotFound", err)
	}
}

func TestPriceDB_ListSnapshots(t *testing.T) {
	db := newTestPriceDB(t)

	var uuids []string
	for i := 0; i < 3; i++ {
		snap := &Snapshot{FileName: "단가표.xlsx", FileDate: "단가표.xlsx", Items: testItems()[:1]}
		if err := db.SaveSnapshot(snap); err != nil {
			t.Fatalf("SaveSnapshot: %v", err)
		}
		uuids = append(uuids, snap.UUID)
	}

	snaps, err := db.ListSnapshots(0)
	if err != nil {
		t.Fatalf("ListSnapshots returned error: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("ListSnapshots returned %d snapshots, want 3", len(snaps))
	}
	// Newest first.
	if snaps[0].UUID != uuids[2] || snaps[2].UUID != uuids[0] {
		t.Errorf("ListSnapshots order = %q..%q, want newest first", snaps[0].UUID, snaps[2].UUID)
	}
	// Summaries only, without item payloads.
	if snaps[0].Items != nil {
		t.Errorf("ListSnapshots loaded %d items, want none", len(snaps[0].Items))
	}
	if snaps[0].ItemCount != 1 {
		t.Errorf("ItemCount = %d, want 1", snaps[0].ItemCount)
	}

	limited, err := db.ListSnapshots(2)
	if err != nil {
		t.Fatalf("ListSnapshots(2) returned error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListSnapshots(2) returned %d snapshots, want 2", len(limited))
	}
}

func TestPriceDB_DeleteSnapshotByUUID(t *testing.T) {
	db := newTestPriceDB(t)

	snap := &Snapshot{FileName: "단가표.xlsx", FileDate: "단가표.xlsx", Items: testItems()}
	if err := db.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	if err := db.DeleteSnapshotByUUID(snap.UUID); err != nil {
		t.Fatalf("DeleteSnapshotByUUID returned error: %v", err)
	}

	if _, err := db.GetSnapshotByUUID(snap.UUID); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("snapshot still readable after delete: %v", err)
	}

	// Item rows must cascade with the snapshot.
	var itemRows int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM price_items`).Scan(&itemRows); err != nil {
		t.Fatalf("failed to count items: %v", err)
	}
	if itemRows != 0 {
		t.Errorf("price_items still holds %d rows after cascade delete", itemRows)
	}

	if err := db.DeleteSnapshotByUUID(snap.UUID); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("second delete = %v, want ErrSnapshotNotFound", err)
	}
}

func TestPriceDB_PurgeStaleSnapshots(t *testing.T) {
	db := newTestPriceDB(t)
	now := time.Now().UTC()

	stale := &Snapshot{
		FileName:  "단가표_202506.xlsx",
		FileDate:  "2025년 6월 단가표",
		CreatedAt: now.AddDate(0, -2, 0),
		Items:     testItems()[:1],
	}
	if err := db.SaveSnapshot(stale); err != nil {
		t.Fatalf("SaveSnapshot(stale): %v", err)
	}
	fresh := &Snapshot{
		FileName: "단가표_202508.xlsx",
		FileDate: "2025년 8월 단가표",
		Items:    testItems(),
	}
	if err := db.SaveSnapshot(fresh); err != nil {
		t.Fatalf("SaveSnapshot(fresh): %v", err)
	}

	purged, err := db.PurgeStaleSnapshots(now.AddDate(0, -1, 0))
	if err != nil {
		t.Fatalf("PurgeStaleSnapshots returned error: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged %d snapshots, want 1", purged)
	}

	snaps, err := db.ListSnapshots(0)
	if err != nil {
		t.Fatalf("ListSnapshots returned error: %v", err)
	}
	if len(snaps) != 1 || snaps[0].UUID != fresh.UUID {
		t.Errorf("remaining snapshots = %+v, want only the fresh one", snaps)
	}
}

func TestPriceDB_GetSnapshotGroups(t *testing.T) {
	db := newTestPriceDB(t)

	snap := &Snapshot{FileName: "단가표_202508.xlsx", Items: testItems()}
	if err := db.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot returned error: %v", err)
	}

	groups, err := db.GetSnapshotGroups(snap.ID)
	if err != nil {
		t.Fatalf("GetSnapshotGroups returned error: %v", err)
	}

	want := []GroupCount{
		{PriceGroup: "(1)", ItemCount: 2},
		{PriceGroup: "(2)", ItemCount: 1},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("GetSnapshotGroups = %+v, want %+v", groups, want)
	}
}

func TestSnapshotIsStale(t *testing.T) {
	now := time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)

	fresh := &Snapshot{CreatedAt: now.AddDate(0, 0, -5)}
	if fresh.IsStale(now) {
		t.Error("five-day-old snapshot reported stale")
	}

	old := &Snapshot{CreatedAt: now.AddDate(0, -2, 0)}
	if !old.IsStale(now) {
		t.Error("two-month-old snapshot not reported stale")
	}
}
