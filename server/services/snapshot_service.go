package services

import (
	"errors"
	"log/slog"
	"time"

	"pricebook/database"
	apperrors "pricebook/server/errors"
)

// SnapshotService serves stored price list snapshots.
type SnapshotService struct {
	db *database.PriceDB
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(db *database.PriceDB) *SnapshotService {
	return &SnapshotService{
		db: db,
	}
}

// CurrentSnapshot returns the latest snapshot with its items and whether it
// is older than one month.
func (ss *SnapshotService) CurrentSnapshot() (*database.Snapshot, bool, error) {
	snap, err := ss.db.GetLatestSnapshot()
	if err != nil {
		if errors.Is(err, database.ErrSnapshotNotFound) {
			return nil, false, apperrors.NewNotFoundError("등록된 단가표가 없습니다. 먼저 단가표를 업로드해 주세요", err)
		}
		return nil, false, apperrors.NewInternalError("failed to load latest snapshot", err)
	}
	return snap, snap.IsStale(time.Now()), nil
}

// ListSnapshots returns snapshot metadata, newest first. A limit of 0 or
// less returns everything.
func (ss *SnapshotService) ListSnapshots(limit int) ([]database.Snapshot, error) {
	snaps, err := ss.db.ListSnapshots(limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list snapshots", err)
	}
	return snaps, nil
}

// GetSnapshot returns one snapshot with its items.
func (ss *SnapshotService) GetSnapshot(snapshotUUID string) (*database.Snapshot, error) {
	snap, err := ss.db.GetSnapshotByUUID(snapshotUUID)
	if err != nil {
		if errors.Is(err, database.ErrSnapshotNotFound) {
			return nil, apperrors.NewNotFoundError("해당 단가표 스냅샷을 찾을 수 없습니다", err)
		}
		return nil, apperrors.NewInternalError("failed to load snapshot", err)
	}
	return snap, nil
}

// DeleteSnapshot removes a snapshot and its items.
func (ss *SnapshotService) DeleteSnapshot(snapshotUUID string) error {
	if err := ss.db.DeleteSnapshotByUUID(snapshotUUID); err != nil {
		if errors.Is(err, database.ErrSnapshotNotFound) {
			return apperrors.NewNotFoundError("해당 단가표 스냅샷을 찾을 수 없습니다", err)
		}
		return apperrors.NewInternalError("failed to delete snapshot", err)
	}

	slog.Info("Snapshot deleted", "uuid", snapshotUUID)
	return nil
}

// CurrentGroups returns per-group item counts for the latest snapshot,
// groups in scan order.
func (ss *SnapshotService) CurrentGroups() ([]database.GroupCount, error) {
	snap, err := ss.db.GetLatestSnapshot()
	if err != nil {
		if errors.Is(err, database.ErrSnapshotNotFound) {
			return nil, apperrors.NewNotFoundError("등록된 단가표가 없습니다. 먼저 단가표를 업로드해 주세요", err)
		}
		return nil, apperrors.NewInternalError("failed to load latest snapshot", err)
	}

	groups, err := ss.db.GetSnapshotGroups(snap.ID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load snapshot groups", err)
	}
	return groups, nil
}

// PurgeStale deletes snapshots older than one month and returns how many
// were removed.
func (ss *SnapshotService) PurgeStale() (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, -1, 0)

	purged, err := ss.db.PurgeStaleSnapshots(cutoff)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to purge stale snapshots", err)
	}

	if purged > 0 {
		slog.Info("Stale snapshots purged", "count", purged, "cutoff", cutoff.Format(time.RFC3339))
	}
	return purged, nil
}
