package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"pricebook/database"
	"pricebook/importer"
	"pricebook/pricelist"
	apperrors "pricebook/server/errors"
	"pricebook/server/middleware"
)

// PriceListService runs the ingestion pipeline for uploaded price lists:
// upload gate, workbook decode, sheet scan, snapshot save.
type PriceListService struct {
	db       *database.PriceDB
	scanner  *pricelist.Scanner
	maxBytes int64
}

// NewPriceListService creates a new price list service. maxBytes <= 0 means
// the importer default.
func NewPriceListService(db *database.PriceDB, scanner *pricelist.Scanner, maxBytes int64) *PriceListService {
	if maxBytes <= 0 {
		maxBytes = importer.MaxUploadBytes
	}
	return &PriceListService{
		db:       db,
		scanner:  scanner,
		maxBytes: maxBytes,
	}
}

// ProcessUpload validates an uploaded spreadsheet, extracts its items and
// stores them as a new snapshot. The returned error is an AppError with the
// status the handler should answer with.
func (s *PriceListService) ProcessUpload(ctx context.Context, fileName string, size int64, contentType string, file io.Reader) (*database.Snapshot, error) {
	start := time.Now()
	reqID := middleware.GetRequestID(ctx)

	if err := importer.CheckUpload(fileName, size, contentType, s.maxBytes); err != nil {
		return nil, uploadError(err)
	}

	// The declared size is the client's claim; cap the actual read too.
	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read upload body", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, uploadError(fmt.Errorf("%w (크기: %d바이트 초과)", importer.ErrFileTooLarge, s.maxBytes))
	}

	wb, err := importer.DecodeWorkbook(bytes.NewReader(data))
	if err != nil {
		return nil, uploadError(err)
	}

	items, err := s.scanner.Scan(wb)
	if err != nil {
		return nil, uploadError(err)
	}

	snapshot := &database.Snapshot{
		FileName: fileName,
		FileDate: pricelist.FileDateLabel(fileName),
		Items:    items,
	}
	if err := s.db.SaveSnapshot(snapshot); err != nil {
		return nil, apperrors.NewInternalError("failed to save snapshot", err)
	}

	slog.Info("Price list processed",
		"file_name", fileName,
		"file_date", snapshot.FileDate,
		"items", snapshot.ItemCount,
		"sheets", wb.SheetCount(),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", reqID,
	)

	return snapshot, nil
}

// uploadError maps pipeline errors to AppErrors with the right status:
// an oversized file answers 413, everything else about the file's content
// or shape answers 400.
func uploadError(err error) *apperrors.AppError {
	var tooLarge *pricelist.SheetTooLargeError

	switch {
	case errors.Is(err, importer.ErrFileTooLarge):
		return apperrors.NewPayloadTooLargeError(err.Error(), err)
	case errors.Is(err, importer.ErrInvalidFileType),
		errors.Is(err, importer.ErrDecodeFailure),
		errors.Is(err, pricelist.ErrEmptyWorkbook),
		errors.Is(err, pricelist.ErrNoValidItems),
		errors.As(err, &tooLarge):
		return apperrors.NewValidationError(err.Error(), err)
	default:
		return apperrors.NewInternalError("upload processing failed", err)
	}
}
