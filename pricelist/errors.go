package pricelist

import (
	"errors"
	"fmt"
)

// Scan failures are aggregate only: individual bad rows are dropped
// silently, and the scanner reports an error just when the workbook as a
// whole is unusable. Messages are user-facing Korean; handlers relay them
// verbatim.
var (
	// ErrEmptyWorkbook reports a workbook with no sheets at all.
	ErrEmptyWorkbook = errors.New("단가표 파일에 시트가 없습니다")

	// ErrNoValidItems reports a scan that finished without producing a
	// single valid item.
	ErrNoValidItems = errors.New("단가표에서 유효한 품목을 찾지 못했습니다. 시트 이름과 품명/단가 열을 확인해 주세요")
)

// SheetTooLargeError aborts a scan whose permitted sheet exceeds the row
// cap. The whole scan fails, not just the sheet.
type SheetTooLargeError struct {
	Sheet string
	Rows  int
	Limit int
}

func (e *SheetTooLargeError) Error() string {
	return fmt.Sprintf("시트 %q의 행 수(%d)가 허용 한도(%d)를 초과했습니다", e.Sheet, e.Rows, e.Limit)
}
