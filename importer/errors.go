package importer

import "errors"

// Upload gate and decode failures. Messages are user-facing Korean and are
// relayed to the client unchanged.
var (
	// ErrInvalidFileType rejects uploads that are not an Excel 단가표 by
	// extension or declared content type.
	ErrInvalidFileType = errors.New("지원하지 않는 파일 형식입니다. 엑셀 단가표(.xlsx) 파일을 올려 주세요")

	// ErrFileTooLarge rejects uploads over the size ceiling.
	ErrFileTooLarge = errors.New("파일이 너무 큽니다. 10MB 이하의 단가표만 업로드할 수 있습니다")

	// ErrDecodeFailure reports a file that passed the gate but could not be
	// read as a spreadsheet.
	ErrDecodeFailure = errors.New("엑셀 파일을 읽지 못했습니다. 파일이 손상되었거나 형식이 다릅니다")
)
