package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pricebook/database"
	"pricebook/pricelist"
	apperrors "pricebook/server/errors"
	"pricebook/server/services"
)

// PriceListHandler serves price list uploads and the current price list.
type PriceListHandler struct {
	priceListService *services.PriceListService
	snapshotService  *services.SnapshotService
	allowedGroups    []string
}

// NewPriceListHandler creates a new price list handler. allowedGroups is
// the sheet allow-list the scanner runs with.
func NewPriceListHandler(
	priceListService *services.PriceListService,
	snapshotService *services.SnapshotService,
	allowedGroups []string,
) *PriceListHandler {
	return &PriceListHandler{
		priceListService: priceListService,
		snapshotService:  snapshotService,
		allowedGroups:    allowedGroups,
	}
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// SnapshotResponse is a stored snapshot. Items are present when the
// endpoint loads them.
type SnapshotResponse struct {
	UUID      string           `json:"uuid"`
	FileName  string           `json:"file_name"`
	FileDate  string           `json:"file_date"`
	ItemCount int              `json:"item_count"`
	CreatedAt string           `json:"created_at"`
	Items     []pricelist.Item `json:"items,omitempty"`
}

// CurrentResponse is the latest snapshot with its staleness flag.
type CurrentResponse struct {
	SnapshotResponse
	Stale bool `json:"stale"`
}

// GroupsResponse lists the accepted sheet tags and, when a snapshot
// exists, per-group item counts in the current snapshot.
type GroupsResponse struct {
	Groups  []string              `json:"groups"`
	Current []database.GroupCount `json:"current,omitempty"`
}

func snapshotResponse(snap *database.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		UUID:      snap.UUID,
		FileName:  snap.FileName,
		FileDate:  snap.FileDate,
		ItemCount: snap.ItemCount,
		CreatedAt: snap.CreatedAt.Format(time.RFC3339),
		Items:     snap.Items,
	}
}

// HandleUploadGin accepts a price list upload.
// @Summary 단가표 업로드
// @Description 엑셀 단가표(.xlsx)를 업로드하여 새 스냅샷으로 저장합니다
// @Tags pricelist
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "단가표 엑셀 파일"
// @Success 200 {object} SnapshotResponse "저장된 스냅샷"
// @Failure 400 {object} ErrorResponse "잘못된 파일 또는 형식"
// @Failure 413 {object} ErrorResponse "파일 크기 초과"
// @Failure 429 {object} ErrorResponse "업로드 요청 한도 초과"
// @Failure 500 {object} ErrorResponse "내부 서버 오류"
// @Router /pricelist/upload [post]
func (h *PriceListHandler) HandleUploadGin(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "업로드할 파일(file 필드)이 필요합니다")
		return
	}
	defer file.Close()

	snap, err := h.priceListService.ProcessUpload(
		c.Request.Context(),
		header.Filename,
		header.Size,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		appErr := apperrors.WrapError(err, "단가표 업로드에 실패했습니다")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, snapshotResponse(snap))
}

// HandleCurrentGin returns the latest price list.
// @Summary 현재 단가표 조회
// @Description 가장 최근에 업로드된 단가표와 품목 목록을 반환합니다
// @Tags pricelist
// @Accept json
// @Produce json
// @Success 200 {object} CurrentResponse "현재 단가표"
// @Failure 404 {object} ErrorResponse "등록된 단가표 없음"
// @Failure 500 {object} ErrorResponse "내부 서버 오류"
// @Router /pricelist/current [get]
func (h *PriceListHandler) HandleCurrentGin(c *gin.Context) {
	snap, stale, err := h.snapshotService.CurrentSnapshot()
	if err != nil {
		appErr := apperrors.WrapError(err, "현재 단가표를 불러오지 못했습니다")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, CurrentResponse{
		SnapshotResponse: snapshotResponse(snap),
		Stale:            stale,
	})
}

// HandleGroupsGin returns the price group tags.
// @Summary 단가 그룹 조회
// @Description 허용된 단가 그룹 시트 이름과 현재 단가표의 그룹별 품목 수를 반환합니다
// @Tags pricelist
// @Accept json
// @Produce json
// @Success 200 {object} GroupsResponse "단가 그룹 정보"
// @Failure 500 {object} ErrorResponse "내부 서버 오류"
// @Router /pricelist/groups [get]
func (h *PriceListHandler) HandleGroupsGin(c *gin.Context) {
	resp := GroupsResponse{Groups: h.allowedGroups}

	current, err := h.snapshotService.CurrentGroups()
	if err != nil {
		// With no snapshot yet the configured groups still answer
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.StatusCode() != http.StatusNotFound {
			appErr = apperrors.WrapError(err, "단가 그룹 정보를 불러오지 못했습니다")
			SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
			return
		}
	} else {
		resp.Current = current
	}

	SendJSONResponse(c, http.StatusOK, resp)
}
