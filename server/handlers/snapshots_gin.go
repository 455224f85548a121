package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pricebook/server/errors"
	"pricebook/server/services"
)

// SnapshotHandler serves stored price list snapshots.
type SnapshotHandler struct {
	snapshotService *services.SnapshotService
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(snapshotService *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// SnapshotListResponse is the snapshot history without items.
type SnapshotListResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
	Total     int                `json:"total"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Success bool   `json:"success"`
	UUID    string `json:"uuid"`
}

// HandleSnapshotsListGin returns the snapshot history, newest first.
// @Summary 단가표 스냅샷 목록
// @Description 저장된 단가표 스냅샷 목록을 최신순으로 반환합니다
// @Tags snapshots
// @Accept json
// @Produce json
// @Param limit query int false "최대 반환 개수 (기본: 전체)"
// @Success 200 {object} SnapshotListResponse "스냅샷 목록"
// @Failure 400 {object} ErrorResponse "잘못된 요청"
// @Failure 500 {object} ErrorResponse "내부 서버 오류"
// @Router /pricelist/snapshots [get]
func (h *SnapshotHandler) HandleSnapshotsListGin(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			SendJSONError(c, http.StatusBadRequest, "limit 파라미터는 0 이상의 정수여야 합니다")
			return
		}
		limit = parsed
	}

	snaps, err := h.snapshotService.ListSnapshots(limit)
	if err != nil {
		appErr := apperrors.WrapError(err, "스냅샷 목록을 불러오지 못했습니다")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	list := make([]SnapshotResponse, 0, len(snaps))
	for i := range snaps {
		list = append(list, snapshotResponse(&snaps[i]))
	}

	SendJSONResponse(c, http.StatusOK, SnapshotListResponse{
		Snapshots: list,
		Total:     len(list),
	})
}

// HandleSnapshotGetGin returns one snapshot with its items.
// @Summary 단가표 스냅샷 조회
// @Description UUID로 지정한 스냅샷과 품목 목록을 반환합니다
// @Tags snapshots
// @Accept json
// @Produce json
// @Param uuid path string true "스냅샷 UUID"
// @Success 200 {object} SnapshotResponse "스냅샷"
// @Failure 404 {object} ErrorResponse "스냅샷 없음"
// @Failure 500 {object} ErrorResponse "내부 서버 오류"
// @Router /pricelist/snapshots/{uuid} [get]
func (h *SnapshotHandler) HandleSnapshotGetGin(c *gin.Context) {
	snap, err := h.snapshotService.GetSnapshot(c.Param("uuid"))
	if err != nil {
		appErr := apperrors.WrapError(err, "스냅샷을 불러오지 못했습니다")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, snapshotResponse(snap))
}

// HandleSnapshotDeleteGin removes one snapshot.
// @Summary 단가표 스냅샷 삭제
// @Description UUID로 지정한 스냅샷과 품목을 삭제합니다
// @Tags snapshots
// @Accept json
// @Produce json
// @Param uuid path string true "스냅샷 UUID"
// @Success 200 {object} DeleteResponse "삭제 결과"
// @Failure 404 {object} ErrorResponse "스냅샷 없음"
// @Failure 500 {object} ErrorResponse "내부 서버 오류"
// @Router /pricelist/snapshots/{uuid} [delete]
func (h *SnapshotHandler) HandleSnapshotDeleteGin(c *gin.Context) {
	snapshotUUID := c.Param("uuid")

	if err := h.snapshotService.DeleteSnapshot(snapshotUUID); err != nil {
		appErr := apperrors.WrapError(err, "스냅샷을 삭제하지 못했습니다")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, DeleteResponse{
		Success: true,
		UUID:    snapshotUUID,
	})
}
