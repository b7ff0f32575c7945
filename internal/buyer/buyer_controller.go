package buyer

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkruszek/scout-assistant/internal/common"
	"github.com/pkruszek/scout-assistant/pkg/apperrors"
	"github.com/pkruszek/scout-assistant/pkg/responses"
	"github.com/pkruszek/scout-assistant/pkg/validator"
)

// BuyerController handles API requests for the buyer register.
type BuyerController struct {
	repo BuyerRepository
}

func NewBuyerController(repo BuyerRepository) *BuyerController {
	return &BuyerController{repo: repo}
}

type UpsertBuyerRequest struct {
	ManagerID   string `json:"manager_id" binding:"required"`
	ManagerNick string `json:"manager_nick" binding:"omitempty,max=100"`
	Budget      string `json:"budget" binding:"omitempty,max=100"`
	Spots       string `json:"spots" binding:"omitempty,max=100"`
	Status      string `json:"status" binding:"omitempty"`
	Notes       string `json:"notes" binding:"omitempty,max=5000"`
	ContactDate string `json:"contact_date" binding:"omitempty"` // YYYY-MM-DD
}

func (req *UpsertBuyerRequest) toBuyer(scoutNick string) (*Buyer, error) {
	managerID := strings.TrimSpace(req.ManagerID)
	if managerID == "" {
		return nil, apperrors.NewValidation("manager_id", "manager id is required")
	}

	status := req.Status
	if status == "" {
		status = StatusNew
	}
	if !ValidStatus(status) {
		return nil, apperrors.NewValidation("status", "unknown buyer status: "+status)
	}

	contactDate := time.Now().Truncate(24 * time.Hour)
	if req.ContactDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ContactDate)
		if err != nil {
			return nil, apperrors.NewValidation("contact_date", "expected date in YYYY-MM-DD format")
		}
		contactDate = parsed
	}

	return &Buyer{
		ScoutNick:   scoutNick,
		ManagerID:   managerID,
		ManagerNick: req.ManagerNick,
		Budget:      req.Budget,
		Spots:       req.Spots,
		Status:      status,
		Notes:       req.Notes,
		ContactDate: contactDate,
	}, nil
}

// UpsertBuyer godoc
// @Summary Create or update a buyer
// @Description Inserts a buyer for the calling scout, or updates all fields of the existing row with the same manager id
// @Tags Buyers
// @Accept json
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param buyer body UpsertBuyerRequest true "Buyer upsert request"
// @Success 200 {object} responses.SuccessResponse{data=Buyer}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /buyers [post]
func (bc *BuyerController) UpsertBuyer(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	var req UpsertBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	buyer, err := req.toBuyer(scoutNick)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := bc.repo.Upsert(buyer); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to save buyer", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Buyer saved", buyer)
}

// ListBuyers godoc
// @Summary List the scout's buyers
// @Description Returns the calling scout's buyer register ordered by contact date descending
// @Tags Buyers
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse{data=[]Buyer}
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /buyers [get]
func (bc *BuyerController) ListBuyers(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	buyers, total, err := bc.repo.GetAll(scoutNick, page, limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load buyers", nil)
		return
	}

	if limit > 0 {
		responses.SendPaginated(c, http.StatusOK, "", buyers, total, page, limit)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", buyers)
}

// DeleteBuyer godoc
// @Summary Delete a buyer
// @Description Removes the buyer with the given manager id; deleting an absent id is a no-op
// @Tags Buyers
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param manager_id path string true "Manager id"
// @Success 200 {object} responses.SuccessResponse
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /buyers/{manager_id} [delete]
func (bc *BuyerController) DeleteBuyer(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	managerID := c.Param("manager_id")
	if err := bc.repo.Delete(scoutNick, managerID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete buyer", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Buyer deleted", gin.H{"manager_id": managerID})
}
