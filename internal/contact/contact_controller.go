package contact

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

// ContactController handles API requests for the contact register.
type ContactController struct {
	repo ContactRepository
}

// NewContactController creates a new ContactController.
func NewContactController(repo ContactRepository) *ContactController {
	return &ContactController{repo: repo}
}

// --- DTOs ---

type UpsertContactRequest struct {
	ManagerID   string `json:"manager_id" binding:"required"`
	ManagerNick string `json:"manager_nick" binding:"omitempty,max=100"`
	PlayerName  string `json:"player_name" binding:"omitempty,max=200"`
	PlayerID    string `json:"player_id" binding:"omitempty,max=50"`
	Status      string `json:"status" binding:"omitempty"`
	Notes       string `json:"notes" binding:"omitempty,max=5000"`
	ContactDate string `json:"contact_date" binding:"omitempty"` // YYYY-MM-DD
}

// toContact validates the request semantics and builds the row to persist.
func (req *UpsertContactRequest) toContact(scoutNick string) (*Contact, error) {
	managerID := strings.TrimSpace(req.ManagerID)
	if managerID == "" {
		return nil, apperrors.NewValidation("manager_id", "manager id is required")
	}

	status := req.Status
	if status == "" {
		status = StatusNewToContact
	}
	if !ValidStatus(status) {
		return nil, apperrors.NewValidation("status", "unknown contact status: "+status)
	}

	contactDate := time.Now().Truncate(24 * time.Hour)
	if req.ContactDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ContactDate)
		if err != nil {
			return nil, apperrors.NewValidation("contact_date", "expected date in YYYY-MM-DD format")
		}
		contactDate = parsed
	}

	return &Contact{
		ScoutNick:   scoutNick,
		ManagerID:   managerID,
		ManagerNick: req.ManagerNick,
		PlayerName:  req.PlayerName,
		PlayerID:    req.PlayerID,
		Status:      status,
		Notes:       req.Notes,
		ContactDate: contactDate,
	}, nil
}

// --- Handlers ---

// UpsertContact godoc
// @Summary Create or update a contact
// @Description Inserts a contact for the calling scout, or updates all fields of the existing row with the same manager id
// @Tags Contacts
// @Accept json
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param contact body UpsertContactRequest true "Contact upsert request"
// @Success 200 {object} responses.SuccessResponse{data=Contact}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /contacts [post]
func (cc *ContactController) UpsertContact(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	var req UpsertContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	contact, err := req.toContact(scoutNick)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := cc.repo.Upsert(contact); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to save contact", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact saved", contact)
}

// ListContacts godoc
// @Summary List the scout's contacts
// @Description Returns the calling scout's contact register ordered by contact date descending
// @Tags Contacts
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param page query int false "Page number (pagination disabled when limit omitted)"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse{data=[]Contact}
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /contacts [get]
func (cc *ContactController) ListContacts(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	contacts, total, err := cc.repo.GetAll(scoutNick, page, limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load contacts", nil)
		return
	}

	if limit > 0 {
		responses.SendPaginated(c, http.StatusOK, "", contacts, total, page, limit)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", contacts)
}

// DeleteContact godoc
// @Summary Delete a contact
// @Description Removes the contact with the given manager id; deleting an absent id is a no-op
// @Tags Contacts
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param manager_id path string true "Manager id"
// @Success 200 {object} responses.SuccessResponse
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /contacts/{manager_id} [delete]
func (cc *ContactController) DeleteContact(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	managerID := c.Param("manager_id")
	if err := cc.repo.Delete(scoutNick, managerID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete contact", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Contact deleted", gin.H{"manager_id": managerID})
}
