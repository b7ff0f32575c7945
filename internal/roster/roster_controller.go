package roster

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pkruszek/scout-assistant/config"
	"github.com/pkruszek/scout-assistant/internal/common"
	"github.com/pkruszek/scout-assistant/internal/contact"
	"github.com/pkruszek/scout-assistant/pkg/apperrors"
	"github.com/pkruszek/scout-assistant/pkg/responses"
)

// RosterController handles roster import and the reconciled roster view.
type RosterController struct {
	repo        RosterRepository
	contactRepo contact.ContactRepository
	config      *config.Config
}

// NewRosterController creates a new RosterController. The contact repository
// is needed for the reconciled view and the prefill lookup.
func NewRosterController(repo RosterRepository, contactRepo contact.ContactRepository, cfg *config.Config) *RosterController {
	return &RosterController{
		repo:        repo,
		contactRepo: contactRepo,
		config:      cfg,
	}
}

// PrefillResponse carries the contact-form values derived from one roster row.
type PrefillResponse struct {
	ManagerID   string `json:"manager_id"`
	ManagerNick string `json:"manager_nick"`
	PlayerName  string `json:"player_name"`
	PlayerID    string `json:"player_id"`
}

// ImportRoster godoc
// @Summary Import a roster file
// @Description Parses an uploaded .csv (semicolon-separated) or .xlsx roster and replaces the scout's stored roster with it. On parse failure the previous roster is kept.
// @Tags Roster
// @Accept multipart/form-data
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param file formData file true "Roster file (.csv or .xlsx)"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Import error"
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /roster/import [post]
func (rc *RosterController) ImportRoster(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "A roster file is required in the 'file' form field", nil)
		return
	}

	maxBytes := rc.config.Import.MaxUploadMB * 1024 * 1024
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		responses.SendError(c, http.StatusBadRequest,
			fmt.Sprintf("File exceeds the %d MB upload limit", rc.config.Import.MaxUploadMB), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Could not read the uploaded file", nil)
		return
	}
	defer file.Close()

	players, err := ParseRoster(fileHeader.Filename, file)
	if err != nil {
		var importErr *apperrors.ImportError
		if errors.As(err, &importErr) {
			responses.SendError(c, http.StatusBadRequest, importErr.Error(), nil)
			return
		}
		responses.SendError(c, http.StatusBadRequest, "Could not parse the uploaded file", nil)
		return
	}

	if err := rc.repo.Replace(scoutNick, players); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to store the imported roster", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Roster imported", gin.H{"imported": len(players)})
}

// GetRoster godoc
// @Summary View the reconciled roster
// @Description Returns the scout's roster joined with their contacts by owner id, with contact nick/status/notes filled in. Optional owner and free-text filters.
// @Tags Roster
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param owner query string false "Exact owner-id filter ('all' or empty disables)"
// @Param q query string false "Case-insensitive substring filter across all columns"
// @Success 200 {object} responses.SuccessResponse{data=[]ReconciledRow}
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /roster [get]
func (rc *RosterController) GetRoster(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	players, err := rc.repo.GetAll(scoutNick)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load the roster", nil)
		return
	}

	contacts, _, err := rc.contactRepo.GetAll(scoutNick, 0, 0)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load contacts for reconciliation", nil)
		return
	}

	rows := Reconcile(players, contacts)
	rows = FilterRows(rows, c.Query("owner"), c.Query("q"))

	responses.SendSuccess(c, http.StatusOK, "", rows)
}

// ClearRoster godoc
// @Summary Clear the stored roster
// @Description Deletes every imported roster row of the calling scout
// @Tags Roster
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Success 200 {object} responses.SuccessResponse
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /roster [delete]
func (rc *RosterController) ClearRoster(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	if err := rc.repo.Clear(scoutNick); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to clear the roster", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Roster cleared", nil)
}

// ListOwners godoc
// @Summary List roster owner ids
// @Description Returns the sorted distinct owner ids in the scout's roster, for the owner filter
// @Tags Roster
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /roster/owners [get]
func (rc *RosterController) ListOwners(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	owners, err := rc.repo.DistinctOwners(scoutNick)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load owners", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", owners)
}

// PrefillFromPlayer godoc
// @Summary Prefill contact-form values from a roster row
// @Description Returns the manager id, player name/id and any existing contact nick for the given roster player, mirroring the pick-a-player form filler
// @Tags Roster
// @Produce json
// @Param X-Scout-Nick header string true "Scout nick"
// @Param player_id path int true "Player id"
// @Success 200 {object} responses.SuccessResponse{data=PrefillResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid player id"
// @Failure 404 {object} responses.ErrorResponse "Player not in roster"
// @Failure 500 {object} responses.ErrorResponse "Store error"
// @Router /roster/players/{player_id}/prefill [get]
func (rc *RosterController) PrefillFromPlayer(c *gin.Context) {
	scoutNick, err := common.GetScoutNickFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Scout identity missing", nil)
		return
	}

	playerID, err := strconv.ParseInt(c.Param("player_id"), 10, 64)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "player_id must be numeric", nil)
		return
	}

	player, err := rc.repo.GetByPlayerID(scoutNick, playerID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up the player", nil)
		return
	}
	if player == nil {
		responses.NotFound(c, "Player")
		return
	}

	prefill := PrefillResponse{
		ManagerID:  NormalizeID(player.OwningUserID),
		PlayerName: strings.TrimSpace(player.FirstName + " " + player.LastName),
		PlayerID:   strconv.FormatInt(player.PlayerID, 10),
	}

	if prefill.ManagerID != "" {
		existing, err := rc.contactRepo.GetByManagerID(scoutNick, prefill.ManagerID)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to look up the contact", nil)
			return
		}
		if existing != nil {
			prefill.ManagerNick = existing.ManagerNick
		}
	}

	responses.SendSuccess(c, http.StatusOK, "", prefill)
}
