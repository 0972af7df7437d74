package wallet

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/dto"
	"github.com/GlebRadaev/taskearn/internal/handlers/httperr"
	"github.com/GlebRadaev/taskearn/internal/handlers/request"
	"github.com/GlebRadaev/taskearn/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

type Service interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
	AdminAdjust(ctx context.Context, actor domain.Principal, userID uuid.UUID, direction domain.EntryType, amount decimal.Decimal, note string) (*domain.LedgerEntry, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet balance
//	@Description	Current balance and lifetime earnings of the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Account"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	account, err := h.walletService.GetAccount(r.Context(), request.Principal(r).UserID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

// GetEntries godoc
//
//	@Summary		Get ledger entries
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Max entries, 50 by default"
//	@Success		200		{array}		dto.LedgerEntryDTO		"Entries"
//	@Success		204		{object}	utils.Response			"No entries"
//	@Failure		400		{object}	utils.Response			"Invalid limit"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/entries [get]
func (h *WalletHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.walletService.ListEntries(r.Context(), request.Principal(r).UserID, limit)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLedgerEntries(entries))
}

// Adjust godoc
//
//	@Summary		Manual balance adjustment
//	@Description	Credit or debit a user's wallet by hand. The entry is audited.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		string					true	"User id"
//	@Param			request	body		dto.AdjustRequestDTO	true	"Adjustment"
//	@Success		200		{object}	dto.LedgerEntryDTO		"Written entry"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		403		{object}	utils.Response			"Admin only"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		422		{object}	utils.Response			"Validation failed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/wallet/{userId}/adjust [post]
func (h *WalletHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	userID, ok := request.UUIDParam(w, r, "userId")
	if !ok {
		return
	}
	var req dto.AdjustRequestDTO
	if !request.Decode(w, r, &req) {
		return
	}
	// decimal_positive already accepted the amount.
	amount, _ := decimal.NewFromString(req.Amount)

	entry, err := h.walletService.AdminAdjust(r.Context(), request.Principal(r), userID, domain.EntryType(req.Direction), amount, req.Note)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLedgerEntry(entry))
}
