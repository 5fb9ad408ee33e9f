package api

import (
	"net/http"

	reqdto "voucher-pipeline/internal/handler/dto/request"
	resdto "voucher-pipeline/internal/handler/dto/response"
	"voucher-pipeline/internal/handler/httperr"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/internal/usecase"
	"voucher-pipeline/internal/usecase/commands"
	"voucher-pipeline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherUseCase usecase.VoucherUseCase
}

func NewVoucherHandler(voucherUseCase usecase.VoucherUseCase) *VoucherHandler {
	return &VoucherHandler{
		voucherUseCase: voucherUseCase,
	}
}

// @Summary List vouchers
// @Description Get all voucher records
// @Tags vouchers
// @Produce json
// @Success 200 {array} resdto.VoucherResponse
// @Failure 500 {object} httperr.Response
// @Router /vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	views, err := h.voucherUseCase.ListVouchers(c.Request.Context())
	if err != nil {
		abortWithReadError(c, err)
		return
	}

	response, err := resdto.FromVoucherViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get voucher
// @Description Get one voucher by its code
// @Tags vouchers
// @Produce json
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /vouchers/{code} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	view, err := h.voucherUseCase.GetVoucher(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithReadError(c, err)
		return
	}

	response, err := resdto.FromVoucherView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create voucher
// @Description Enqueue a voucher creation. The voucher exists once the consumer has applied the command.
// @Tags vouchers
// @Produce json
// @Param voucherCode query string true "Voucher code"
// @Param description query string true "Description"
// @Param amount query number true "Amount (> 0, at most 2 decimals)"
// @Success 200 {object} resdto.AcknowledgementResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /vouchers/create [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "voucherCode, description and amount are required")
		return
	}

	ack, err := h.voucherUseCase.CreateVoucherAsync(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcknowledgement(ack))
}

// @Summary Redeem voucher
// @Description Enqueue a voucher redemption
// @Tags vouchers
// @Produce json
// @Param voucherCode query string true "Voucher code"
// @Success 200 {object} resdto.AcknowledgementResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /vouchers/redeem [post]
func (h *VoucherHandler) Redeem(c *gin.Context) {
	var req reqdto.VoucherCodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "voucherCode is required")
		return
	}

	ack, err := h.voucherUseCase.RedeemVoucherAsync(c.Request.Context(), req.VoucherCode)
	if err != nil {
		abortWithMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcknowledgement(ack))
}

// @Summary Expire voucher
// @Description Enqueue a voucher expiration
// @Tags vouchers
// @Produce json
// @Param voucherCode query string true "Voucher code"
// @Success 200 {object} resdto.AcknowledgementResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /vouchers/expire [post]
func (h *VoucherHandler) Expire(c *gin.Context) {
	var req reqdto.VoucherCodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "voucherCode is required")
		return
	}

	ack, err := h.voucherUseCase.ExpireVoucherAsync(c.Request.Context(), req.VoucherCode)
	if err != nil {
		abortWithMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcknowledgement(ack))
}

func abortWithReadError(c *gin.Context, err error) {
	switch {
	case errs.IsAny(err, queries.ErrVoucherNotFound, commands.ErrVoucherNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found")
	case errs.Is(err, commands.ErrVoucherAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Voucher already exists")
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher state")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func abortWithMutationError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	case errs.Is(err, usecase.ErrDeliveryFailure):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Voucher service temporarily unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
