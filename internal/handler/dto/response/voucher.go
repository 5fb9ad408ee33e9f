package response

import (
	"encoding/json"
	"time"

	"voucher-pipeline/internal/domain/voucher"
	"voucher-pipeline/internal/usecase"
	"voucher-pipeline/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type VoucherResponse struct {
	VoucherCode string      `json:"voucherCode"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount" swaggertype:"number"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type AcknowledgementResponse struct {
	Message     string `json:"message"`
	VoucherCode string `json:"voucherCode"`
	Action      string `json:"action"`
}

// amounts leave the service as JSON numbers with a fixed scale, e.g. 5.00
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: json.Number(""),
			Fn: func(src any) (any, error) {
				return json.Number(src.(decimal.Decimal).StringFixed(voucher.AmountScale)), nil
			},
		},
	},
}

func FromVoucherView(view *queries.VoucherView) (*VoucherResponse, error) {
	var res VoucherResponse
	if err := copier.CopyWithOption(&res, view, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromVoucherViews(views []*queries.VoucherView) ([]*VoucherResponse, error) {
	res := make([]*VoucherResponse, 0, len(views))
	for _, view := range views {
		r, err := FromVoucherView(view)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromAcknowledgement(ack *usecase.Acknowledgement) *AcknowledgementResponse {
	return &AcknowledgementResponse{
		Message:     ack.Message,
		VoucherCode: ack.VoucherCode,
		Action:      ack.Action.String(),
	}
}
