package messaging

import (
	"encoding/json"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/domain/voucher"
	"voucher-pipeline/internal/pkg/errs"
)

const (
	ContentType = "application/json"
	MessageType = "voucher.command"
)

var (
	// poison: the payload can never be processed
	ErrMalformedEnvelope = errs.New("malformed voucher envelope")
	// forward-compatible: produced by a newer sender, discarded here
	ErrUnknownCommand = errs.New("unknown voucher command")
)

// Envelope is the on-wire JSON shape of a command.
type Envelope struct {
	VoucherCode string      `json:"voucherCode"`
	Description string      `json:"description,omitempty"`
	Amount      json.Number `json:"amount,omitempty"`
	Action      string      `json:"action"`
}

func Encode(cmd command.Command) ([]byte, error) {
	env := Envelope{
		VoucherCode: cmd.VoucherCode().String(),
		Action:      cmd.Kind().String(),
	}
	if c, ok := cmd.(command.Create); ok {
		env.Description = c.Description.String()
		env.Amount = json.Number(c.Amount.String())
	}
	body, err := json.Marshal(env)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode voucher envelope")
	}
	return body, nil
}

func Decode(body []byte) (command.Command, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode voucher envelope"), ErrMalformedEnvelope)
	}
	if env.Action == "" {
		return nil, errs.Mark(errs.New("envelope has no action"), ErrMalformedEnvelope)
	}

	kind := command.Kind(env.Action)
	if !kind.IsValid() {
		return nil, errs.Mark(errs.Newf("unsupported action %q", env.Action), ErrUnknownCommand)
	}

	code, err := voucher.NewCode(env.VoucherCode)
	if err != nil {
		return nil, malformed(err, "voucherCode")
	}

	switch kind {
	case command.KindCreate:
		description, err := voucher.NewDescription(env.Description)
		if err != nil {
			return nil, malformed(err, "description")
		}
		amount, err := voucher.ParseAmount(env.Amount.String())
		if err != nil {
			return nil, malformed(err, "amount")
		}
		return command.Create{Code: code, Description: description, Amount: amount}, nil
	case command.KindRedeem:
		return command.Redeem{Code: code}, nil
	default:
		return command.Expire{Code: code}, nil
	}
}

func malformed(err error, field string) error {
	err = errs.Wrapf(err, "invalid %s", field)
	return errs.Mark(errs.Mark(err, errs.ErrDomainValidation), ErrMalformedEnvelope)
}
