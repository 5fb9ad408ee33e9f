//go:build unit || e2e

// Package storetest provides an in-memory voucher store with the same
// conditional-write semantics as the Postgres repository.
package storetest

import (
	"context"
	"sync"

	"voucher-pipeline/internal/domain/voucher"
	"voucher-pipeline/internal/infra"

	"github.com/jackc/pgx/v5"
)

type VoucherStore struct {
	mu       sync.Mutex
	vouchers map[string]*voucher.Voucher

	// FailNext, when set, is returned by the next call and then cleared.
	FailNext error
}

func NewVoucherStore() *VoucherStore {
	return &VoucherStore{vouchers: make(map[string]*voucher.Voucher)}
}

func (s *VoucherStore) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

func (s *VoucherStore) ExistsByCode(_ context.Context, code voucher.Code) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return false, infra.WrapRepoErr("failed to check voucher existence", err)
	}
	_, ok := s.vouchers[code.String()]
	return ok, nil
}

func (s *VoucherStore) FindByCode(_ context.Context, code voucher.Code) (*voucher.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, infra.WrapRepoErr("failed to find voucher", err)
	}
	v, ok := s.vouchers[code.String()]
	if !ok {
		return nil, infra.WrapRepoErr("voucher not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return clone(v), nil
}

func (s *VoucherStore) Insert(_ context.Context, v *voucher.Voucher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return infra.WrapRepoErr("failed to insert voucher", err)
	}
	if _, ok := s.vouchers[v.Code().String()]; ok {
		return infra.WrapRepoErr("voucher code already taken", nil, infra.KindDuplicateKey)
	}
	s.vouchers[v.Code().String()] = clone(v)
	return nil
}

func (s *VoucherStore) UpdateStatus(_ context.Context, v *voucher.Voucher, expected voucher.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return infra.WrapRepoErr("failed to update voucher status", err)
	}
	stored, ok := s.vouchers[v.Code().String()]
	if !ok || stored.Status() != expected {
		return infra.WrapRepoErr("voucher status changed concurrently", nil, infra.KindConflict)
	}
	s.vouchers[v.Code().String()] = clone(v)
	return nil
}

// Get returns a copy of the stored voucher, or nil.
func (s *VoucherStore) Get(code string) *voucher.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vouchers[code]
	if !ok {
		return nil
	}
	return clone(v)
}

func (s *VoucherStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.vouchers)
}

func clone(v *voucher.Voucher) *voucher.Voucher {
	return voucher.ReconstructVoucher(
		v.Code(), v.Description(), v.Amount(), v.Status(), v.CreatedAt(), v.UpdatedAt(),
	)
}
