package register

import (
	"context"
	"errors"
	"fmt"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
)

// reporter converts the outcome of register into the result a caller receives
type reporter[R any] func(req usecase.RegisterRequest, txn *entity.Transaction, err error) (R, error)

// run is the single path from a request to a reported result
func run[R any](ctx context.Context, u *RegisterUseCase, req usecase.RegisterRequest, report reporter[R]) (R, error) {
	txn, err := u.register(ctx, req)
	return report(req, txn, err)
}

// Purchase records a sale for a point-of-sale terminal. Any failure, including a
// panic below this call, is reported as {Success: false, TotalAmount: 0}.
func (u *RegisterUseCase) Purchase(ctx context.Context, req usecase.RegisterRequest) (result usecase.PurchaseResult) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("Purchase aborted by panic", map[string]any{
				"panic": fmt.Sprint(r),
				"items": len(req.Items),
			})
			result = usecase.PurchaseResult{}
		}
	}()

	result, _ = run[usecase.PurchaseResult](ctx, u, req, u.reportPurchase)
	return result
}

// CreateTransaction records a sale and surfaces the reason of any failure
func (u *RegisterUseCase) CreateTransaction(ctx context.Context, req usecase.RegisterRequest) (*entity.Transaction, error) {
	return run[*entity.Transaction](ctx, u, req, u.reportDetailed)
}

func (u *RegisterUseCase) reportPurchase(req usecase.RegisterRequest, txn *entity.Transaction, err error) (usecase.PurchaseResult, error) {
	if err != nil {
		u.logger.Warn("Purchase rejected", failureFields(req, err))
		return usecase.PurchaseResult{}, nil
	}

	u.logger.Info("Purchase recorded", successFields(txn))
	return usecase.PurchaseResult{Success: true, TotalAmount: txn.TotalAmount}, nil
}

func (u *RegisterUseCase) reportDetailed(req usecase.RegisterRequest, txn *entity.Transaction, err error) (*entity.Transaction, error) {
	if err != nil {
		fields := failureFields(req, err)
		if errs.IsStorageError(err) || errs.ErrorCode(err) == errs.CodeInternalServer {
			u.logger.Error("Transaction registration failed", fields)
		} else {
			u.logger.Warn("Transaction registration rejected", fields)
		}
		return nil, err
	}

	u.logger.Info("Transaction registered", successFields(txn))
	return txn, nil
}

type logFielder interface {
	LogFields() map[string]any
}

func failureFields(req usecase.RegisterRequest, err error) map[string]any {
	fields := map[string]any{
		"operatorCode": req.OperatorCode,
		"storeCode":    req.StoreCode,
		"terminalCode": req.TerminalCode,
		"items":        len(req.Items),
		"error":        err.Error(),
		"errorCode":    errs.ErrorCode(err),
	}
	var detailed logFielder
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}
	return fields
}

func successFields(txn *entity.Transaction) map[string]any {
	return map[string]any{
		"transactionId": txn.ID,
		"storeCode":     txn.StoreCode,
		"terminalCode":  txn.TerminalCode,
		"items":         txn.ItemCount(),
		"totalAmount":   txn.TotalAmount,
	}
}
