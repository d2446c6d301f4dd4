package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/gateways"
	"cardwallet.backend/internal/domain/repositories"
	"cardwallet.backend/pkg/metrics"
)

// EtransferUsecase handles recipient management and the e-transfer
// settlement saga.
type EtransferUsecase struct {
	recipientRepo     repositories.EtransferRecipientRepository
	etransferRepo     repositories.EtransferRepository
	customerProxyRepo repositories.CustomerCardProxyRepository
	customerRepo      repositories.CustomerRepository
	bank              gateways.Bank
	saga              cardDebitSaga
}

// NewEtransferUsecase creates a new etransfer usecase
func NewEtransferUsecase(
	recipientRepo repositories.EtransferRecipientRepository,
	etransferRepo repositories.EtransferRepository,
	customerProxyRepo repositories.CustomerCardProxyRepository,
	customerRepo repositories.CustomerRepository,
	feeRepo repositories.FeeRepository,
	processor gateways.Processor,
	bank gateways.Bank,
) *EtransferUsecase {
	return &EtransferUsecase{
		recipientRepo:     recipientRepo,
		etransferRepo:     etransferRepo,
		customerProxyRepo: customerProxyRepo,
		customerRepo:      customerRepo,
		bank:              bank,
		saga:              cardDebitSaga{processor: processor, feeRepo: feeRepo},
	}
}

// CreateRecipient registers a counterparty locally and with the settlement
// partner, keeping the partner's contact id on the local row.
func (u *EtransferUsecase) CreateRecipient(ctx context.Context, customerID int64, in *entities.CreateRecipientInput) (*entities.EtransferRecipient, error) {
	if err := validateSecurityQuestion(in.SecurityQuestion); err != nil {
		return nil, err
	}
	answer, err := normalizeSecurityAnswer(in.SecurityAnswer)
	if err != nil {
		return nil, err
	}

	if _, err := u.recipientRepo.GetByName(ctx, customerID, in.Name); err == nil {
		return nil, domainerrors.Conflict(domainerrors.CodeRecipientExists, "recipient already exists")
	}

	rec, err := u.recipientRepo.Create(ctx, &entities.EtransferRecipient{
		CustomerID:       customerID,
		Name:             in.Name,
		Email:            in.Email,
		SecurityQuestion: in.SecurityQuestion,
		SecurityAnswer:   answer,
	})
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCannotCreateRecipient,
			"could not create the recipient", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}

	firstName, lastName := splitRecipientName(in.Name)
	env, err := u.bank.CreateContact(ctx, firstName, lastName, in.Email)
	if err != nil || !env.IsSucceeded {
		return nil, domainerrors.BadGateway(domainerrors.CodeCannotCreateRemoteContact,
			"settlement partner rejected the contact")
	}

	updated, err := u.recipientRepo.UpdateContactID(ctx, rec.ID, env.ItemString())
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCannotCreateRecipient,
			"could not store the partner contact id", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return updated, nil
}

// UpdateRecipient pushes local edits; the partner is only called when the
// name or email actually changed.
func (u *EtransferUsecase) UpdateRecipient(ctx context.Context, customerID, recipientID int64, in *entities.CreateRecipientInput) (*entities.EtransferRecipient, error) {
	existing, err := u.recipientRepo.GetByID(ctx, customerID, recipientID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeRecipientNotFound, "recipient not found")
	}

	if err := validateSecurityQuestion(in.SecurityQuestion); err != nil {
		return nil, err
	}
	answer, err := normalizeSecurityAnswer(in.SecurityAnswer)
	if err != nil {
		return nil, err
	}

	remoteUpdateNeeded := in.Name != existing.Name || in.Email != existing.Email

	updated, err := u.recipientRepo.UpdateContact(ctx, customerID, recipientID, in.Name, in.Email, in.SecurityQuestion, answer)
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeCannotUpdateRecipient,
			"could not update the recipient", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}

	if remoteUpdateNeeded && updated.DCContactID.Valid {
		firstName, lastName := splitRecipientName(in.Name)
		env, err := u.bank.UpdateContact(ctx, firstName, lastName, in.Email, updated.DCContactID.String)
		if err != nil || !env.IsSucceeded {
			return nil, domainerrors.BadGateway(domainerrors.CodeCannotCreateRemoteContact,
				"settlement partner rejected the contact update")
		}
	}
	return updated, nil
}

// DeactivateRecipient retires a recipient.
func (u *EtransferUsecase) DeactivateRecipient(ctx context.Context, customerID, recipientID int64) (*entities.EtransferRecipient, error) {
	if _, err := u.recipientRepo.GetByID(ctx, customerID, recipientID); err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeRecipientNotFound, "recipient not found")
	}

	rec, err := u.recipientRepo.ChangeStatus(ctx, recipientID, entities.RecipientStatusInactive)
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeRecipientCannotDeactivate,
			"could not deactivate the recipient", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return rec, nil
}

// SendEtransfer runs the debit-first settlement saga: check the card covers
// amount plus fee, debit the card, submit to the partner, and compensate the
// debits if the submission fails. The local record is only written once the
// partner's transaction id proves settlement.
func (u *EtransferUsecase) SendEtransfer(ctx context.Context, customerID, recipientID int64, amount decimal.Decimal) (*entities.Etransfer, error) {
	recipient, err := u.recipientRepo.GetByID(ctx, customerID, recipientID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeRecipientNotFound, "recipient not found")
	}

	proxy, err := u.customerProxyRepo.GetActiveProxy(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeNoActiveProxy, "customer has no active card")
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeRecipientNotFound, "customer not found")
	}

	amount = amount.Abs()
	feeAmount, err := u.saga.resolveFee(ctx, customer.ClientID, entities.EventTypeSendEtransfer, amount,
		proxy.Proxy, domainerrors.CodeEtransferCannotCheckCard, domainerrors.CodeEtransferInsufficient)
	if err != nil {
		return nil, err
	}

	comment := "Etransfer - " + recipient.Name
	if err := u.saga.debitWithFee(ctx, proxy.Proxy, amount, feeAmount, comment, "Etransfer fee",
		domainerrors.CodeEtransferCannotDebit); err != nil {
		return nil, err
	}

	env, err := u.bank.SendTransfer(ctx, amount, recipient.SecurityQuestion, recipient.SecurityAnswer, recipient.DCContactID.String)
	if err != nil || !env.IsSucceeded {
		metrics.SettlementDeclines.WithLabelValues(entities.EventTypeSendEtransfer).Inc()
		if compErr := u.saga.compensateDebits(ctx, proxy.Proxy, amount, feeAmount, "Reversing failed etransfer"); compErr != nil {
			return nil, domainerrors.Inconsistent("etransfer debit could not be reversed", compErr)
		}
		return nil, domainerrors.BadGateway(domainerrors.CodeEtransferUnableToCreate,
			"settlement partner rejected the transfer")
	}

	rec, err := u.etransferRepo.Create(ctx, &entities.Etransfer{
		CustomerID:    customerID,
		TransactionID: env.ItemString(),
		Amount:        amount,
		FeeAmount:     feeAmount,
		RecipientName: recipient.Name,
	})
	if err != nil {
		return nil, domainerrors.NewAppError(500, domainerrors.CodeEtransferUnableToCreate,
			"could not record the settled transfer", fmt.Errorf("%w: %v", domainerrors.ErrWriteFailed, err))
	}
	return rec, nil
}

// ViewRecipient returns one recipient.
func (u *EtransferUsecase) ViewRecipient(ctx context.Context, customerID, recipientID int64) (*entities.EtransferRecipient, error) {
	rec, err := u.recipientRepo.GetByID(ctx, customerID, recipientID)
	if err != nil {
		return nil, domainerrors.NotFound(domainerrors.CodeRecipientNotFound, "recipient not found")
	}
	return rec, nil
}

// ViewRecipients lists a customer's recipients.
func (u *EtransferUsecase) ViewRecipients(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.EtransferRecipient, error) {
	return u.recipientRepo.GetByCustomerID(ctx, customerID, activeOnly)
}

// ViewEtransfers lists settled transfers within a date window; empty bounds
// default to the last month.
func (u *EtransferUsecase) ViewEtransfers(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.Etransfer, error) {
	if start.IsZero() {
		start = time.Now().AddDate(0, -1, 0)
	}
	if end.IsZero() {
		end = time.Now()
	}
	return u.etransferRepo.GetByCustomerID(ctx, customerID, start, end)
}

func validateSecurityQuestion(question string) error {
	if len(question) > SecurityQuestionMaxLen {
		return domainerrors.BadRequest(domainerrors.CodeSecurityQuestionTooLong, "security question too long")
	}
	return nil
}

// normalizeSecurityAnswer validates length bounds and strips spaces, since
// the partner compares answers without them.
func normalizeSecurityAnswer(answer string) (string, error) {
	if len(answer) < SecurityAnswerMinLen || len(answer) > SecurityAnswerMaxLen {
		return "", domainerrors.BadRequest(domainerrors.CodeSecurityAnswerWrongSize, "security answer must be 3 to 25 characters")
	}
	return strings.ReplaceAll(answer, " ", ""), nil
}

// splitRecipientName breaks a display name into the first/last pair the
// partner API wants. A single token becomes both.
func splitRecipientName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], parts[0]
	}
	return parts[0], strings.Join(parts[1:], " ")
}
