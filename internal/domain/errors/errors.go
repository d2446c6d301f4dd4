package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRemoteCallFailed  = errors.New("remote call failed")
	ErrWriteFailed       = errors.New("write failed")
	// ErrInconsistentState marks a divergence between the local ledger and a
	// remote balance that no retry path could repair. It must never be
	// swallowed: callers escalate it to the operator alert channel.
	ErrInconsistentState = errors.New("inconsistent settlement state")
)

// Stable error codes surfaced to callers. Internal detail never leaks past
// these strings.
const (
	CodeNoActiveProxy             = "customer_no_active_proxy"
	CodeNoActiveWallet            = "store_no_active_wallet"
	CodeInsufficientWalletBalance = "store_insufficient_wallet_balance"
	CodeUnableToStartPayout       = "admin_unable_to_start_payout"
	CodeUnableToAdjustWallet      = "wallet_unable_to_adjust"
	CodeProcessorAdjustFailed     = "admin_unable_adjust_amount_at_processor"
	CodeUnableToCompletePayout    = "admin_unable_to_complete_payout"
	CodePayoutNotFound            = "payout_not_found"

	CodeWalletNotFound        = "wallet_not_found"
	CodeWalletClientMismatch  = "wallet_does_not_belong_to_client"
	CodeWalletCannotFund      = "wallet_cannot_fund"
	CodeWalletCannotAudit     = "wallet_cannot_audit_adjustment"
	CodeWalletUnableToCreate  = "wallet_unable_to_add"
	CodeWalletUnableToDisable = "wallet_unable_to_deactivate"

	CodeRecipientExists           = "etransfer_recipient_exists"
	CodeRecipientNotFound         = "etransfer_recipient_not_found"
	CodeCannotCreateRecipient     = "etransfer_cannot_create_recipient"
	CodeCannotUpdateRecipient     = "etransfer_cannot_update_recipient"
	CodeCannotCreateRemoteContact = "etransfer_cannot_create_remote_contact"
	CodeRecipientCannotDeactivate = "etransfer_unable_to_deactivate"
	CodeSecurityAnswerWrongSize   = "etransfer_security_answer_wrong_size"
	CodeSecurityQuestionTooLong   = "etransfer_security_question_too_long"
	CodeEtransferCannotCheckCard  = "etransfer_unable_to_check_proxy"
	CodeEtransferInsufficient     = "etransfer_insufficient_funds"
	CodeEtransferCannotDebit      = "etransfer_cannot_debit_amount"
	CodeEtransferUnableToCreate   = "etransfer_unable_to_create"

	CodePayeeExists             = "bill_payment_payee_exists"
	CodePayeeNotFound           = "bill_payment_payee_not_found"
	CodeCannotCreatePayee       = "bill_payment_cannot_create_payee"
	CodeCannotDisablePayee      = "bill_payment_cannot_disable_payee"
	CodeCannotUpdatePayee       = "bill_payment_cannot_update_payee"
	CodeBillPayCannotCheckCard  = "bill_payment_unable_to_check_proxy"
	CodeBillPayInsufficient     = "bill_payment_insufficient_funds"
	CodeBillPayCannotDebit      = "bill_payment_cannot_debit_amount"
	CodeBillPayUnableToCreate   = "bill_payment_unable_to_create"
	CodeSearchTokenTooSmall     = "bill_payment_search_token_too_small"
	CodeBillPayNoRemoteSearch   = "bill_payment_no_remote_search"

	CodeHasActiveCard         = "customer_has_active_card"
	CodeProxyNotFound         = "card_proxy_not_found"
	CodeProxyNotAvailable     = "card_proxy_not_available"
	CodeProxyClientMismatch   = "card_proxy_client_mismatch"
	CodeCardUnableToActivate  = "card_unable_to_activate"
	CodeCardUnableToSaveProxy = "card_unable_to_save_proxy"
	CodeCannotMarkAssigned    = "card_cannot_mark_assigned"
	CodeInvalidProxy          = "card_invalid_proxy"
	CodeCardStatusUnavailable = "card_unable_to_retrieve_status"
	CodeCardCannotTransfer    = "card_unable_to_transfer_funds"

	CodeCustomerNotFound = "customer_not_found"

	CodeSessionInvalid       = "session_invalid"
	CodeSessionUnableToClear = "session_unable_to_clear"

	CodeCompensationFailed = "settlement_compensation_failed"
)

// AppError carries the HTTP status, the stable caller-visible code, and the
// wrapped cause.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Err: err}
}

// Common error constructors
func NotFound(code, message string) *AppError {
	return NewAppError(http.StatusNotFound, code, message, ErrNotFound)
}

func BadRequest(code, message string) *AppError {
	return NewAppError(http.StatusBadRequest, code, message, ErrInvalidInput)
}

func Conflict(code, message string) *AppError {
	return NewAppError(http.StatusConflict, code, message, ErrAlreadyExists)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeSessionInvalid, message, ErrUnauthorized)
}

func UnprocessableEntity(code, message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, code, message, ErrInsufficientFunds)
}

func BadGateway(code, message string) *AppError {
	return NewAppError(http.StatusBadGateway, code, message, ErrRemoteCallFailed)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal_error", "internal server error", err)
}

// Inconsistent flags an irrecoverable local/remote divergence.
func Inconsistent(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeCompensationFailed, message, errors.Join(ErrInconsistentState, err))
}
