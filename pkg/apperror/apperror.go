package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Code extracts the AppError code from err, or "" if err is not an AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Node Transport (NODE) ----

// Codes callers branch on when probing the unlocker.
const (
	CodeWalletExists   = "NODE_002"
	CodeUnlockerClosed = "NODE_003"
)

func ErrNodeCommand(command string, err error) *AppError {
	return Wrap("NODE_001", fmt.Sprintf("Node command %s failed", command), http.StatusBadGateway, err)
}

// ErrWalletExistsSignal is the node reporting that a wallet was already created.
func ErrWalletExistsSignal() *AppError {
	return New(CodeWalletExists, "Node reports wallet already exists", http.StatusConflict)
}

// ErrUnlockerClosed is the node refusing unlocker commands because the
// unlocker service already shut down (typically: the wallet is unlocked).
func ErrUnlockerClosed() *AppError {
	return New(CodeUnlockerClosed, "Node unlocker service is closed", http.StatusConflict)
}

func ErrPaymentTimeout() *AppError {
	return New("NODE_004", "Payment not confirmed before local timeout", http.StatusGatewayTimeout)
}

func ErrPaymentRejected(reason string) *AppError {
	return New("NODE_005", fmt.Sprintf("Payment rejected: %s", reason), http.StatusUnprocessableEntity)
}

// ---- Remote Ledger Backend (BACK) ----

func ErrBackendCall(name string, err error) *AppError {
	return Wrap("BACK_001", fmt.Sprintf("Backend function %s failed", name), http.StatusBadGateway, err)
}

func ErrDocumentRead(path string, err error) *AppError {
	return Wrap("BACK_002", fmt.Sprintf("Reading document %s failed", path), http.StatusBadGateway, err)
}

func ErrDocumentWrite(path string, err error) *AppError {
	return Wrap("BACK_003", fmt.Sprintf("Writing document %s failed", path), http.StatusBadGateway, err)
}

// ---- Wallet Lifecycle (WALLET) ----

func ErrWalletAlreadyExists() *AppError {
	return New("WALLET_001", "A wallet already exists", http.StatusConflict)
}

func ErrBalanceFetch(err error) *AppError {
	return Wrap("WALLET_002", "Fetching wallet balance failed", http.StatusBadGateway, err)
}

func ErrNoSeed() *AppError {
	return New("WALLET_003", "No seed has been generated for this wallet", http.StatusPreconditionFailed)
}

func ErrNotSynced() *AppError {
	return New("WALLET_004", "Node is not synced to chain", http.StatusPreconditionFailed)
}

// ---- Trade (TRADE) ----

func ErrSideMismatch(want, got string) *AppError {
	return New("TRADE_001", fmt.Sprintf("Trying to %s but quote is for %s", want, got), http.StatusConflict)
}

func ErrQuoteExpired(validUntil, now int64) *AppError {
	return New("TRADE_002",
		fmt.Sprintf("Quote expired at %d, now is %d. Ask for a new quote", validUntil, now),
		http.StatusGone)
}

func ErrNoQuote() *AppError {
	return New("TRADE_003", "No active quote", http.StatusPreconditionFailed)
}

// ---- Decoding (DECODE) ----

func ErrDecoding(what string, err error) *AppError {
	return Wrap("DECODE_001", fmt.Sprintf("Malformed %s payload", what), http.StatusBadGateway, err)
}

// ---- Configuration (CFG) ----

func ErrConfig(message string) *AppError {
	return New("CFG_001", message, http.StatusInternalServerError)
}

// ---- System & Infrastructure (SYS) ----

func ErrKeyStore(err error) *AppError {
	return Wrap("SYS_002", "Secure key store failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
