package usecases

// Security question/answer limits imposed by the settlement partner.
const (
	SecurityAnswerMinLen   = 3
	SecurityAnswerMaxLen   = 25
	SecurityQuestionMaxLen = 40
)

// PayeeSearchMinTokenLen is the shortest name token the remote biller
// directory accepts.
const PayeeSearchMinTokenLen = 3

// CompensationAttempts bounds the retries of a compensating credit before the
// failure is escalated as an inconsistent state.
const CompensationAttempts = 3
