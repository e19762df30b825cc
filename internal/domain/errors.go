package domain

import "errors"

// Validation failures. Their text is displayed to the agent as is.
var (
	ErrInvalidDates          = errors.New("Saisissez les dates au format jj/mm/aaaa.")
	ErrEffectBeforeSignature = errors.New("La date d’effet doit être postérieure à la date de signature.")
	ErrIncompleteFields      = errors.New("Renseignez tous les champs.")
	ErrUnknownInsurer        = errors.New("Compagnie inconnue.")
	ErrUnsupportedDebitDay   = errors.New("Jour de prélèvement non proposé par la compagnie.")
	ErrUnsupportedFeeOption  = errors.New("Option de frais non proposée par la compagnie.")
)
