package quotes

import "context"

type Quote struct {
	Texto string
	Autor string
}

// Provider trae una frase inspiracional al azar.
type Provider interface {
	Random(ctx context.Context) (Quote, error)
}
